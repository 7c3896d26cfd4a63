// Package seed fills freshly created accounts with demo records so a new
// user lands on populated screens.
package seed

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

const demoDays = 7

type seeder struct {
	Stores    *recordstore.Stores
	Reminders contracts.ReminderUsecase
	Log       *zap.Logger
	now       func() time.Time
}

// NewSeeder returns a seeder writing to stores. reminders may be nil; when
// set the seeded medication gets its reminders armed.
func NewSeeder(stores *recordstore.Stores, reminders contracts.ReminderUsecase, logger *zap.Logger) contracts.Seeder {
	return &seeder{
		Stores:    stores,
		Reminders: reminders,
		Log:       logger,
		now:       time.Now,
	}
}

// SeedUser writes two appointments, one medication with reminders, a week of
// readings and one document for userID.
func (s *seeder) SeedUser(ctx context.Context, userID string) error {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, appointment := range demoAppointments(today) {
		if _, err := s.Stores.Appointments.Create(ctx, userID, appointment); err != nil {
			return err
		}
	}

	if _, err := s.Stores.Medications.Create(ctx, userID, demoMedication(today)); err != nil {
		return err
	}

	if _, err := recordstore.Upsert(ctx, s.Stores.HealthData, userID, demoHealthData(userID, today)); err != nil {
		return err
	}

	if _, err := s.Stores.Documents.Create(ctx, userID, demoDocument(today)); err != nil {
		return err
	}

	if s.Reminders != nil {
		if _, err := s.Reminders.Reschedule(ctx, userID); err != nil {
			return err
		}
	}

	s.Log.Info("seeder.SeedUser demo data created",
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

func demoAppointments(today time.Time) []*models.UserAppointment {
	return []*models.UserAppointment{
		{
			Title:      "Annual checkup",
			DoctorName: "Dr. Amina Njoroge",
			Location:   "City Health Clinic",
			Date:       today.AddDate(0, 0, 7).Add(10 * time.Hour).Format(time.RFC3339),
			Notes:      "Bring recent lab results",
		},
		{
			Title:      "Dental cleaning",
			DoctorName: "Dr. Peter Otieno",
			Location:   "Smile Dental Care",
			Date:       today.AddDate(0, 0, 21).Add(14*time.Hour + 30*time.Minute).Format(time.RFC3339),
		},
	}
}

func demoMedication(today time.Time) *models.UserMedication {
	return &models.UserMedication{
		Name:          "Vitamin D",
		Dosage:        "1000 IU",
		Frequency:     "daily",
		StartDate:     today.Format(time.DateOnly),
		Reminders:     true,
		ReminderTimes: []string{"08:00"},
		Notes:         "Take with breakfast",
	}
}

func demoHealthData(userID string, today time.Time) *models.UserHealthData {
	data := models.NewUserHealthData(userID)
	systolic := []int{118, 122, 120, 125, 119, 121, 117}
	diastolic := []int{78, 80, 79, 83, 77, 81, 76}
	bpm := []int{72, 70, 75, 68, 74, 71, 69}
	weight := []float64{70.4, 70.2, 70.3, 70.1, 70.0, 69.9, 70.0}
	sleep := []float64{7.5, 6.8, 8.0, 7.2, 6.5, 7.8, 7.0}
	quality := []string{"good", "fair", "excellent", "good", "poor", "good", "fair"}

	for i := 0; i < demoDays; i++ {
		day := today.AddDate(0, 0, i-demoDays+1)
		morning := day.Add(8 * time.Hour).Format(time.RFC3339)

		data.BloodPressure = append(data.BloodPressure, models.BloodPressureReading{
			ID: utils.GenerateRecordID(), Date: morning, Systolic: systolic[i], Diastolic: diastolic[i],
		})
		data.HeartRate = append(data.HeartRate, models.HeartRateReading{
			ID: utils.GenerateRecordID(), Date: morning, BPM: bpm[i],
		})
		data.Weight = append(data.Weight, models.WeightReading{
			ID: utils.GenerateRecordID(), Date: morning, Value: weight[i], Unit: "kg",
		})
		data.Sleep = append(data.Sleep, models.SleepReading{
			ID: utils.GenerateRecordID(), Date: day.Format(time.RFC3339), Hours: sleep[i], Quality: quality[i],
		})
	}
	return data
}

func demoDocument(today time.Time) *models.UserDocument {
	return &models.UserDocument{
		Title: "Complete blood count",
		Type:  constvars.DocumentTypeLabResult,
		Date:  today.AddDate(0, 0, -10).Format(time.RFC3339),
		Notes: "All values within normal range",
	}
}
