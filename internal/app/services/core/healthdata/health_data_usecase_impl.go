package healthdata

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/dto/responses"
	"afiatrack-service/internal/pkg/exceptions"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
)

type healthDataUsecase struct {
	HealthDataStore contracts.RecordStore[*models.UserHealthData]
	Log             *zap.Logger
	now             func() time.Time
}

var (
	healthDataUsecaseInstance contracts.HealthDataUsecase
	onceHealthDataUsecase     sync.Once
)

func NewHealthDataUsecase(
	healthDataStore contracts.RecordStore[*models.UserHealthData],
	logger *zap.Logger,
) contracts.HealthDataUsecase {
	onceHealthDataUsecase.Do(func() {
		healthDataUsecaseInstance = newHealthDataUsecase(healthDataStore, logger)
	})
	return healthDataUsecaseInstance
}

func newHealthDataUsecase(healthDataStore contracts.RecordStore[*models.UserHealthData], logger *zap.Logger) *healthDataUsecase {
	return &healthDataUsecase{
		HealthDataStore: healthDataStore,
		Log:             logger,
		now:             time.Now,
	}
}

// GetHealthData returns the user's readings. A user without any gets four
// empty arrays; nothing is persisted until the first reading.
func (uc *healthDataUsecase) GetHealthData(ctx context.Context, userID string) (*models.UserHealthData, error) {
	data, ok, err := recordstore.Find(ctx, uc.HealthDataStore, userID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.NewUserHealthData(userID), nil
	}

	if data.BloodPressure == nil {
		data.BloodPressure = []models.BloodPressureReading{}
	}
	if data.HeartRate == nil {
		data.HeartRate = []models.HeartRateReading{}
	}
	if data.Weight == nil {
		data.Weight = []models.WeightReading{}
	}
	if data.Sleep == nil {
		data.Sleep = []models.SleepReading{}
	}
	return data, nil
}

// AddReading appends one reading to metric. Readings are never deduplicated.
func (uc *healthDataUsecase) AddReading(ctx context.Context, userID, metric string, request *requests.Reading) (*models.UserHealthData, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthDataUsecase.AddReading called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingMetricKey, metric),
	)

	if !utils.IsHealthMetric(metric) {
		return nil, exceptions.ErrUnknownMetric(nil, metric)
	}

	data, err := uc.GetHealthData(ctx, userID)
	if err != nil {
		return nil, err
	}

	id := request.ID
	if id == "" {
		id = utils.GenerateRecordID()
	}

	var reading interface{}
	switch metric {
	case constvars.MetricBloodPressure:
		r := models.BloodPressureReading{ID: id, Date: request.Date, Systolic: request.Systolic, Diastolic: request.Diastolic, Notes: request.Notes}
		reading = r
		data.BloodPressure = append(data.BloodPressure, r)
	case constvars.MetricHeartRate:
		r := models.HeartRateReading{ID: id, Date: request.Date, BPM: request.BPM, Notes: request.Notes}
		reading = r
		data.HeartRate = append(data.HeartRate, r)
	case constvars.MetricWeight:
		unit := request.Unit
		if unit == "" {
			unit = "kg"
		}
		r := models.WeightReading{ID: id, Date: request.Date, Value: request.Value, Unit: unit, Notes: request.Notes}
		reading = r
		data.Weight = append(data.Weight, r)
	case constvars.MetricSleep:
		r := models.SleepReading{ID: id, Date: request.Date, Hours: request.Hours, Quality: request.Quality, Notes: request.Notes}
		reading = r
		data.Sleep = append(data.Sleep, r)
	}

	err = utils.ValidateStruct(reading)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	data, err = recordstore.Upsert(ctx, uc.HealthDataStore, userID, data)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("healthDataUsecase.AddReading succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, id),
	)
	return data, nil
}

func (uc *healthDataUsecase) DeleteReading(ctx context.Context, userID, metric, readingID string) error {
	if !utils.IsHealthMetric(metric) {
		return exceptions.ErrUnknownMetric(nil, metric)
	}

	data, ok, err := recordstore.Find(ctx, uc.HealthDataStore, userID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return exceptions.ErrReadingNotFound(nil, readingID, metric)
	}

	removed := false
	switch metric {
	case constvars.MetricBloodPressure:
		data.BloodPressure, removed = removeByID(data.BloodPressure, readingID, func(r models.BloodPressureReading) string { return r.ID })
	case constvars.MetricHeartRate:
		data.HeartRate, removed = removeByID(data.HeartRate, readingID, func(r models.HeartRateReading) string { return r.ID })
	case constvars.MetricWeight:
		data.Weight, removed = removeByID(data.Weight, readingID, func(r models.WeightReading) string { return r.ID })
	case constvars.MetricSleep:
		data.Sleep, removed = removeByID(data.Sleep, readingID, func(r models.SleepReading) string { return r.ID })
	}
	if !removed {
		return exceptions.ErrReadingNotFound(nil, readingID, metric)
	}

	_, err = uc.HealthDataStore.Update(ctx, userID, data)
	return err
}

func removeByID[R any](readings []R, id string, idOf func(R) string) ([]R, bool) {
	index := slices.IndexFunc(readings, func(r R) bool { return idOf(r) == id })
	if index < 0 {
		return readings, false
	}
	return slices.Delete(readings, index, index+1), true
}

// GetReport summarises the readings dated within the last days days.
func (uc *healthDataUsecase) GetReport(ctx context.Context, userID string, days int) (*responses.HealthReport, error) {
	if days <= 0 {
		days = constvars.DefaultReportWindowInDays
	}

	data, err := uc.GetHealthData(ctx, userID)
	if err != nil {
		return nil, err
	}

	to := uc.now()
	from := to.AddDate(0, 0, -days)
	window := reportWindow{from: from, to: to}

	var systolic, diastolic, heartRate, weight, sleep []sample
	for _, r := range data.BloodPressure {
		if at, ok := window.contains(r.Date); ok {
			systolic = append(systolic, sample{at: at, value: float64(r.Systolic)})
			diastolic = append(diastolic, sample{at: at, value: float64(r.Diastolic)})
		}
	}
	for _, r := range data.HeartRate {
		if at, ok := window.contains(r.Date); ok {
			heartRate = append(heartRate, sample{at: at, value: float64(r.BPM)})
		}
	}
	for _, r := range data.Weight {
		if at, ok := window.contains(r.Date); ok {
			weight = append(weight, sample{at: at, value: weightInKg(r)})
		}
	}
	for _, r := range data.Sleep {
		if at, ok := window.contains(r.Date); ok {
			sleep = append(sleep, sample{at: at, value: r.Hours})
		}
	}

	return &responses.HealthReport{
		UserID: userID,
		Days:   days,
		From:   from.Format(time.RFC3339),
		To:     to.Format(time.RFC3339),
		BloodPressure: responses.BloodPressureSummary{
			Count:     len(systolic),
			Systolic:  summarize(systolic),
			Diastolic: summarize(diastolic),
		},
		HeartRate: summarize(heartRate),
		Weight:    summarize(weight),
		Sleep:     summarize(sleep),
	}, nil
}
