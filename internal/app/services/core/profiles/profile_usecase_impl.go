package profiles

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/requests"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type profileUsecase struct {
	UserStore       contracts.RecordStore[*models.UserCredentials]
	ProfileStore    contracts.RecordStore[*models.UserProfile]
	SettingsStore   contracts.RecordStore[*models.UserSettings]
	ReminderUsecase contracts.ReminderUsecase
	Log             *zap.Logger
	now             func() time.Time
}

var (
	profileUsecaseInstance contracts.ProfileUsecase
	onceProfileUsecase     sync.Once
)

func NewProfileUsecase(
	stores *recordstore.Stores,
	reminderUsecase contracts.ReminderUsecase,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	onceProfileUsecase.Do(func() {
		profileUsecaseInstance = newProfileUsecase(stores, reminderUsecase, logger)
	})
	return profileUsecaseInstance
}

func newProfileUsecase(stores *recordstore.Stores, reminderUsecase contracts.ReminderUsecase, logger *zap.Logger) *profileUsecase {
	return &profileUsecase{
		UserStore:       stores.Users,
		ProfileStore:    stores.Profiles,
		SettingsStore:   stores.Settings,
		ReminderUsecase: reminderUsecase,
		Log:             logger,
		now:             time.Now,
	}
}

// GetProfile returns the user's profile, creating it from the account
// credentials on first read.
func (uc *profileUsecase) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, ok, err := recordstore.Find(ctx, uc.ProfileStore, userID, userID)
	if err != nil {
		return nil, err
	}
	if ok {
		return profile, nil
	}

	now := uc.now()
	profile = &models.UserProfile{
		RecordBase: models.RecordBase{ID: userID, UserID: userID},
		Allergies:  []string{},
		Conditions: []string{},
		TimeModel:  models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	credentials, found, err := recordstore.Find(ctx, uc.UserStore, userID, userID)
	if err != nil {
		return nil, err
	}
	if found {
		profile.Name = credentials.Username
		profile.Email = credentials.Email
	}

	uc.Log.Info("profileUsecase.GetProfile creating profile on first read",
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return uc.ProfileStore.Create(ctx, userID, profile)
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.UserProfile, error) {
	profile, err := uc.GetProfile(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	profile.Name = request.Name
	profile.Email = request.Email
	profile.Phone = request.Phone
	profile.DateOfBirth = request.DateOfBirth
	profile.Gender = request.Gender
	profile.HeightCm = request.HeightCm
	profile.WeightKg = request.WeightKg
	profile.BloodType = request.BloodType
	profile.Allergies = request.Allergies
	profile.Conditions = request.Conditions
	profile.EmergencyContact = request.EmergencyContact
	profile.UpdatedAt = uc.now()

	if profile.Allergies == nil {
		profile.Allergies = []string{}
	}
	if profile.Conditions == nil {
		profile.Conditions = []string{}
	}

	return uc.ProfileStore.Update(ctx, request.UserID, profile)
}

// GetSettings returns the stored settings, persisting the defaults on first
// read.
func (uc *profileUsecase) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, ok, err := recordstore.Find(ctx, uc.SettingsStore, userID, userID)
	if err != nil {
		return nil, err
	}
	if ok {
		return settings, nil
	}
	return uc.SettingsStore.Create(ctx, userID, models.DefaultUserSettings(userID))
}

// UpdateSettings replaces notification and privacy flags. An empty theme or
// language keeps the stored value. Switching medication reminders reschedules
// the user's timers.
func (uc *profileUsecase) UpdateSettings(ctx context.Context, request *requests.UpdateSettings) (*models.UserSettings, error) {
	settings, err := uc.GetSettings(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	remindersWereOn := settings.Notifications.MedicationReminders

	if request.Theme != "" {
		settings.Theme = request.Theme
	}
	if request.Language != "" {
		settings.Language = request.Language
	}
	settings.Notifications = request.Notifications
	settings.Privacy = request.Privacy
	settings.UpdatedAt = uc.now()

	settings, err = uc.SettingsStore.Update(ctx, request.UserID, settings)
	if err != nil {
		return nil, err
	}

	if uc.ReminderUsecase != nil && remindersWereOn != settings.Notifications.MedicationReminders {
		if _, err := uc.ReminderUsecase.Reschedule(ctx, request.UserID); err != nil {
			return nil, err
		}
	}
	return settings, nil
}
