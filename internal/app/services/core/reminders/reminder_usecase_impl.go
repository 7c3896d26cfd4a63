package reminders

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// restoreConcurrency bounds how many users are rescheduled at once on boot.
const restoreConcurrency = 4

type reminderUsecase struct {
	MedicationStore contracts.RecordStore[*models.UserMedication]
	SettingsStore   contracts.RecordStore[*models.UserSettings]
	Scheduler       contracts.ReminderScheduler
	Log             *zap.Logger
}

var (
	reminderUsecaseInstance contracts.ReminderUsecase
	onceReminderUsecase     sync.Once
)

func NewReminderUsecase(
	medicationStore contracts.RecordStore[*models.UserMedication],
	settingsStore contracts.RecordStore[*models.UserSettings],
	scheduler contracts.ReminderScheduler,
	logger *zap.Logger,
) contracts.ReminderUsecase {
	onceReminderUsecase.Do(func() {
		reminderUsecaseInstance = newReminderUsecase(medicationStore, settingsStore, scheduler, logger)
	})
	return reminderUsecaseInstance
}

func newReminderUsecase(
	medicationStore contracts.RecordStore[*models.UserMedication],
	settingsStore contracts.RecordStore[*models.UserSettings],
	scheduler contracts.ReminderScheduler,
	logger *zap.Logger,
) *reminderUsecase {
	return &reminderUsecase{
		MedicationStore: medicationStore,
		SettingsStore:   settingsStore,
		Scheduler:       scheduler,
		Log:             logger,
	}
}

// Reschedule drops every timer of userID and arms new ones from the user's
// stored medications and notification settings.
func (uc *reminderUsecase) Reschedule(ctx context.Context, userID string) ([]models.ScheduledReminder, error) {
	medications, err := uc.MedicationStore.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	notify, err := uc.medicationRemindersEnabled(ctx, userID)
	if err != nil {
		return nil, err
	}

	uc.Scheduler.Schedule(ctx, userID, medications, notify)
	return uc.Scheduler.Pending(userID), nil
}

func (uc *reminderUsecase) ListPending(ctx context.Context, userID string) ([]models.ScheduledReminder, error) {
	return uc.Scheduler.Pending(userID), nil
}

// RestoreAll rearms reminders of every user with stored medications. Called
// once at startup, since timers do not survive a restart.
func (uc *reminderUsecase) RestoreAll(ctx context.Context) error {
	medications, err := uc.MedicationStore.ListAll(ctx)
	if err != nil {
		return err
	}

	byUser := make(map[string][]*models.UserMedication)
	for _, medication := range medications {
		byUser[medication.UserID] = append(byUser[medication.UserID], medication)
	}

	var armed atomic.Int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(restoreConcurrency)
	for userID, userMedications := range byUser {
		eg.Go(func() error {
			notify, err := uc.medicationRemindersEnabled(egCtx, userID)
			if err != nil {
				return err
			}
			armed.Add(int64(uc.Scheduler.Schedule(egCtx, userID, userMedications, notify)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	uc.Log.Info("reminderUsecase.RestoreAll reminders restored",
		zap.Int64(constvars.LoggingCountKey, armed.Load()),
	)
	return nil
}

func (uc *reminderUsecase) medicationRemindersEnabled(ctx context.Context, userID string) (bool, error) {
	settings, err := uc.SettingsStore.List(ctx, userID)
	if err != nil {
		return false, err
	}
	if len(settings) == 0 {
		return models.DefaultUserSettings(userID).Notifications.MedicationReminders, nil
	}
	return settings[0].Notifications.MedicationReminders, nil
}
