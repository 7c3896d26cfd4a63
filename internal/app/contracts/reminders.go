package contracts

import (
	"afiatrack-service/internal/app/models"
	"context"
)

type Notifier interface {
	Notify(ctx context.Context, reminder *models.Reminder) error
}

type ReminderScheduler interface {
	Schedule(ctx context.Context, userID string, medications []*models.UserMedication, notify bool) int
	Clear(userID string)
	ClearAll()
	Pending(userID string) []models.ScheduledReminder
}

type ReminderUsecase interface {
	Reschedule(ctx context.Context, userID string) ([]models.ScheduledReminder, error)
	ListPending(ctx context.Context, userID string) ([]models.ScheduledReminder, error)
	RestoreAll(ctx context.Context) error
}
