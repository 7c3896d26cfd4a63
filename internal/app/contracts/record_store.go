package contracts

import (
	"afiatrack-service/internal/app/models"
	"context"
)

// RecordStore persists one collection of user owned records. T is a pointer
// to a model, e.g. *models.UserAppointment.
type RecordStore[T models.Record] interface {
	Collection() string
	List(ctx context.Context, userID string) ([]T, error)
	ListAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, userID string, record T) (T, error)
	Update(ctx context.Context, userID string, record T) (T, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}
