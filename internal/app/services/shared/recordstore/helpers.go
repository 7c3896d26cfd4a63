package recordstore

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
)

// Find returns the record of userID with the given id, or ok=false.
func Find[T models.Record](ctx context.Context, store contracts.RecordStore[T], userID, id string) (record T, ok bool, err error) {
	records, err := store.List(ctx, userID)
	if err != nil {
		return record, false, err
	}
	for _, candidate := range records {
		if candidate.GetID() == id {
			return candidate, true, nil
		}
	}
	return record, false, nil
}

// Upsert updates record when it exists and creates it otherwise. Used by the
// one-per-user collections whose id is derived from the user id.
func Upsert[T models.Record](ctx context.Context, store contracts.RecordStore[T], userID string, record T) (T, error) {
	updated, err := store.Update(ctx, userID, record)
	if err == nil {
		return updated, nil
	}
	if exceptions.StatusCodeOf(err) != constvars.StatusNotFound {
		return updated, err
	}
	return store.Create(ctx, userID, record)
}
