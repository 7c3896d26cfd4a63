// Package reconciler turns a full desired collection sent by a client into
// the create, update and delete calls that make a record store match it.
package reconciler

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
)

type Result struct {
	Created []string
	Updated []string
	Deleted []string
}

// Reconcile makes the user's records in store equal to desired.
//
// Every item must carry its client generated id; a missing one fails the
// whole batch before the store is touched. When an id repeats, the last
// item wins and is applied at the position of the first. The calls are not
// atomic: the first failure stops the run and is returned together with
// the partial result.
func Reconcile[T models.Record](ctx context.Context, store contracts.RecordStore[T], userID string, desired []T) (*Result, error) {
	result := &Result{
		Created: []string{},
		Updated: []string{},
		Deleted: []string{},
	}

	for index, item := range desired {
		if !models.IsNilRecord(item) && item.GetID() == "" {
			return result, exceptions.ErrBatchItemMissingID(nil, index)
		}
	}

	current, err := store.List(ctx, userID)
	if err != nil {
		return result, err
	}

	existing := make(map[string]struct{}, len(current))
	for _, record := range current {
		existing[record.GetID()] = struct{}{}
	}

	wanted := Dedupe(desired)
	keep := make(map[string]struct{}, len(wanted))

	for _, record := range wanted {
		id := record.GetID()
		keep[id] = struct{}{}

		if _, ok := existing[id]; ok {
			_, err = store.Update(ctx, userID, record)
			if err != nil {
				return result, err
			}
			result.Updated = append(result.Updated, id)
			continue
		}

		_, err = store.Create(ctx, userID, record)
		if err != nil {
			return result, err
		}
		result.Created = append(result.Created, id)
	}

	for _, record := range current {
		id := record.GetID()
		if _, ok := keep[id]; ok {
			continue
		}
		_, err = store.Delete(ctx, userID, id)
		if err != nil {
			return result, err
		}
		result.Deleted = append(result.Deleted, id)
	}

	return result, nil
}

// Dedupe collapses repeated ids. Nil items are dropped.
func Dedupe[T models.Record](items []T) []T {
	positions := make(map[string]int, len(items))
	deduped := make([]T, 0, len(items))

	for _, item := range items {
		if models.IsNilRecord(item) {
			continue
		}
		if position, ok := positions[item.GetID()]; ok {
			deduped[position] = item
			continue
		}
		positions[item.GetID()] = len(deduped)
		deduped = append(deduped, item)
	}
	return deduped
}
