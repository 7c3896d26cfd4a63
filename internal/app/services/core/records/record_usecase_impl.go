package records

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/core/reconciler"
	"afiatrack-service/internal/app/services/shared/locker"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/responses"
	"afiatrack-service/internal/pkg/exceptions"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
)

const batchLockExpiration = 30 * time.Second

// Option customises a record usecase for one entity.
type Option[T models.Record] func(*recordUsecase[T])

// WithOrder sorts List results with cmp. Stored order is kept otherwise.
func WithOrder[T models.Record](cmp func(a, b T) int) Option[T] {
	return func(uc *recordUsecase[T]) {
		uc.order = cmp
	}
}

// WithAfterChange runs hook after every successful mutation of a user's
// records.
func WithAfterChange[T models.Record](hook func(ctx context.Context, userID string) error) Option[T] {
	return func(uc *recordUsecase[T]) {
		uc.afterChange = hook
	}
}

type recordUsecase[T models.Record] struct {
	Store         contracts.RecordStore[T]
	LockerService contracts.LockerService
	Log           *zap.Logger
	order         func(a, b T) int
	afterChange   func(ctx context.Context, userID string) error
}

func NewRecordUsecase[T models.Record](
	store contracts.RecordStore[T],
	lockerService contracts.LockerService,
	logger *zap.Logger,
	opts ...Option[T],
) contracts.RecordUsecase[T] {
	return newRecordUsecase(store, lockerService, logger, opts...)
}

func newRecordUsecase[T models.Record](
	store contracts.RecordStore[T],
	lockerService contracts.LockerService,
	logger *zap.Logger,
	opts ...Option[T],
) *recordUsecase[T] {
	uc := &recordUsecase[T]{
		Store:         store,
		LockerService: lockerService,
		Log:           logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *recordUsecase[T]) List(ctx context.Context, userID string) ([]T, error) {
	records, err := uc.Store.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if uc.order != nil {
		slices.SortStableFunc(records, uc.order)
	}
	return records, nil
}

func (uc *recordUsecase[T]) Create(ctx context.Context, userID string, record T) (T, error) {
	created, err := uc.Store.Create(ctx, userID, record)
	if err != nil {
		return created, err
	}
	return created, uc.changed(ctx, userID)
}

func (uc *recordUsecase[T]) Update(ctx context.Context, userID, id string, record T) (T, error) {
	record.SetID(id)
	updated, err := uc.Store.Update(ctx, userID, record)
	if err != nil {
		return updated, err
	}
	return updated, uc.changed(ctx, userID)
}

func (uc *recordUsecase[T]) Delete(ctx context.Context, userID, id string) (bool, error) {
	deleted, err := uc.Store.Delete(ctx, userID, id)
	if err != nil || !deleted {
		return deleted, err
	}
	return true, uc.changed(ctx, userID)
}

// Batch makes the user's collection equal to items. One batch per user and
// collection runs at a time; a concurrent one gets a conflict.
func (uc *recordUsecase[T]) Batch(ctx context.Context, userID string, items []T) (*responses.BatchResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	collection := uc.Store.Collection()
	uc.Log.Info("recordUsecase.Batch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.Int(constvars.LoggingCountKey, len(items)),
	)

	lockKey := locker.BatchLockKey(collection, userID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, batchLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBatchInProgress(nil, lockKey)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("recordUsecase.Batch failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	result, err := reconciler.Reconcile(ctx, uc.Store, userID, items)
	if err != nil {
		uc.Log.Error("recordUsecase.Batch stopped on partial reconcile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Int(constvars.LoggingCreatedCountKey, len(result.Created)),
			zap.Int(constvars.LoggingUpdatedCountKey, len(result.Updated)),
			zap.Int(constvars.LoggingDeletedCountKey, len(result.Deleted)),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.changed(ctx, userID); err != nil {
		return nil, err
	}

	uc.Log.Info("recordUsecase.Batch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
		zap.Int(constvars.LoggingCreatedCountKey, len(result.Created)),
		zap.Int(constvars.LoggingUpdatedCountKey, len(result.Updated)),
		zap.Int(constvars.LoggingDeletedCountKey, len(result.Deleted)),
	)
	return &responses.BatchResult{
		Created: result.Created,
		Updated: result.Updated,
		Deleted: result.Deleted,
	}, nil
}

func (uc *recordUsecase[T]) changed(ctx context.Context, userID string) error {
	if uc.afterChange == nil {
		return nil
	}
	return uc.afterChange(ctx, userID)
}

// ByAppointmentDate orders appointments by date ascending. Unparseable dates
// sort last.
func ByAppointmentDate(a, b *models.UserAppointment) int {
	aTime, aErr := utils.ParseDate(a.Date)
	bTime, bErr := utils.ParseDate(b.Date)
	switch {
	case aErr != nil && bErr != nil:
		return 0
	case aErr != nil:
		return 1
	case bErr != nil:
		return -1
	}
	return aTime.Compare(bTime)
}

// RescheduleReminders is the medication hook: any change to a user's
// medications rearms their reminders.
func RescheduleReminders(reminderUsecase contracts.ReminderUsecase) func(ctx context.Context, userID string) error {
	return func(ctx context.Context, userID string) error {
		_, err := reminderUsecase.Reschedule(ctx, userID)
		return err
	}
}
