package recordstore

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// FallbackSwitch records whether the service has given up on its primary
// store. Once tripped it never resets; a restart is needed to go back.
type FallbackSwitch struct {
	active atomic.Bool
	Log    *zap.Logger
}

func NewFallbackSwitch(logger *zap.Logger) *FallbackSwitch {
	return &FallbackSwitch{Log: logger}
}

func (s *FallbackSwitch) Active() bool {
	return s != nil && s.active.Load()
}

func (s *FallbackSwitch) Trip(collection string, cause error) {
	if s.active.CompareAndSwap(false, true) {
		s.Log.Warn("FallbackSwitch.Trip primary store failed, switching to local store",
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(cause),
		)
	}
}

// FallbackStore serves calls from primary until the first infrastructure
// failure, then from local for the rest of the process lifetime. The call
// that failed is replayed on local. Domain errors such as not found are
// returned as is and do not trip the switch.
type FallbackStore[T models.Record] struct {
	primary contracts.RecordStore[T]
	local   contracts.RecordStore[T]
	state   *FallbackSwitch
}

func NewFallbackStore[T models.Record](primary, local contracts.RecordStore[T], state *FallbackSwitch) contracts.RecordStore[T] {
	return &FallbackStore[T]{
		primary: primary,
		local:   local,
		state:   state,
	}
}

func (s *FallbackStore[T]) Collection() string {
	return s.primary.Collection()
}

func (s *FallbackStore[T]) List(ctx context.Context, userID string) ([]T, error) {
	return run(s, func(store contracts.RecordStore[T]) ([]T, error) {
		return store.List(ctx, userID)
	})
}

func (s *FallbackStore[T]) ListAll(ctx context.Context) ([]T, error) {
	return run(s, func(store contracts.RecordStore[T]) ([]T, error) {
		return store.ListAll(ctx)
	})
}

func (s *FallbackStore[T]) Create(ctx context.Context, userID string, record T) (T, error) {
	return run(s, func(store contracts.RecordStore[T]) (T, error) {
		return store.Create(ctx, userID, record)
	})
}

func (s *FallbackStore[T]) Update(ctx context.Context, userID string, record T) (T, error) {
	return run(s, func(store contracts.RecordStore[T]) (T, error) {
		return store.Update(ctx, userID, record)
	})
}

func (s *FallbackStore[T]) Delete(ctx context.Context, userID, id string) (bool, error) {
	return run(s, func(store contracts.RecordStore[T]) (bool, error) {
		return store.Delete(ctx, userID, id)
	})
}

func run[T models.Record, R any](s *FallbackStore[T], call func(contracts.RecordStore[T]) (R, error)) (R, error) {
	if s.state.Active() {
		return call(s.local)
	}

	result, err := call(s.primary)
	if err == nil || !isInfrastructureFailure(err) {
		return result, err
	}

	s.state.Trip(s.primary.Collection(), err)

	// Records read from primary earlier in the same request may not exist
	// locally, so the replay can miss where primary would have found them.
	result, localErr := call(s.local)
	if exceptions.StatusCodeOf(localErr) == constvars.StatusNotFound {
		s.state.Log.Warn("FallbackStore replayed call missed on local store after switching",
			zap.String(constvars.LoggingCollectionKey, s.primary.Collection()),
			zap.NamedError("primaryError", err),
			zap.Error(localErr),
		)
	}
	return result, localErr
}

func isInfrastructureFailure(err error) bool {
	return exceptions.StatusCodeOf(err) >= constvars.StatusInternalServerError
}
