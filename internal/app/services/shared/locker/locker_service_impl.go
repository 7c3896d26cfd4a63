package locker

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/pkg/constvars"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

// NewLockService returns a redis backed lock. Without redis every lock is
// granted, which is the single instance behaviour.
func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		if repo == nil {
			lockerServiceInstance = &noopLockService{}
			return
		}
		lockerServiceInstance = &lockService{
			redisRepo: repo,
			Log:       logger,
		}
	})
	return lockerServiceInstance
}

func BatchLockKey(collection, userID string) string {
	return fmt.Sprintf("lock:batch:%s:%s", collection, userID)
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Debug("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationKey, expiration),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)
	return true, lockValue, nil
}

// Unlock releases the lock only when lockValue still owns it. A lock that
// already expired is not an error.
func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		s.Log.Error("lockService.Unlock error retrieving value from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	// values are stored JSON encoded
	if storedVal == "" || storedVal != fmt.Sprintf("%q", lockValue) {
		s.Log.Warn("lockService.Unlock lock no longer owned",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	}

	err = s.redisRepo.Delete(ctx, key)
	if err != nil {
		s.Log.Error("lockService.Unlock error deleting lock from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

type noopLockService struct{}

func (noopLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return true, "", nil
}

func (noopLockService) Unlock(ctx context.Context, key, lockValue string) error {
	return nil
}
