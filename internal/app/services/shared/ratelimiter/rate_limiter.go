package ratelimiter

import (
	"afiatrack-service/internal/app/contracts"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed window counter kept in redis, so the limit holds
// across service instances.
type ResourceLimiter struct {
	redis    contracts.RedisRepository
	log      *zap.Logger
	group    string
	window   time.Duration
	maxQuota int
	now      func() time.Time
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger, group string, window time.Duration, maxQuota int) *ResourceLimiter {
	return &ResourceLimiter{
		redis:    redis,
		log:      log,
		group:    strings.ToUpper(strings.TrimSpace(group)),
		window:   window,
		maxQuota: maxQuota,
		now:      time.Now,
	}
}

func (l *ResourceLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.maxQuota <= 0 {
		return true, nil
	}

	resource := strings.ToLower(strings.TrimSpace(key))
	windowSec := int64(l.window / time.Second)
	if windowSec <= 0 {
		windowSec = 60
	}
	windowID := l.now().UTC().Unix() / windowSec
	redisKey := fmt.Sprintf("%s:%s:%d", l.group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, redisKey, time.Duration(windowSec)*time.Second+time.Second)
	if err != nil {
		l.log.Error("ResourceLimiter.Allow increment failed",
			zap.String("key", redisKey),
			zap.Error(err))
		return false, err
	}
	return count <= l.maxQuota, nil
}
