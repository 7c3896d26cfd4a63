package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestKeyedLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("Burst Then Deny", func(t *testing.T) {
		limiter := NewKeyedLimiter(time.Hour, 3)

		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(ctx, "jane@example.com")
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should be within the burst", i+1)
		}

		allowed, err := limiter.Allow(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.False(t, allowed, "request past the burst should be denied")
	})

	t.Run("Keys Are Independent And Normalized", func(t *testing.T) {
		limiter := NewKeyedLimiter(time.Hour, 1)

		allowed, _ := limiter.Allow(ctx, "a@example.com")
		assert.True(t, allowed)
		allowed, _ = limiter.Allow(ctx, " A@example.com ")
		assert.False(t, allowed, "keys differing only by case and spaces share a bucket")
		allowed, _ = limiter.Allow(ctx, "b@example.com")
		assert.True(t, allowed)
	})

	t.Run("Prune Drops Idle Keys", func(t *testing.T) {
		limiter := NewKeyedLimiter(time.Minute, 1)
		limiter.Allow(ctx, "a@example.com")

		limiter.prune(time.Now().Add(2 * time.Minute))

		assert.Empty(t, limiter.clients)
	})

	t.Run("Run Stops With Context", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		limiter := NewKeyedLimiter(time.Minute, 1)
		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			limiter.Run(runCtx)
			close(done)
		}()

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}
