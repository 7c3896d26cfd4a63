package jwtmanager

import (
	"afiatrack-service/internal/app/config"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(secret string) *JWTManager {
	cfg := &config.InternalConfig{JWT: config.AppJWT{Secret: secret, ExpTimeInHour: 1}}
	return NewJWTManager(cfg, zap.NewNop())
}

func TestJWTManager(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		manager := newTestManager("secret")

		created, err := manager.CreateToken(ctx, &CreateTokenInput{Subject: "user-1"})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), created.ExpiresAt, time.Minute)

		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
		require.NoError(t, err)
		assert.True(t, verified.Valid)
		assert.Equal(t, "user-1", verified.Subject)
	})

	t.Run("Other Secret Is Invalid", func(t *testing.T) {
		created, err := newTestManager("secret").CreateToken(ctx, &CreateTokenInput{Subject: "user-1"})
		require.NoError(t, err)

		verified, err := newTestManager("other").VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
		require.NoError(t, err)
		assert.False(t, verified.Valid)
	})

	t.Run("Expired Is Invalid", func(t *testing.T) {
		manager := newTestManager("secret")
		manager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		created, err := manager.CreateToken(ctx, &CreateTokenInput{Subject: "user-1"})
		require.NoError(t, err)

		verified, err := newTestManager("secret").VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
		require.NoError(t, err)
		assert.False(t, verified.Valid)
	})

	t.Run("Empty Subject Is Rejected", func(t *testing.T) {
		_, err := newTestManager("secret").CreateToken(ctx, &CreateTokenInput{Subject: " "})
		assert.Error(t, err)
	})
}
