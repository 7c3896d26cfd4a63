package maintenance

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type fakeLocker struct {
	grant    bool
	unlocked []string
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return l.grant, "token", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.unlocked = append(l.unlocked, key)
	return nil
}

func TestWorker(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	cfg := &config.InternalConfig{App: config.App{MaintenanceCronSpec: "0 3 * * *"}}

	setup := func(t *testing.T, grant bool) (*Worker, *fakeLocker) {
		codes := recordstore.NewFileStore[*models.VerificationCode](zap.NewNop(), t.TempDir(), constvars.CollectionVerificationCodes)
		for userID, expiresAt := range map[string]time.Time{
			"user-1": now.Add(-time.Minute),
			"user-2": now.Add(10 * time.Minute),
		} {
			_, err := codes.Create(ctx, userID, &models.VerificationCode{
				RecordBase: models.RecordBase{ID: models.VerificationCodeID(userID, constvars.VerificationCodeTypeReset)},
				Code:       "123456",
				Type:       constvars.VerificationCodeTypeReset,
				ExpiresAt:  expiresAt,
				CreatedAt:  expiresAt.Add(-15 * time.Minute),
			})
			require.NoError(t, err)
		}

		locker := &fakeLocker{grant: grant}
		worker := NewWorker(zap.NewNop(), cfg, locker, codes)
		worker.now = func() time.Time { return now }
		return worker, locker
	}

	t.Run("Purges Only Expired Codes", func(t *testing.T) {
		worker, locker := setup(t, true)

		assert.Equal(t, 1, worker.runOnce(ctx))

		remaining, err := worker.codes.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "user-2", remaining[0].UserID)
		assert.Equal(t, []string{leaderLockKey}, locker.unlocked)
	})

	t.Run("Skips When Not Leader", func(t *testing.T) {
		worker, locker := setup(t, false)

		assert.Equal(t, 0, worker.runOnce(ctx))

		remaining, err := worker.codes.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
		assert.Empty(t, locker.unlocked)
	})

	t.Run("Start And Stop", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		worker, _ := setup(t, true)
		worker.Start(ctx)
		worker.Stop()
	})

	t.Run("Invalid Spec Falls Back", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		worker, _ := setup(t, true)
		worker.cfg = &config.InternalConfig{App: config.App{MaintenanceCronSpec: "not a spec"}}
		worker.Start(ctx)
		require.NotNil(t, worker.cron)
		assert.Len(t, worker.cron.Entries(), 1)
		worker.Stop()
	})
}
