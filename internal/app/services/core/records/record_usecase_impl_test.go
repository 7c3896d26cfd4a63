package records

import (
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLocker struct {
	held     map[string]bool
	unlocked []string
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if l.held[key] {
		return false, "", nil
	}
	l.held[key] = true
	return true, "value", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	delete(l.held, key)
	l.unlocked = append(l.unlocked, key)
	return nil
}

func appointment(id, title, date string) *models.UserAppointment {
	return &models.UserAppointment{
		RecordBase: models.RecordBase{ID: id},
		Title:      title,
		Date:       date,
	}
}

func newAppointmentUsecase(t *testing.T, lock *fakeLocker, opts ...Option[*models.UserAppointment]) *recordUsecase[*models.UserAppointment] {
	store := recordstore.NewFileStore[*models.UserAppointment](zap.NewNop(), t.TempDir(), constvars.CollectionAppointments)
	return newRecordUsecase(store, lock, zap.NewNop(), opts...)
}

func TestRecordUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("List Sorted By Date", func(t *testing.T) {
		uc := newAppointmentUsecase(t, newFakeLocker(), WithOrder(ByAppointmentDate))

		_, err := uc.Create(ctx, "user-1", appointment("late", "Late", "2026-05-01T09:00:00Z"))
		require.NoError(t, err)
		_, err = uc.Create(ctx, "user-1", appointment("early", "Early", "2026-04-01"))
		require.NoError(t, err)
		_, err = uc.Create(ctx, "user-1", appointment("broken", "Broken", "someday"))
		require.NoError(t, err)

		records, err := uc.List(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "early", records[0].ID)
		assert.Equal(t, "late", records[1].ID)
		assert.Equal(t, "broken", records[2].ID)
	})

	t.Run("Update Uses Path ID", func(t *testing.T) {
		uc := newAppointmentUsecase(t, newFakeLocker())
		_, err := uc.Create(ctx, "user-1", appointment("a", "Checkup", "2026-04-01"))
		require.NoError(t, err)

		updated, err := uc.Update(ctx, "user-1", "a", appointment("", "Follow up", "2026-04-02"))
		require.NoError(t, err)
		assert.Equal(t, "a", updated.ID)
		assert.Equal(t, "Follow up", updated.Title)

		_, err = uc.Update(ctx, "user-1", "missing", appointment("", "Nope", "2026-04-02"))
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("Delete Reports Whether Removed", func(t *testing.T) {
		uc := newAppointmentUsecase(t, newFakeLocker())
		_, err := uc.Create(ctx, "user-1", appointment("a", "Checkup", "2026-04-01"))
		require.NoError(t, err)

		deleted, err := uc.Delete(ctx, "user-1", "a")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = uc.Delete(ctx, "user-1", "a")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Batch Replaces Collection", func(t *testing.T) {
		lock := newFakeLocker()
		uc := newAppointmentUsecase(t, lock)
		_, err := uc.Create(ctx, "user-1", appointment("A", "X", "2026-04-01"))
		require.NoError(t, err)

		result, err := uc.Batch(ctx, "user-1", []*models.UserAppointment{
			appointment("A", "Y", "2026-04-01"),
			appointment("B", "Z", "2026-04-02"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, result.Updated)
		assert.Equal(t, []string{"B"}, result.Created)
		assert.Empty(t, result.Deleted)

		records, err := uc.List(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Y", records[0].Title)
		assert.Equal(t, "Z", records[1].Title)

		assert.Equal(t, []string{"lock:batch:appointments:user-1"}, lock.unlocked, "lock released after batch")
	})

	t.Run("Batch Conflicts While Locked", func(t *testing.T) {
		lock := newFakeLocker()
		lock.held["lock:batch:appointments:user-1"] = true
		uc := newAppointmentUsecase(t, lock)

		_, err := uc.Batch(ctx, "user-1", nil)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
	})

	t.Run("After Change Hook", func(t *testing.T) {
		var calls []string
		hook := func(ctx context.Context, userID string) error {
			calls = append(calls, userID)
			return nil
		}
		uc := newAppointmentUsecase(t, newFakeLocker(), WithAfterChange[*models.UserAppointment](hook))

		_, err := uc.Create(ctx, "user-1", appointment("a", "Checkup", "2026-04-01"))
		require.NoError(t, err)
		_, err = uc.Batch(ctx, "user-1", nil)
		require.NoError(t, err)
		_, err = uc.Delete(ctx, "user-1", "missing")
		require.NoError(t, err)

		assert.Equal(t, []string{"user-1", "user-1"}, calls, "no hook when nothing was deleted")
	})
}
