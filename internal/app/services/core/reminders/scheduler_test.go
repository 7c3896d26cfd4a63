package reminders

import (
	"afiatrack-service/internal/app/models"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, timer)
	return timer
}

// Advance moves the clock forward, firing due timers in order. Timers armed
// by a callback fire too when they fall within the window.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due *fakeTimer
		for _, timer := range c.timers {
			if timer.stopped || timer.fired || timer.at.After(target) {
				continue
			}
			if due == nil || timer.at.Before(due.at) {
				due = timer
			}
		}
		if due == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = due.at
		due.fired = true
		c.mu.Unlock()

		due.f()
	}
}

func (c *fakeClock) activeTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

type recordingNotifier struct {
	mu        sync.Mutex
	reminders []*models.Reminder
}

func (n *recordingNotifier) Notify(ctx context.Context, reminder *models.Reminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reminders = append(n.reminders, reminder)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.reminders)
}

func newMedication(id, endDate string, times ...string) *models.UserMedication {
	return &models.UserMedication{
		RecordBase:    models.RecordBase{ID: id, UserID: "user-1"},
		Name:          "Metformin",
		Dosage:        "500mg",
		Reminders:     true,
		ReminderTimes: times,
		EndDate:       endDate,
	}
}

func newTestScheduler(now time.Time) (*Scheduler, *fakeClock, *recordingNotifier) {
	clock := newFakeClock(now)
	notifier := &recordingNotifier{}
	return NewScheduler(zap.NewNop(), clock, time.UTC, notifier, nil), clock, notifier
}

func TestScheduler(t *testing.T) {
	ctx := context.Background()
	morning := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Arms Next Occurrence Per Time", func(t *testing.T) {
		scheduler, clock, _ := newTestScheduler(morning)

		armed := scheduler.Schedule(ctx, "user-1", []*models.UserMedication{newMedication("med-1", "", "08:00", "20:00")}, true)
		require.Equal(t, 2, armed)
		assert.Equal(t, 2, clock.activeTimers())

		pending := scheduler.Pending("user-1")
		require.Len(t, pending, 2)
		assert.Equal(t, time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC), pending[0].FireAt)
		assert.Equal(t, time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC), pending[1].FireAt)
	})

	t.Run("Past End Date Arms Nothing", func(t *testing.T) {
		scheduler, clock, _ := newTestScheduler(morning)

		armed := scheduler.Schedule(ctx, "user-1", []*models.UserMedication{newMedication("med-1", "2026-03-01", "08:00")}, true)
		assert.Zero(t, armed)
		assert.Zero(t, clock.activeTimers())
		assert.Empty(t, scheduler.Pending("user-1"))
	})

	t.Run("Reminders Off Arms Nothing", func(t *testing.T) {
		scheduler, _, _ := newTestScheduler(morning)

		medication := newMedication("med-1", "", "08:00")
		medication.Reminders = false
		assert.Zero(t, scheduler.Schedule(ctx, "user-1", []*models.UserMedication{medication}, true))
	})

	t.Run("Fire Notifies And Rearms Next Day", func(t *testing.T) {
		scheduler, clock, notifier := newTestScheduler(morning)
		scheduler.Schedule(ctx, "user-1", []*models.UserMedication{newMedication("med-1", "", "20:00")}, true)

		clock.Advance(11 * time.Hour)

		require.Equal(t, 1, notifier.count())
		fired := notifier.reminders[0]
		assert.Equal(t, "med-1", fired.MedicationID)
		assert.Equal(t, "Time to take Metformin", fired.Title)
		assert.Equal(t, time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC), fired.ScheduledFor)

		pending := scheduler.Pending("user-1")
		require.Len(t, pending, 1)
		assert.Equal(t, time.Date(2026, 3, 11, 20, 0, 0, 0, time.UTC), pending[0].FireAt)

		clock.Advance(48 * time.Hour)
		assert.Equal(t, 3, notifier.count(), "one delivery per day")
	})

	t.Run("Notify Off Still Rearms", func(t *testing.T) {
		scheduler, clock, notifier := newTestScheduler(morning)
		scheduler.Schedule(ctx, "user-1", []*models.UserMedication{newMedication("med-1", "", "20:00")}, false)

		clock.Advance(11 * time.Hour)

		assert.Zero(t, notifier.count())
		assert.Len(t, scheduler.Pending("user-1"), 1)
	})

	t.Run("Stops After End Date", func(t *testing.T) {
		scheduler, clock, notifier := newTestScheduler(morning)
		armed := scheduler.Schedule(ctx, "user-1", []*models.UserMedication{newMedication("med-1", "2026-03-11", "08:00", "20:00")}, true)
		require.Equal(t, 2, armed)

		clock.Advance(72 * time.Hour)

		assert.Equal(t, 3, notifier.count(), "20:00 on the 10th, 08:00 and 20:00 on the 11th")
		assert.Empty(t, scheduler.Pending("user-1"))
		assert.Zero(t, clock.activeTimers())
	})

	t.Run("Schedule Replaces Previous Timers", func(t *testing.T) {
		scheduler, clock, _ := newTestScheduler(morning)
		medications := []*models.UserMedication{newMedication("med-1", "", "08:00", "20:00")}

		scheduler.Schedule(ctx, "user-1", medications, true)
		scheduler.Schedule(ctx, "user-1", medications, true)

		assert.Len(t, scheduler.Pending("user-1"), 2)
		assert.Equal(t, 2, clock.activeTimers())
	})

	t.Run("Duplicate Times Arm Once", func(t *testing.T) {
		scheduler, _, _ := newTestScheduler(morning)

		armed := scheduler.Schedule(ctx, "user-1", []*models.UserMedication{newMedication("med-1", "", "08:00", "08:00")}, true)
		assert.Equal(t, 1, armed)
	})

	t.Run("Clear Cancels Timers", func(t *testing.T) {
		scheduler, clock, notifier := newTestScheduler(morning)
		scheduler.Schedule(ctx, "user-1", []*models.UserMedication{newMedication("med-1", "", "20:00")}, true)
		scheduler.Schedule(ctx, "user-2", []*models.UserMedication{newMedication("med-2", "", "20:00")}, true)

		scheduler.Clear("user-1")
		clock.Advance(11 * time.Hour)

		assert.Empty(t, scheduler.Pending("user-1"))
		assert.Equal(t, 1, notifier.count(), "only user-2 fires")
		assert.Equal(t, "med-2", notifier.reminders[0].MedicationID)
	})

	t.Run("ClearAll Cancels Every User", func(t *testing.T) {
		scheduler, clock, notifier := newTestScheduler(morning)
		scheduler.Schedule(ctx, "user-1", []*models.UserMedication{newMedication("med-1", "", "20:00")}, true)
		scheduler.Schedule(ctx, "user-2", []*models.UserMedication{newMedication("med-2", "", "20:00")}, true)

		scheduler.ClearAll()
		clock.Advance(24 * time.Hour)

		assert.Zero(t, notifier.count())
		assert.Zero(t, clock.activeTimers())
	})
}
