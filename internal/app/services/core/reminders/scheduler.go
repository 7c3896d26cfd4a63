package reminders

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
)

const notifyTimeout = 10 * time.Second

type entry struct {
	reminder   models.ScheduledReminder
	medication *models.UserMedication
	timer      Timer
	next       func() (time.Time, bool)
	stop       func()
}

// Scheduler arms one timer per active medication and reminder time. Each
// timer walks a DailyOccurrences sequence: when it fires the reminder is
// delivered and the timer is re-armed at the next day's occurrence.
type Scheduler struct {
	mu       sync.Mutex
	entries  map[string]map[string]*entry
	clock    Clock
	location *time.Location
	notifier contracts.Notifier
	mirror   contracts.RedisRepository
	Log      *zap.Logger
}

// NewScheduler builds a scheduler. mirror may be nil, in which case the
// pending reminders are not copied to redis.
func NewScheduler(logger *zap.Logger, clock Clock, location *time.Location, notifier contracts.Notifier, mirror contracts.RedisRepository) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		entries:  make(map[string]map[string]*entry),
		clock:    clock,
		location: location,
		notifier: notifier,
		mirror:   mirror,
		Log:      logger,
	}
}

// Schedule replaces every timer of userID with timers for medications and
// returns how many were armed. notify decides whether fired reminders are
// delivered or only re-armed.
func (s *Scheduler) Schedule(ctx context.Context, userID string, medications []*models.UserMedication, notify bool) int {
	now := s.clock.Now().In(s.location)

	s.mu.Lock()
	s.clearLocked(userID)
	armed := make(map[string]*entry)
	for _, medication := range medications {
		if !IsActive(medication, now) {
			continue
		}
		for _, clock := range medication.ReminderTimes {
			key := medication.ID + "|" + clock
			if _, ok := armed[key]; ok {
				continue
			}

			next, stop := iter.Pull(DailyOccurrences(now, clock))
			fireAt, ok := next()
			if !ok || !ActiveAt(medication, fireAt) {
				stop()
				if !ok {
					s.Log.Warn("Scheduler.Schedule skipping invalid reminder time",
						zap.String(constvars.LoggingUserIDKey, userID),
						zap.String(constvars.LoggingMedicationIDKey, medication.ID),
						zap.String(constvars.LoggingReminderTimeKey, clock),
					)
				}
				continue
			}

			e := &entry{
				reminder: models.ScheduledReminder{
					UserID:         userID,
					MedicationID:   medication.ID,
					MedicationName: medication.Name,
					Dosage:         medication.Dosage,
					Time:           clock,
					FireAt:         fireAt,
					Notify:         notify,
				},
				medication: medication,
				next:       next,
				stop:       stop,
			}
			armed[key] = e
			s.armLocked(e, now)
		}
	}
	if len(armed) > 0 {
		s.entries[userID] = armed
	}
	pending := snapshot(armed)
	s.mu.Unlock()

	s.Log.Info("Scheduler.Schedule armed reminders",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Int(constvars.LoggingCountKey, len(pending)),
	)
	s.mirrorPending(ctx, userID, pending)
	return len(pending)
}

// Clear cancels every timer of userID.
func (s *Scheduler) Clear(userID string) {
	s.mu.Lock()
	s.clearLocked(userID)
	s.mu.Unlock()

	s.mirrorPending(context.Background(), userID, nil)
}

// ClearAll cancels every outstanding timer. Used on shutdown; the redis
// mirror is left as is.
func (s *Scheduler) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID := range s.entries {
		s.clearLocked(userID)
	}
}

// Pending lists the armed reminders of userID ordered by fire time.
func (s *Scheduler) Pending(userID string) []models.ScheduledReminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.entries[userID])
}

func (s *Scheduler) clearLocked(userID string) {
	for _, e := range s.entries[userID] {
		e.timer.Stop()
		e.stop()
	}
	delete(s.entries, userID)
}

func (s *Scheduler) armLocked(e *entry, now time.Time) {
	delay := e.reminder.FireAt.Sub(now)
	if delay < 0 {
		delay = 0
	}
	e.timer = s.clock.AfterFunc(delay, func() { s.fire(e) })
}

func (s *Scheduler) fire(e *entry) {
	userID := e.reminder.UserID

	s.mu.Lock()
	if !s.isCurrentLocked(e) {
		s.mu.Unlock()
		return
	}
	fired := e.reminder
	s.mu.Unlock()

	if fired.Notify {
		s.deliver(fired)
	}

	s.mu.Lock()
	if !s.isCurrentLocked(e) {
		s.mu.Unlock()
		return
	}
	fireAt, ok := e.next()
	if ok && ActiveAt(e.medication, fireAt) {
		e.reminder.FireAt = fireAt
		s.armLocked(e, s.clock.Now().In(s.location))
	} else {
		e.stop()
		delete(s.entries[userID], e.reminder.MedicationID+"|"+e.reminder.Time)
		if len(s.entries[userID]) == 0 {
			delete(s.entries, userID)
		}
	}
	pending := snapshot(s.entries[userID])
	s.mu.Unlock()

	s.mirrorPending(context.Background(), userID, pending)
}

func (s *Scheduler) isCurrentLocked(e *entry) bool {
	current, ok := s.entries[e.reminder.UserID][e.reminder.MedicationID+"|"+e.reminder.Time]
	return ok && current == e
}

func (s *Scheduler) deliver(fired models.ScheduledReminder) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	reminder := &models.Reminder{
		UserID:         fired.UserID,
		MedicationID:   fired.MedicationID,
		MedicationName: fired.MedicationName,
		Dosage:         fired.Dosage,
		Title:          fmt.Sprintf(constvars.ReminderNotificationTitleFormat, fired.MedicationName),
		Body:           fmt.Sprintf(constvars.ReminderNotificationBodyFormat, fired.Dosage, fired.Time),
		ScheduledFor:   fired.FireAt,
	}

	err := s.notifier.Notify(ctx, reminder)
	if err != nil {
		s.Log.Error("Scheduler.deliver failed to notify",
			zap.String(constvars.LoggingUserIDKey, fired.UserID),
			zap.String(constvars.LoggingMedicationIDKey, fired.MedicationID),
			zap.Error(err),
		)
	}
}

// mirrorPending copies the user's pending reminders to redis for
// inspection. It is never read back and failures are only logged.
func (s *Scheduler) mirrorPending(ctx context.Context, userID string, pending []models.ScheduledReminder) {
	if s.mirror == nil {
		return
	}

	key := fmt.Sprintf(constvars.ReminderRedisKeyFormat, userID)
	var err error
	if len(pending) == 0 {
		err = s.mirror.Delete(ctx, key)
	} else {
		err = s.mirror.Set(ctx, key, pending, 0)
	}
	if err != nil {
		s.Log.Warn("Scheduler.mirrorPending failed to mirror reminders",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

func snapshot(entries map[string]*entry) []models.ScheduledReminder {
	pending := make([]models.ScheduledReminder, 0, len(entries))
	for _, e := range entries {
		pending = append(pending, e.reminder)
	}
	slices.SortFunc(pending, func(a, b models.ScheduledReminder) int {
		if c := a.FireAt.Compare(b.FireAt); c != 0 {
			return c
		}
		if a.MedicationID != b.MedicationID {
			if a.MedicationID < b.MedicationID {
				return -1
			}
			return 1
		}
		return 0
	})
	return pending
}
