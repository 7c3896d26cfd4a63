package reminders

import (
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/utils"
	"iter"
	"time"
)

// NextOccurrence returns today at clock ("HH:MM", in now's location) when
// that instant is strictly after now, otherwise the same time tomorrow.
func NextOccurrence(now time.Time, clock string) (time.Time, error) {
	hour, minute, err := utils.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	year, month, day := now.Date()
	today := time.Date(year, month, day, hour, minute, 0, 0, now.Location())
	if today.After(now) {
		return today, nil
	}
	return today.AddDate(0, 0, 1), nil
}

// DailyOccurrences yields NextOccurrence(from, clock) and then the same wall
// clock time on every following day. The sequence is infinite; an invalid
// clock yields nothing.
func DailyOccurrences(from time.Time, clock string) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		first, err := NextOccurrence(from, clock)
		if err != nil {
			return
		}
		for day := 0; ; day++ {
			if !yield(first.AddDate(0, 0, day)) {
				return
			}
		}
	}
}

// IsActive reports whether medication should have reminders armed at now.
// The end date covers its whole day.
func IsActive(medication *models.UserMedication, now time.Time) bool {
	if medication == nil || !medication.Reminders || len(medication.ReminderTimes) == 0 {
		return false
	}
	return ActiveAt(medication, now)
}

// ActiveAt reports whether at falls on or before the medication's end date.
// A medication without an end date, or with one that cannot be parsed, is
// open ended.
func ActiveAt(medication *models.UserMedication, at time.Time) bool {
	if medication.EndDate == "" {
		return true
	}
	endDate, err := utils.ParseDate(medication.EndDate)
	if err != nil {
		return true
	}

	year, month, day := endDate.Date()
	lastDay := utils.EndOfDay(time.Date(year, month, day, 0, 0, 0, 0, at.Location()))
	return !at.After(lastDay)
}
