package models

import "time"

// ScheduledReminder is one armed timer of the reminder scheduler.
type ScheduledReminder struct {
	UserID         string    `json:"userId"`
	MedicationID   string    `json:"medicationId"`
	MedicationName string    `json:"medicationName"`
	Dosage         string    `json:"dosage"`
	Time           string    `json:"time"`
	FireAt         time.Time `json:"fireAt"`
	Notify         bool      `json:"notify"`
}

// Reminder is what gets delivered when a scheduled reminder fires.
type Reminder struct {
	UserID         string    `json:"userId"`
	MedicationID   string    `json:"medicationId"`
	MedicationName string    `json:"medicationName"`
	Dosage         string    `json:"dosage"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	ScheduledFor   time.Time `json:"scheduledFor"`
}
