package models

type UserMedication struct {
	RecordBase    `bson:",inline"`
	Name          string   `json:"name" bson:"name" validate:"required"`
	Dosage        string   `json:"dosage" bson:"dosage"`
	Frequency     string   `json:"frequency" bson:"frequency"`
	StartDate     string   `json:"startDate" bson:"startDate" validate:"omitempty,rfc3339"`
	EndDate       string   `json:"endDate,omitempty" bson:"endDate,omitempty" validate:"omitempty,rfc3339"`
	Reminders     bool     `json:"reminders" bson:"reminders"`
	ReminderTimes []string `json:"reminderTimes" bson:"reminderTimes" validate:"dive,reminder_time"`
	Notes         string   `json:"notes" bson:"notes"`
}
