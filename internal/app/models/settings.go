package models

import (
	"afiatrack-service/internal/pkg/constvars"
	"time"
)

type UserSettings struct {
	RecordBase    `bson:",inline"`
	Theme         string               `json:"theme" bson:"theme"`
	Notifications NotificationSettings `json:"notifications" bson:"notifications"`
	Privacy       PrivacySettings      `json:"privacy" bson:"privacy"`
	Language      string               `json:"language" bson:"language"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type NotificationSettings struct {
	Email                bool `json:"email" bson:"email"`
	Push                 bool `json:"push" bson:"push"`
	MedicationReminders  bool `json:"medicationReminders" bson:"medicationReminders"`
	AppointmentReminders bool `json:"appointmentReminders" bson:"appointmentReminders"`
}

type PrivacySettings struct {
	ShareDataWithDoctors bool `json:"shareDataWithDoctors" bson:"shareDataWithDoctors"`
	AnonymousAnalytics   bool `json:"anonymousAnalytics" bson:"anonymousAnalytics"`
}

// DefaultUserSettings is what a user gets before ever saving settings.
func DefaultUserSettings(userID string) *UserSettings {
	return &UserSettings{
		RecordBase: RecordBase{ID: userID, UserID: userID},
		Theme:      constvars.ThemeSystem,
		Notifications: NotificationSettings{
			Email:                true,
			Push:                 true,
			MedicationReminders:  true,
			AppointmentReminders: true,
		},
		Privacy: PrivacySettings{
			ShareDataWithDoctors: false,
			AnonymousAnalytics:   true,
		},
		Language:  constvars.DefaultLanguage,
		UpdatedAt: time.Now(),
	}
}
