package requests

import "afiatrack-service/internal/app/models"

type UpdateProfile struct {
	UserID           string                  `json:"userId"`
	Name             string                  `json:"name" validate:"max=100"`
	Email            string                  `json:"email" validate:"omitempty,email"`
	Phone            string                  `json:"phone"`
	DateOfBirth      string                  `json:"dateOfBirth" validate:"omitempty,rfc3339"`
	Gender           string                  `json:"gender"`
	HeightCm         float64                 `json:"heightCm" validate:"gte=0"`
	WeightKg         float64                 `json:"weightKg" validate:"gte=0"`
	BloodType        string                  `json:"bloodType"`
	Allergies        []string                `json:"allergies"`
	Conditions       []string                `json:"conditions"`
	EmergencyContact models.EmergencyContact `json:"emergencyContact"`
}

type UpdateSettings struct {
	UserID        string                      `json:"userId"`
	Theme         string                      `json:"theme" validate:"omitempty,oneof=light dark system"`
	Notifications models.NotificationSettings `json:"notifications"`
	Privacy       models.PrivacySettings      `json:"privacy"`
	Language      string                      `json:"language" validate:"omitempty,min=2,max=5"`
}
