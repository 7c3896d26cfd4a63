package models

import "time"

type VerificationCode struct {
	RecordBase `bson:",inline"`
	Code       string    `json:"code" bson:"code"`
	Type       string    `json:"type" bson:"type"`
	ExpiresAt  time.Time `json:"expiresAt" bson:"expiresAt"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

func VerificationCodeID(userID, codeType string) string {
	return userID + ":" + codeType
}

func (v *VerificationCode) IsExpired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
