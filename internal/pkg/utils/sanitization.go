package utils

import (
	"afiatrack-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}

func SanitizeSignupRequest(input *requests.Signup) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
}

// SanitizeLoginRequest leaves the identifier untouched: it must match the
// stored email or username exactly.
func SanitizeLoginRequest(input *requests.Login) {
	input.EmailOrUsername = strings.TrimRight(input.EmailOrUsername, "\r\n")
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Method = strings.ToLower(strings.TrimSpace(input.Method))
}

func SanitizeVerifyCodeRequest(input *requests.VerifyCode) {
	input.Email = strings.TrimSpace(input.Email)
	input.Code = strings.TrimSpace(input.Code)
}

func SanitizeResetPasswordRequest(input *requests.ResetPassword) {
	input.Email = strings.TrimSpace(input.Email)
	input.Code = strings.TrimSpace(input.Code)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.BloodType = strings.ToUpper(strings.TrimSpace(input.BloodType))
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
	input.Conditions = cleanWhiteSpaceFromEachStringOfAnArray(input.Conditions)
	input.EmergencyContact.Name = strings.TrimSpace(input.EmergencyContact.Name)
	input.EmergencyContact.Phone = strings.TrimSpace(input.EmergencyContact.Phone)
}

func SanitizeUpdateSettingsRequest(input *requests.UpdateSettings) {
	input.Theme = strings.ToLower(strings.TrimSpace(input.Theme))
	input.Language = strings.ToLower(strings.TrimSpace(input.Language))
}
