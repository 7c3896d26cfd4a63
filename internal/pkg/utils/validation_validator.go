package utils

import (
	"afiatrack-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	reminderTimeRegex = regexp.MustCompile(constvars.RegexTimeHHMM)
	specialCharRegex  = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex    = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("reminder_time", validateReminderTime)
	validate.RegisterValidation("rfc3339", validateRFC3339)
	validate.RegisterValidation("health_metric", validateHealthMetric)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return len(password) >= 8 && specialCharRegex.MatchString(password) && uppercaseRegex.MatchString(password)
}

func validateReminderTime(fl validator.FieldLevel) bool {
	return reminderTimeRegex.MatchString(fl.Field().String())
}

// Accepts a full RFC 3339 timestamp or a bare YYYY-MM-DD date.
func validateRFC3339(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func validateHealthMetric(fl validator.FieldLevel) bool {
	return IsHealthMetric(fl.Field().String())
}

func IsHealthMetric(metric string) bool {
	switch metric {
	case constvars.MetricBloodPressure, constvars.MetricHeartRate, constvars.MetricWeight, constvars.MetricSleep:
		return true
	}
	return false
}
