package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_USER_ID_KEY      ContextKey = "session_user_id"
)

const (
	REQUEST_ID_PREFIX = "AFIA_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	StoreDriverFile  = "file"
	StoreDriverMongo = "mongo"
)

// Record store collections. The same names are used as JSON file names and
// mongo collection names.
const (
	CollectionUsers             = "users"
	CollectionProfiles          = "profiles"
	CollectionSettings          = "settings"
	CollectionAppointments      = "appointments"
	CollectionMedications       = "medications"
	CollectionDocuments         = "documents"
	CollectionHealthData        = "health_data"
	CollectionVerificationCodes = "verification_codes"
)

const (
	ResourceAuth         = "auth"
	ResourceProfile      = "profile"
	ResourceSettings     = "settings"
	ResourceAppointments = "appointments"
	ResourceMedications  = "medications"
	ResourceDocuments    = "documents"
	ResourceHealthData   = "health-data"
	ResourceReminders    = "reminders"
)

const (
	VerificationCodeLength    = 6
	VerificationCodeTypeReset = "password_reset"
	VerificationCodeTypeEmail = "email_verification"
	ForgotPasswordMethodEmail = "email"
	ForgotPasswordMethodSMS   = "sms"
)

const (
	MetricBloodPressure = "blood-pressure"
	MetricHeartRate     = "heart-rate"
	MetricWeight        = "weight"
	MetricSleep         = "sleep"
)

const (
	DocumentTypeLabResult    = "lab_result"
	DocumentTypePrescription = "prescription"
	DocumentTypeImaging      = "imaging"
	DocumentTypeInsurance    = "insurance"
	DocumentTypeVaccination  = "vaccination"
	DocumentTypeOther        = "other"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	DefaultLanguage = "en"
)

const (
	ReminderTimeLayout     = "15:04"
	ReminderRedisKeyFormat = "reminders:%s"
	DocumentObjectFormat   = "%s/%s/%s"
)

const (
	DefaultReportWindowInDays = 30
	MaxReportWindowInDays     = 365
)

// Rate limiter groups, used as redis key prefixes.
const (
	LimiterGroupAuthIP         = "auth_ip"
	LimiterGroupForgotPassword = "forgot_password"
)
