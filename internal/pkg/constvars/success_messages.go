package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	SignupSuccessMessage         = "account created successfully"
	LoginSuccessMessage          = "successfully login"
	ForgotPasswordSuccessMessage = "verification code sent"
	VerifyCodeSuccessMessage     = "verification code is valid"
	ResetPasswordSuccessMessage  = "password already reset successfully"
	ChangePasswordSuccessMessage = "password changed successfully"

	// Profile messages
	GetProfileSuccessMessage     = "get profile successfully"
	UpdateProfileSuccessMessage  = "profile updated successfully"
	GetSettingsSuccessMessage    = "get settings successfully"
	UpdateSettingsSuccessMessage = "settings updated successfully"

	// Record messages
	ListRecordsSuccessMessage  = "get %s successfully"
	CreateRecordSuccessMessage = "%s created successfully"
	UpdateRecordSuccessMessage = "%s updated successfully"
	DeleteRecordSuccessMessage = "%s deleted successfully"
	BatchRecordsSuccessMessage = "%s synchronized successfully"
	UploadFileSuccessMessage   = "document file uploaded successfully"

	// Health data messages
	GetHealthDataSuccessMessage   = "get health data successfully"
	AddReadingSuccessMessage      = "reading added successfully"
	DeleteReadingSuccessMessage   = "reading deleted successfully"
	GetHealthReportSuccessMessage = "get health report successfully"

	// Reminder messages
	GetRemindersSuccessMessage        = "get reminders successfully"
	RescheduleRemindersSuccessMessage = "reminders rescheduled successfully"

	HealthCheckSuccessMessage = "service is healthy"
)
