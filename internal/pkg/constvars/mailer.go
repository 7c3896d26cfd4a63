package constvars

const (
	EmailForgotPasswordSubjectMessage = "[AfiaTrack] Password Reset Code"
	EmailBodyResetPassword            = "Your AfiaTrack verification code is %s. It is valid until %s."
	SMSBodyResetPassword              = "AfiaTrack code: %s"
	ReminderNotificationTitleFormat   = "Time to take %s"
	ReminderNotificationBodyFormat    = "%s, scheduled at %s"
)
