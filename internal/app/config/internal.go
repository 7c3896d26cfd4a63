package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Store    AppStore
	Mailer   AppMailer
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	MongoDB  AppMongoDB
}

type App struct {
	Env                                      string
	Port                                     string
	Version                                  string
	Timezone                                 string
	EndpointPrefix                           string
	CORSAllowedOrigins                       string
	MaxRequests                              int
	ShutdownTimeoutInSeconds                 int
	RequestBodyLimitInMegabyte               int
	ForgotPasswordCodeExpiredTimeInMinutes   int
	ForgotPasswordMaxRequestsPerHour         int
	AuthMaxRequestsPerMinute                 int
	ExposeResetCode                          bool
	SeedDemoData                             bool
	MinioPreSignedUrlObjectExpiryTimeInHours int
	DocumentMaxUploadSizeInMB                int
	MaintenanceCronSpec                      string
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

// AppStore selects the record store backend. Driver is "file" or "mongo";
// FallbackEnabled only matters for "mongo" and keeps a file store under
// DataDir to switch to when mongo fails.
type AppStore struct {
	Driver          string
	DataDir         string
	FallbackEnabled bool
}

type AppMailer struct {
	EmailSender string
}

type AppMinio struct {
	BucketName string
}

type AppRabbitMQ struct {
	MailerQueue   string
	SMSQueue      string
	ReminderQueue string
}

type AppMongoDB struct {
	DBName string
}
