package config

import (
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Enabled:  utils.GetEnvBool("MONGODB_ENABLED", false),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                                     utils.GetEnvString("APP_PORT", "8080"),
			Version:                                  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:                           utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			CORSAllowedOrigins:                       utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*"),
			MaxRequests:                              utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeoutInSeconds:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte:               utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
			ForgotPasswordCodeExpiredTimeInMinutes:   utils.GetEnvInt("APP_FORGOT_PASSWORD_CODE_EXP_TIME_IN_MINUTE", 15),
			ForgotPasswordMaxRequestsPerHour:         utils.GetEnvInt("APP_FORGOT_PASSWORD_MAX_REQUESTS_PER_HOUR", 5),
			AuthMaxRequestsPerMinute:                 utils.GetEnvInt("APP_AUTH_MAX_REQUESTS_PER_MINUTE", 30),
			ExposeResetCode:                          utils.GetEnvBool("APP_EXPOSE_RESET_CODE", true),
			SeedDemoData:                             utils.GetEnvBool("APP_SEED_DEMO_DATA", true),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
			MaintenanceCronSpec:                      utils.GetEnvString("APP_MAINTENANCE_CRON_SPEC", "0 3 * * *"),
			DocumentMaxUploadSizeInMB:                utils.GetEnvInt("APP_DOCUMENT_MAX_UPLOAD_SIZE_IN_MB", 10),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "afiatrack-development-secret"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Store: AppStore{
			Driver:          utils.GetEnvString("STORE_DRIVER", constvars.StoreDriverFile),
			DataDir:         utils.GetEnvString("STORE_DATA_DIR", "data"),
			FallbackEnabled: utils.GetEnvBool("STORE_FALLBACK_ENABLED", false),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@afiatrack.local"),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("APP_MINIO_BUCKET_NAME", "afiatrack-documents"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue:   utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "afiatrack.mailer"),
			SMSQueue:      utils.GetEnvString("APP_RABBITMQ_SMS_QUEUE", "afiatrack.sms"),
			ReminderQueue: utils.GetEnvString("APP_RABBITMQ_REMINDER_QUEUE", "afiatrack.reminders"),
		},
		MongoDB: AppMongoDB{
			DBName: utils.GetEnvString("MONGODB_DB_NAME", "afiatrack"),
		},
	}
}
