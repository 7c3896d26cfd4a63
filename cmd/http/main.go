package main

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/delivery/http/controllers"
	"afiatrack-service/internal/app/delivery/http/middlewares"
	"afiatrack-service/internal/app/delivery/http/routers"
	"afiatrack-service/internal/app/drivers/database"
	"afiatrack-service/internal/app/drivers/logger"
	"afiatrack-service/internal/app/drivers/messaging"
	"afiatrack-service/internal/app/drivers/storage"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/core/auth"
	"afiatrack-service/internal/app/services/core/healthdata"
	"afiatrack-service/internal/app/services/core/maintenance"
	"afiatrack-service/internal/app/services/core/profiles"
	"afiatrack-service/internal/app/services/core/records"
	"afiatrack-service/internal/app/services/core/reminders"
	"afiatrack-service/internal/app/services/core/seed"
	"afiatrack-service/internal/app/services/shared/jwtmanager"
	"afiatrack-service/internal/app/services/shared/locker"
	"afiatrack-service/internal/app/services/shared/mailer"
	"afiatrack-service/internal/app/services/shared/ratelimiter"
	"afiatrack-service/internal/app/services/shared/recordstore"
	redisRepo "afiatrack-service/internal/app/services/shared/redis"
	minioStorage "afiatrack-service/internal/app/services/shared/storage"
	"afiatrack-service/internal/pkg/constvars"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const restoreRemindersTimeout = 30 * time.Second

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if driverConfig.MongoDB.Enabled {
		bootstrap.MongoDB = connectMongoDB(log, driverConfig, internalConfig)
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, internalConfig)
	}
	if driverConfig.Minio.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig)
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	bootstrapingTheApp(appCtx, bootstrap, location)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	stopApp()
	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

// connectMongoDB tolerates an unreachable mongo when the file fallback is
// enabled; the record store then starts on local files.
func connectMongoDB(log *zap.Logger, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *mongo.Client {
	client, err := database.NewMongoDB(driverConfig)
	if err == nil {
		return client
	}
	if !internalConfig.Store.FallbackEnabled {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	log.Warn("Mongo database unavailable, record store will use local files", zap.Error(err))
	if client != nil {
		client.Disconnect(context.Background())
	}
	return nil
}

// newRateLimiter shares the quota across instances through redis when it is
// available and keeps it in process otherwise.
func newRateLimiter(ctx context.Context, redisRepository contracts.RedisRepository, log *zap.Logger, group string, window time.Duration, maxQuota int) contracts.RateLimiter {
	if redisRepository != nil {
		return ratelimiter.NewResourceLimiter(redisRepository, log, group, window, maxQuota)
	}
	limiter := ratelimiter.NewKeyedLimiter(window, maxQuota)
	go limiter.Run(ctx)
	return limiter
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, location *time.Location) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Redis
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redisRepo.NewRedisRepository(bootstrap.Redis)
	}
	lockerService := locker.NewLockService(redisRepository, log)

	// Record store
	backend := recordstore.NewBackend(log, internalConfig, bootstrap.MongoDB)
	stores := recordstore.NewStores(backend)

	// Messaging
	var mailerService contracts.MailerService
	var notifier contracts.Notifier
	if bootstrap.RabbitMQ != nil {
		var err error
		mailerService, err = mailer.NewMailerService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue, internalConfig.RabbitMQ.SMSQueue)
		if err != nil {
			log.Fatal("Failed to create mailer service", zap.Error(err))
		}
		notifier, err = reminders.NewRabbitNotifier(bootstrap.RabbitMQ, internalConfig.RabbitMQ.ReminderQueue, log)
		if err != nil {
			log.Fatal("Failed to create reminder notifier", zap.Error(err))
		}
	} else {
		mailerService = mailer.NewLogMailerService(log)
		notifier = reminders.NewLogNotifier(log)
	}

	// Storage
	documentStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	// Reminders
	scheduler := reminders.NewScheduler(log, reminders.NewRealClock(), location, notifier, redisRepository)
	bootstrap.SchedulerStop = scheduler.ClearAll
	reminderUsecase := reminders.NewReminderUsecase(stores.Medications, stores.Settings, scheduler, log)

	restoreCtx, cancelRestore := context.WithTimeout(ctx, restoreRemindersTimeout)
	err := reminderUsecase.RestoreAll(restoreCtx)
	cancelRestore()
	if err != nil {
		log.Error("Failed to restore medication reminders", zap.Error(err))
	}

	// Maintenance
	worker := maintenance.NewWorker(log, internalConfig, lockerService, stores.VerificationCodes)
	worker.Start(ctx)
	bootstrap.WorkerStop = worker.Stop

	// Auth
	jwtManager := jwtmanager.NewJWTManager(internalConfig, log)
	forgotPasswordLimiter := newRateLimiter(ctx, redisRepository, log, constvars.LimiterGroupForgotPassword, time.Hour, internalConfig.App.ForgotPasswordMaxRequestsPerHour)
	authIPLimiter := newRateLimiter(ctx, redisRepository, log, constvars.LimiterGroupAuthIP, time.Minute, internalConfig.App.AuthMaxRequestsPerMinute)

	var seeder contracts.Seeder
	if internalConfig.App.SeedDemoData {
		seeder = seed.NewSeeder(stores, reminderUsecase, log)
	}
	authUsecase := auth.NewAuthUsecase(stores, jwtManager, mailerService, forgotPasswordLimiter, seeder, internalConfig, log)

	// Profile and settings
	profileUsecase := profiles.NewProfileUsecase(stores, reminderUsecase, log)

	// Records
	appointmentUsecase := records.NewRecordUsecase(stores.Appointments, lockerService, log,
		records.WithOrder(records.ByAppointmentDate),
	)
	medicationUsecase := records.NewRecordUsecase(stores.Medications, lockerService, log,
		records.WithAfterChange[*models.UserMedication](records.RescheduleReminders(reminderUsecase)),
	)
	documentUsecase := records.NewDocumentUsecase(stores.Documents, lockerService, documentStorage, internalConfig, log)

	// Health data
	healthDataUsecase := healthdata.NewHealthDataUsecase(stores.HealthData, log)

	// Controllers
	handlers := &routers.Controllers{
		Auth:    controllers.NewAuthController(log, authUsecase),
		Profile: controllers.NewProfileController(log, profileUsecase),
		Appointments: controllers.NewRecordController(log, appointmentUsecase, constvars.ResourceAppointments, func() *models.UserAppointment {
			return new(models.UserAppointment)
		}),
		Medications: controllers.NewRecordController(log, medicationUsecase, constvars.ResourceMedications, func() *models.UserMedication {
			return new(models.UserMedication)
		}),
		Documents:   controllers.NewDocumentController(log, documentUsecase, internalConfig),
		HealthData:  controllers.NewHealthDataController(log, healthDataUsecase),
		Reminders:   controllers.NewReminderController(log, reminderUsecase),
		HealthCheck: controllers.NewHealthCheckController(backend.Driver, backend.FallbackActive),
	}

	middlewares := middlewares.NewMiddlewares(log, jwtManager, authIPLimiter, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, handlers)
}
