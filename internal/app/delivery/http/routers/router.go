package routers

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/delivery/http/controllers"
	"afiatrack-service/internal/app/delivery/http/middlewares"
	"afiatrack-service/internal/pkg/constvars"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

const compressionLevel = 5

// Controllers groups every HTTP handler the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Profile      *controllers.ProfileController
	Appointments *controllers.AppointmentController
	Medications  *controllers.MedicationController
	Documents    *controllers.DocumentController
	HealthData   *controllers.HealthDataController
	Reminders    *controllers.ReminderController
	HealthCheck  *controllers.HealthCheckController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	handlers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.CORSAllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	compressor := middleware.NewCompressor(compressionLevel, constvars.MIMEApplicationJSON)
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	router.Use(compressor.Handler)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", handlers.HealthCheck.HealthCheck)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Use(middlewares.SessionOptional)

		r.Route(routePath(constvars.ResourceAuth), func(r chi.Router) {
			attachAuthRoutes(r, middlewares, handlers.Auth)
		})

		attachProfileRoutes(r, handlers.Profile)

		r.Route(routePath(constvars.ResourceAppointments), func(r chi.Router) {
			attachRecordRoutes(r, handlers.Appointments)
		})

		r.Route(routePath(constvars.ResourceMedications), func(r chi.Router) {
			attachRecordRoutes(r, handlers.Medications)
		})

		r.Route(routePath(constvars.ResourceDocuments), func(r chi.Router) {
			attachDocumentRoutes(r, handlers.Documents)
		})

		r.Route(routePath(constvars.ResourceHealthData), func(r chi.Router) {
			attachHealthDataRoutes(r, handlers.HealthData)
		})

		r.Route(routePath(constvars.ResourceReminders), func(r chi.Router) {
			attachReminderRoutes(r, handlers.Reminders)
		})
	})
}

func routePath(resource string) string {
	return "/" + resource
}
