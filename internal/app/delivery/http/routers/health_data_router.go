package routers

import (
	"afiatrack-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHealthDataRoutes(router chi.Router, healthDataController *controllers.HealthDataController) {
	router.Get("/", healthDataController.GetHealthData)
	router.Get("/report", healthDataController.GetReport)
	router.Post("/{metric}", healthDataController.AddReading)
	router.Delete("/{metric}/{reading_id}", healthDataController.DeleteReading)
}
