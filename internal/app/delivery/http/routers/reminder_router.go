package routers

import (
	"afiatrack-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachReminderRoutes(router chi.Router, reminderController *controllers.ReminderController) {
	router.Get("/", reminderController.GetReminders)
	router.Post("/reschedule", reminderController.Reschedule)
}
