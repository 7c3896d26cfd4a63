package routers

import (
	"afiatrack-service/internal/app/delivery/http/controllers"
	"afiatrack-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, profileController *controllers.ProfileController) {
	router.Get(routePath(constvars.ResourceProfile), profileController.GetProfile)
	router.Put(routePath(constvars.ResourceProfile), profileController.UpdateProfile)
	router.Get(routePath(constvars.ResourceSettings), profileController.GetSettings)
	router.Put(routePath(constvars.ResourceSettings), profileController.UpdateSettings)
}
