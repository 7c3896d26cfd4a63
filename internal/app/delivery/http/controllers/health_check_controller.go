package controllers

import (
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/responses"
	"afiatrack-service/internal/pkg/utils"
	"net/http"
)

// HealthCheckController reports liveness and which record store is serving.
type HealthCheckController struct {
	StoreDriver    string
	FallbackActive func() bool
}

func NewHealthCheckController(storeDriver string, fallbackActive func() bool) *HealthCheckController {
	return &HealthCheckController{
		StoreDriver:    storeDriver,
		FallbackActive: fallbackActive,
	}
}

func (ctrl *HealthCheckController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.HealthCheck{
		Status:      constvars.ResponseSuccess,
		StoreDriver: ctrl.StoreDriver,
		Fallback:    ctrl.FallbackActive(),
	})
}
