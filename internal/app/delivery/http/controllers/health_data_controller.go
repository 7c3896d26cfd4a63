package controllers

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/dto/responses"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HealthDataController struct {
	Log               *zap.Logger
	HealthDataUsecase contracts.HealthDataUsecase
}

var (
	healthDataControllerInstance *HealthDataController
	onceHealthDataController     sync.Once
)

func NewHealthDataController(logger *zap.Logger, healthDataUsecase contracts.HealthDataUsecase) *HealthDataController {
	onceHealthDataController.Do(func() {
		instance := &HealthDataController{
			Log:               logger,
			HealthDataUsecase: healthDataUsecase,
		}
		healthDataControllerInstance = instance
	})
	return healthDataControllerInstance
}

func (ctrl *HealthDataController) GetHealthData(w http.ResponseWriter, r *http.Request) {
	const caller = "HealthDataController.GetHealthData"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	userID, err := utils.ResolveQueryUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	data, err := ctrl.HealthDataUsecase.GetHealthData(ctx, userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHealthDataSuccessMessage, data)
}

func (ctrl *HealthDataController) AddReading(w http.ResponseWriter, r *http.Request) {
	const caller = "HealthDataController.AddReading"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	userID, err := utils.ResolveQueryUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Reading)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	data, err := ctrl.HealthDataUsecase.AddReading(ctx, userID, chi.URLParam(r, constvars.URLParamMetric), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddReadingSuccessMessage, data)
}

func (ctrl *HealthDataController) DeleteReading(w http.ResponseWriter, r *http.Request) {
	const caller = "HealthDataController.DeleteReading"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	userID, err := utils.ResolveQueryUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	readingID := chi.URLParam(r, constvars.URLParamReadingID)
	err = ctrl.HealthDataUsecase.DeleteReading(ctx, userID, chi.URLParam(r, constvars.URLParamMetric), readingID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteReadingSuccessMessage, responses.Deleted{
		ID:      readingID,
		Deleted: true,
	})
}

func (ctrl *HealthDataController) GetReport(w http.ResponseWriter, r *http.Request) {
	const caller = "HealthDataController.GetReport"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	userID, err := utils.ResolveQueryUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	report, err := ctrl.HealthDataUsecase.GetReport(ctx, userID, utils.ParseDaysQuery(r))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHealthReportSuccessMessage, report)
}
