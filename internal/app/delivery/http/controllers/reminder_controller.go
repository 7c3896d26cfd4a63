package controllers

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type ReminderController struct {
	Log             *zap.Logger
	ReminderUsecase contracts.ReminderUsecase
}

var (
	reminderControllerInstance *ReminderController
	onceReminderController     sync.Once
)

func NewReminderController(logger *zap.Logger, reminderUsecase contracts.ReminderUsecase) *ReminderController {
	onceReminderController.Do(func() {
		instance := &ReminderController{
			Log:             logger,
			ReminderUsecase: reminderUsecase,
		}
		reminderControllerInstance = instance
	})
	return reminderControllerInstance
}

func (ctrl *ReminderController) GetReminders(w http.ResponseWriter, r *http.Request) {
	const caller = "ReminderController.GetReminders"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	userID, err := utils.ResolveQueryUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pending, err := ctrl.ReminderUsecase.ListPending(r.Context(), userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRemindersSuccessMessage, pending)
}

func (ctrl *ReminderController) Reschedule(w http.ResponseWriter, r *http.Request) {
	const caller = "ReminderController.Reschedule"
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

	pending, err := ctrl.ReminderUsecase.Reschedule(ctx, userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	ctrl.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(pending)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RescheduleRemindersSuccessMessage, pending)
}
