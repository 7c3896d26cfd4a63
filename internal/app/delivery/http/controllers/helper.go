package controllers

import (
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const usecaseTimeout = 10 * time.Second

// requestIDFromContext writes the missing request id error itself and
// reports ok=false in that case.
func requestIDFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request, caller string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error(caller + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return requestID, true
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, caller, requestID string, err error) {
	log.Error(caller+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func buildDecodeErrorResponse(log *zap.Logger, w http.ResponseWriter, caller, requestID string, err error) {
	log.Error(caller+" error decoding JSON",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
}

func buildValidationErrorResponse(log *zap.Logger, w http.ResponseWriter, caller, requestID string, err error) {
	log.Error(caller+" validation error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
}
