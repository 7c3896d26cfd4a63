package controllers

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/dto/responses"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// RecordController serves the list/create/update/delete/batch routes of one
// user owned collection. Resource names it in logs and messages.
type RecordController[T models.Record] struct {
	Log           *zap.Logger
	RecordUsecase contracts.RecordUsecase[T]
	Resource      string
	newRecord     func() T
}

type (
	AppointmentController = RecordController[*models.UserAppointment]
	MedicationController  = RecordController[*models.UserMedication]
)

// NewRecordController builds a controller for T. newRecord returns an empty
// record to decode request bodies into.
func NewRecordController[T models.Record](logger *zap.Logger, recordUsecase contracts.RecordUsecase[T], resource string, newRecord func() T) *RecordController[T] {
	return &RecordController[T]{
		Log:           logger,
		RecordUsecase: recordUsecase,
		Resource:      resource,
		newRecord:     newRecord,
	}
}

func (ctrl *RecordController[T]) caller(method string) string {
	return fmt.Sprintf("RecordController[%s].%s", ctrl.Resource, method)
}

func (ctrl *RecordController[T]) List(w http.ResponseWriter, r *http.Request) {
	caller := ctrl.caller("List")
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

	records, err := ctrl.RecordUsecase.List(ctx, userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	ctrl.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(records)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ListRecordsSuccessMessage, ctrl.Resource), records)
}

func (ctrl *RecordController[T]) Create(w http.ResponseWriter, r *http.Request) {
	caller := ctrl.caller("Create")
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	record, userID, ok := ctrl.decodeRecord(w, r, caller, requestID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	created, err := ctrl.RecordUsecase.Create(ctx, userID, record)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateRecordSuccessMessage, ctrl.Resource), created)
}

func (ctrl *RecordController[T]) Update(w http.ResponseWriter, r *http.Request) {
	caller := ctrl.caller("Update")
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	record, userID, ok := ctrl.decodeRecord(w, r, caller, requestID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	updated, err := ctrl.RecordUsecase.Update(ctx, userID, chi.URLParam(r, constvars.URLParamRecordID), record)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateRecordSuccessMessage, ctrl.Resource), updated)
}

func (ctrl *RecordController[T]) Delete(w http.ResponseWriter, r *http.Request) {
	caller := ctrl.caller("Delete")
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

	id := chi.URLParam(r, constvars.URLParamRecordID)
	deleted, err := ctrl.RecordUsecase.Delete(ctx, userID, id)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteRecordSuccessMessage, ctrl.Resource), responses.Deleted{
		ID:      id,
		Deleted: deleted,
	})
}

func (ctrl *RecordController[T]) Batch(w http.ResponseWriter, r *http.Request) {
	caller := ctrl.caller("Batch")
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	request := new(requests.Batch[T])
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	userID, err := resolveBodyUserID(r, request.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.RecordUsecase.Batch(ctx, userID, request.Items)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.BatchRecordsSuccessMessage, ctrl.Resource), result)
}

// decodeRecord reads and validates the body record and resolves the acting
// user from the query, the record's userId or the session.
func (ctrl *RecordController[T]) decodeRecord(w http.ResponseWriter, r *http.Request, caller, requestID string) (T, string, bool) {
	record := ctrl.newRecord()
	if err := json.NewDecoder(r.Body).Decode(record); err != nil {
		buildDecodeErrorResponse(ctrl.Log, w, caller, requestID, err)
		return record, "", false
	}

	if err := utils.ValidateStruct(record); err != nil {
		buildValidationErrorResponse(ctrl.Log, w, caller, requestID, err)
		return record, "", false
	}

	userID, err := resolveBodyUserID(r, record.GetUserID())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return record, "", false
	}
	return record, userID, true
}
