package controllers

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DocumentController struct {
	*RecordController[*models.UserDocument]
	DocumentUsecase contracts.DocumentUsecase
	InternalConfig  *config.InternalConfig
}

var (
	documentControllerInstance *DocumentController
	onceDocumentController     sync.Once
)

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase, internalConfig *config.InternalConfig) *DocumentController {
	onceDocumentController.Do(func() {
		instance := &DocumentController{
			RecordController: NewRecordController[*models.UserDocument](logger, documentUsecase, constvars.ResourceDocuments, func() *models.UserDocument {
				return new(models.UserDocument)
			}),
			DocumentUsecase: documentUsecase,
			InternalConfig:  internalConfig,
		}
		documentControllerInstance = instance
	})
	return documentControllerInstance
}

func (ctrl *DocumentController) AttachFile(w http.ResponseWriter, r *http.Request) {
	const caller = "DocumentController.AttachFile"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, caller)
	if !ok {
		return
	}

	userID, err := utils.ResolveQueryUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	maxUploadSize := int64(ctrl.InternalConfig.App.DocumentMaxUploadSizeInMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		ctrl.Log.Error(caller+" error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.FormFileFieldName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	document, err := ctrl.DocumentUsecase.AttachFile(ctx, userID, chi.URLParam(r, constvars.URLParamRecordID), &contracts.FileUpload{
		Reader:      file,
		Size:        header.Size,
		FileName:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, caller, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadFileSuccessMessage, document)
}
