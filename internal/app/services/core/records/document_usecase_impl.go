package records

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type documentUsecase struct {
	*recordUsecase[*models.UserDocument]
	MinioStorage   contracts.Storage
	InternalConfig *config.InternalConfig
}

var (
	documentUsecaseInstance contracts.DocumentUsecase
	onceDocumentUsecase     sync.Once
)

func NewDocumentUsecase(
	store contracts.RecordStore[*models.UserDocument],
	lockerService contracts.LockerService,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	onceDocumentUsecase.Do(func() {
		documentUsecaseInstance = newDocumentUsecase(store, lockerService, minioStorage, internalConfig, logger)
	})
	return documentUsecaseInstance
}

func newDocumentUsecase(
	store contracts.RecordStore[*models.UserDocument],
	lockerService contracts.LockerService,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *documentUsecase {
	return &documentUsecase{
		recordUsecase:  newRecordUsecase(store, lockerService, logger),
		MinioStorage:   minioStorage,
		InternalConfig: internalConfig,
	}
}

// AttachFile uploads file under <userId>/<documentId>/<filename> and stores a
// presigned download URL on the document.
func (uc *documentUsecase) AttachFile(ctx context.Context, userID, documentID string, file *contracts.FileUpload) (*models.UserDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.AttachFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingRecordIDKey, documentID),
	)

	if !uc.MinioStorage.Enabled() {
		return nil, exceptions.ErrStorageUnavailable(nil)
	}

	document, ok, err := recordstore.Find(ctx, uc.Store, userID, documentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, exceptions.ErrRecordNotFound(nil, documentID, uc.Store.Collection())
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectKey := fmt.Sprintf(constvars.DocumentObjectFormat, userID, documentID, objectFileName(file.FileName))

	err = uc.MinioStorage.UploadObject(ctx, bucketName, objectKey, file.Reader, file.Size, file.ContentType)
	if err != nil {
		uc.Log.Error("documentUsecase.AttachFile error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.String(constvars.LoggingObjectKey, objectKey),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.App.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	fileURL, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectKey, expiry)
	if err != nil {
		return nil, err
	}

	document.ObjectKey = objectKey
	document.FileURL = fileURL
	document, err = uc.Store.Update(ctx, userID, document)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("documentUsecase.AttachFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)
	return document, nil
}

func objectFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "file"
	}
	return base
}
