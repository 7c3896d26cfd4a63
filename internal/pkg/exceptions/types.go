package exceptions

import (
	"afiatrack-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrMissingUserID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingUserID, constvars.ErrDevMissingUserID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
	ErrTooManyRequests = func(err error, identifier string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevRequestLimitExceeded, identifier))
	}

	// Auth
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrInvalidCurrentPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidCurrentPassword, constvars.ErrDevCurrentPasswordWrong)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}
	ErrUsernameAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientUsernameAlreadyExists, constvars.ErrDevUsernameAlreadyExists)
	}
	ErrUserNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevUserNotExists)
	}
	ErrVerificationCodeInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientVerificationCodeInvalid, constvars.ErrDevCodeMismatch)
	}
	ErrVerificationCodeNotIssued = func(err error, userID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientVerificationCodeInvalid, fmt.Sprintf(constvars.ErrDevCodeNotIssued, userID))
	}
	ErrVerificationCodeExpired = func(err error, expiredAt string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGone, constvars.ErrClientVerificationCodeExpired, fmt.Sprintf(constvars.ErrDevCodeExpired, expiredAt))
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrSessionUserMismatch = func(err error, sessionUserID, requestedUserID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientSessionUserMismatch, fmt.Sprintf(constvars.ErrDevAuthSessionUserMismatch, sessionUserID, requestedUserID))
	}

	// Record store
	ErrRecordNotFound = func(err error, recordID, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRecordNotFound, fmt.Sprintf(constvars.ErrDevStoreRecordNotFound, recordID, collection))
	}
	ErrRecordAlreadyExists = func(err error, recordID, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientRecordAlreadyExists, fmt.Sprintf(constvars.ErrDevStoreRecordExists, recordID, collection))
	}
	ErrBatchItemMissingID = func(err error, index int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientBatchItemMissingID, fmt.Sprintf(constvars.ErrDevBatchItemMissingID, index))
	}
	ErrFileStoreRead = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreFileRead, path))
	}
	ErrFileStoreWrite = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreFileWrite, path))
	}
	ErrFileStoreDecode = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreFileDecode, path))
	}
	ErrFileStoreEncode = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreFileEncode, collection))
	}
	ErrBatchInProgress = func(err error, lockKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientBatchInProgress, fmt.Sprintf(constvars.ErrDevStoreBatchLocked, lockKey))
	}

	// Health data
	ErrUnknownMetric = func(err error, metric string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUnknownMetric, fmt.Sprintf(constvars.ErrDevUnknownMetric, metric))
	}
	ErrReadingNotFound = func(err error, readingID, metric string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRecordNotFound, fmt.Sprintf(constvars.ErrDevReadingNotFound, readingID, metric))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioFindObjectPresignedURL = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObjectPresignedURL, bucketName))
	}
	ErrStorageUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, constvars.ErrDevMinioDisabled)
	}

	// Redis
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}

	// RabbitMQ
	ErrRabbitMQPublish = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queue))
	}
	ErrRabbitMQOpenChannel = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQOpenChannel)
	}
)
