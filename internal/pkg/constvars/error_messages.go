package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"required_without": "is required when %s is not present",
	"email":            "must be a valid email",
	"alphanum":         "must contain only alphanumeric characters",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"eqfield":          "must match %s",
	"password":         "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":          "must be a number",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"uuid":             "must be a valid UUID",
	"dive":             "contains an invalid item",
	"reminder_time":    "must be a time of day in HH:MM format",
	"rfc3339":          "must be a date in RFC 3339 format",
	"health_metric":    "must be one of [blood-pressure heart-rate weight sleep]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"len":              true,
	"eqfield":          true,
	"gt":               true,
	"gte":              true,
	"lt":               true,
	"lte":              true,
	"oneof":            true,
	"required_without": true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientInvalidCurrentPassword        = "current password is incorrect"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientUserNotFound                  = "user not found"
	ErrClientRecordNotFound                = "record not found"
	ErrClientVerificationCodeInvalid       = "the verification code is invalid"
	ErrClientVerificationCodeExpired       = "the verification code already expired"
	ErrClientMissingUserID                 = "userId is required"
	ErrClientSessionUserMismatch           = "you can only access your own data"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientStorageUnavailable            = "file storage is not available"
	ErrClientUnknownMetric                 = "unknown health metric"
	ErrClientBatchInProgress               = "another synchronization is in progress, please retry"
	ErrClientRecordAlreadyExists           = "a record with this id already exists"
	ErrClientBatchItemMissingID            = "every item must carry an id"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevMissingRequestID         = "request id missing from context"

	// Usecase messages
	ErrDevEmailAlreadyExists    = "email already exists"
	ErrDevUsernameAlreadyExists = "username already exists"
	ErrDevUserNotExists         = "user not exists in our system"
	ErrDevCurrentPasswordWrong  = "current password does not match stored credential"
	ErrDevCodeMismatch          = "verification code does not match"
	ErrDevCodeExpired           = "verification code expired at %s"
	ErrDevCodeNotIssued         = "no verification code issued for user %s"
	ErrDevUnknownMetric         = "unknown health metric %q"
	ErrDevReadingNotFound       = "reading %s not found in %s"

	// Validation messages
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"
	ErrDevMissingUserID         = "userId missing from query, body and session"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSessionUserMismatch   = "session user %s does not match requested user %s"

	// Record store messages
	ErrDevStoreRecordNotFound = "record %s not found in collection %s"
	ErrDevStoreFileRead       = "failed to read collection file %s"
	ErrDevStoreFileWrite      = "failed to write collection file %s"
	ErrDevStoreFileDecode     = "failed to decode collection file %s"
	ErrDevStoreFileEncode     = "failed to encode collection %s"
	ErrDevStoreBatchLocked    = "batch lock %s is held by another request"
	ErrDevStoreRecordExists   = "record %s already exists in collection %s"
	ErrDevBatchItemMissingID  = "batch item at index %d has no id"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevMinioDisabled                      = "minio driver is disabled"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish     = "failed to publish message into queue %s"
	ErrDevRabbitMQOpenChannel = "failed to open rabbitmq channel"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevRequestLimitExceeded   = "request limit exceeded for %s"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)
