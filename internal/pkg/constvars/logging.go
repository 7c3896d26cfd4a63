package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingUserIDKey         = "user_id"
	LoggingRecordIDKey       = "record_id"
	LoggingCollectionKey     = "collection"
	LoggingMetricKey         = "metric"
	LoggingMedicationIDKey   = "medication_id"
	LoggingReminderTimeKey   = "reminder_time"
	LoggingFireAtKey         = "fire_at"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingQueueKey          = "queue"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object_key"
	LoggingCountKey          = "count"
	LoggingCreatedCountKey   = "created_count"
	LoggingUpdatedCountKey   = "updated_count"
	LoggingDeletedCountKey   = "deleted_count"
	LoggingIdentifierKey     = "identifier"
	LoggingFallbackKey       = "fallback"
	LoggingStoreDriverKey    = "store_driver"
	LoggingResponseLengthKey = "response_length"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
