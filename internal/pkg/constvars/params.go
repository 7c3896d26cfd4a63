package constvars

const (
	URLParamRecordID  = "id"
	URLParamMetric    = "metric"
	URLParamReadingID = "reading_id"
)

const (
	URLQueryParamUserID = "userId"
	URLQueryParamDays   = "days"
)

const (
	FormFileFieldName = "file"
)
