package models

// UserHealthData holds every reading of one user. There is a single record
// per user; readings are appended by metric.
type UserHealthData struct {
	RecordBase    `bson:",inline"`
	BloodPressure []BloodPressureReading `json:"bloodPressure" bson:"bloodPressure"`
	HeartRate     []HeartRateReading     `json:"heartRate" bson:"heartRate"`
	Weight        []WeightReading        `json:"weight" bson:"weight"`
	Sleep         []SleepReading         `json:"sleep" bson:"sleep"`
}

type BloodPressureReading struct {
	ID        string `json:"id" bson:"id"`
	Date      string `json:"date" bson:"date" validate:"required,rfc3339"`
	Systolic  int    `json:"systolic" bson:"systolic" validate:"required,gt=0"`
	Diastolic int    `json:"diastolic" bson:"diastolic" validate:"required,gt=0"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type HeartRateReading struct {
	ID    string `json:"id" bson:"id"`
	Date  string `json:"date" bson:"date" validate:"required,rfc3339"`
	BPM   int    `json:"bpm" bson:"bpm" validate:"required,gt=0"`
	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type WeightReading struct {
	ID    string  `json:"id" bson:"id"`
	Date  string  `json:"date" bson:"date" validate:"required,rfc3339"`
	Value float64 `json:"value" bson:"value" validate:"required,gt=0"`
	Unit  string  `json:"unit" bson:"unit" validate:"omitempty,oneof=kg lb"`
	Notes string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

type SleepReading struct {
	ID      string  `json:"id" bson:"id"`
	Date    string  `json:"date" bson:"date" validate:"required,rfc3339"`
	Hours   float64 `json:"hours" bson:"hours" validate:"gte=0,lte=24"`
	Quality string  `json:"quality,omitempty" bson:"quality,omitempty" validate:"omitempty,oneof=poor fair good excellent"`
	Notes   string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

// NewUserHealthData returns an empty container with non-nil slices so the
// JSON form always carries four arrays.
func NewUserHealthData(userID string) *UserHealthData {
	return &UserHealthData{
		RecordBase:    RecordBase{ID: userID, UserID: userID},
		BloodPressure: []BloodPressureReading{},
		HeartRate:     []HeartRateReading{},
		Weight:        []WeightReading{},
		Sleep:         []SleepReading{},
	}
}
