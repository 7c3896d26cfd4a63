package responses

type HealthReport struct {
	UserID        string               `json:"userId"`
	Days          int                  `json:"days"`
	From          string               `json:"from"`
	To            string               `json:"to"`
	BloodPressure BloodPressureSummary `json:"bloodPressure"`
	HeartRate     MetricSummary        `json:"heartRate"`
	Weight        MetricSummary        `json:"weight"`
	Sleep         MetricSummary        `json:"sleep"`
}

type MetricSummary struct {
	Count   int      `json:"count"`
	Latest  *float64 `json:"latest"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Average *float64 `json:"average"`
}

type BloodPressureSummary struct {
	Count     int           `json:"count"`
	Systolic  MetricSummary `json:"systolic"`
	Diastolic MetricSummary `json:"diastolic"`
}
