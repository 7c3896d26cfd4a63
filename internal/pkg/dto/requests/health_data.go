package requests

// Reading is the union of every metric's fields; only the ones that belong
// to the posted metric are used.
type Reading struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Systolic  int     `json:"systolic"`
	Diastolic int     `json:"diastolic"`
	BPM       int     `json:"bpm"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Hours     float64 `json:"hours"`
	Quality   string  `json:"quality"`
	Notes     string  `json:"notes"`
}
