package healthdata

import (
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/dto/responses"
	"afiatrack-service/internal/pkg/utils"
	"math"
	"time"
)

const poundsPerKilogram = 2.20462

type sample struct {
	at    time.Time
	value float64
}

type reportWindow struct {
	from time.Time
	to   time.Time
}

// contains parses date and reports whether it falls inside the window.
// Readings with unparseable dates are left out of reports.
func (w reportWindow) contains(date string) (time.Time, bool) {
	at, err := utils.ParseDate(date)
	if err != nil {
		return time.Time{}, false
	}
	return at, !at.Before(w.from) && !at.After(w.to)
}

func weightInKg(r models.WeightReading) float64 {
	if r.Unit == "lb" {
		return round(r.Value / poundsPerKilogram)
	}
	return r.Value
}

// summarize leaves every pointer nil when there are no samples so the JSON
// carries nulls instead of zeros.
func summarize(samples []sample) responses.MetricSummary {
	summary := responses.MetricSummary{Count: len(samples)}
	if len(samples) == 0 {
		return summary
	}

	latest := samples[0]
	minimum, maximum, total := samples[0].value, samples[0].value, 0.0
	for _, s := range samples {
		if !s.at.Before(latest.at) {
			latest = s
		}
		minimum = math.Min(minimum, s.value)
		maximum = math.Max(maximum, s.value)
		total += s.value
	}
	average := round(total / float64(len(samples)))

	summary.Latest = &latest.value
	summary.Min = &minimum
	summary.Max = &maximum
	summary.Average = &average
	return summary
}

func round(value float64) float64 {
	return math.Round(value*100) / 100
}
