package healthdata

import (
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHealthDataUsecase(t *testing.T) *healthDataUsecase {
	store := recordstore.NewFileStore[*models.UserHealthData](zap.NewNop(), t.TempDir(), constvars.CollectionHealthData)
	uc := newHealthDataUsecase(store, zap.NewNop())
	uc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestHealthData(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Arrays For New User", func(t *testing.T) {
		uc := newTestHealthDataUsecase(t)

		data, err := uc.GetHealthData(ctx, "user-1")
		require.NoError(t, err)
		assert.NotNil(t, data.BloodPressure)
		assert.NotNil(t, data.HeartRate)
		assert.NotNil(t, data.Weight)
		assert.NotNil(t, data.Sleep)
	})

	t.Run("Add Appends Without Dedup", func(t *testing.T) {
		uc := newTestHealthDataUsecase(t)
		reading := &requests.Reading{Date: "2026-03-09T08:00:00Z", BPM: 70}

		_, err := uc.AddReading(ctx, "user-1", constvars.MetricHeartRate, reading)
		require.NoError(t, err)
		data, err := uc.AddReading(ctx, "user-1", constvars.MetricHeartRate, reading)
		require.NoError(t, err)

		require.Len(t, data.HeartRate, 2)
		assert.NotEmpty(t, data.HeartRate[0].ID)
		assert.NotEqual(t, data.HeartRate[0].ID, data.HeartRate[1].ID)

		stored, err := uc.GetHealthData(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, stored.HeartRate, 2)
	})

	t.Run("Unknown Metric", func(t *testing.T) {
		uc := newTestHealthDataUsecase(t)

		_, err := uc.AddReading(ctx, "user-1", "glucose", &requests.Reading{Date: "2026-03-09"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("Invalid Reading", func(t *testing.T) {
		uc := newTestHealthDataUsecase(t)

		_, err := uc.AddReading(ctx, "user-1", constvars.MetricBloodPressure, &requests.Reading{Date: "yesterday", Systolic: 120, Diastolic: 80})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))

		data, err := uc.GetHealthData(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, data.BloodPressure, "nothing stored on failure")
	})

	t.Run("Delete Reading", func(t *testing.T) {
		uc := newTestHealthDataUsecase(t)
		_, err := uc.AddReading(ctx, "user-1", constvars.MetricWeight, &requests.Reading{ID: "w1", Date: "2026-03-09", Value: 70})
		require.NoError(t, err)

		require.NoError(t, uc.DeleteReading(ctx, "user-1", constvars.MetricWeight, "w1"))

		err = uc.DeleteReading(ctx, "user-1", constvars.MetricWeight, "w1")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestGetReport(t *testing.T) {
	ctx := context.Background()
	uc := newTestHealthDataUsecase(t)

	add := func(metric string, reading *requests.Reading) {
		_, err := uc.AddReading(ctx, "user-1", metric, reading)
		require.NoError(t, err)
	}
	add(constvars.MetricBloodPressure, &requests.Reading{Date: "2026-03-08T08:00:00Z", Systolic: 120, Diastolic: 80})
	add(constvars.MetricBloodPressure, &requests.Reading{Date: "2026-03-09T08:00:00Z", Systolic: 130, Diastolic: 85})
	add(constvars.MetricBloodPressure, &requests.Reading{Date: "2025-12-01T08:00:00Z", Systolic: 160, Diastolic: 100})
	add(constvars.MetricWeight, &requests.Reading{Date: "2026-03-09", Value: 154.324, Unit: "lb"})
	add(constvars.MetricSleep, &requests.Reading{Date: "2026-03-09", Hours: 7})
	add(constvars.MetricSleep, &requests.Reading{Date: "2026-03-08", Hours: 6})

	report, err := uc.GetReport(ctx, "user-1", 30)
	require.NoError(t, err)

	assert.Equal(t, 30, report.Days)
	assert.Equal(t, 2, report.BloodPressure.Count, "reading older than the window is excluded")
	assert.Equal(t, 130.0, *report.BloodPressure.Systolic.Latest)
	assert.Equal(t, 120.0, *report.BloodPressure.Systolic.Min)
	assert.Equal(t, 85.0, *report.BloodPressure.Diastolic.Max)
	assert.Equal(t, 82.5, *report.BloodPressure.Diastolic.Average)

	assert.Equal(t, 70.0, *report.Weight.Latest, "pounds converted to kilograms")

	assert.Equal(t, 2, report.Sleep.Count)
	assert.Equal(t, 7.0, *report.Sleep.Latest)
	assert.Equal(t, 6.5, *report.Sleep.Average)

	assert.Zero(t, report.HeartRate.Count)
	assert.Nil(t, report.HeartRate.Average)
}
