package seed

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedUser(t *testing.T) {
	ctx := context.Background()
	cfg := &config.InternalConfig{Store: config.AppStore{Driver: "file", DataDir: t.TempDir()}}
	stores := recordstore.NewStores(recordstore.NewBackend(zap.NewNop(), cfg, nil))

	s := NewSeeder(stores, nil, zap.NewNop()).(*seeder)
	s.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	require.NoError(t, s.SeedUser(ctx, "user-1"))

	appointments, err := stores.Appointments.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, appointments, 2)

	medications, err := stores.Medications.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, medications, 1)
	assert.True(t, medications[0].Reminders)
	assert.Equal(t, []string{"08:00"}, medications[0].ReminderTimes)

	healthData, err := stores.HealthData.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, healthData, 1)
	assert.Len(t, healthData[0].BloodPressure, demoDays)
	assert.Len(t, healthData[0].Sleep, demoDays)
	assert.Equal(t, "2026-03-10T08:00:00Z", healthData[0].HeartRate[demoDays-1].Date)

	documents, err := stores.Documents.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, documents, 1)

	other, err := stores.Appointments.List(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
