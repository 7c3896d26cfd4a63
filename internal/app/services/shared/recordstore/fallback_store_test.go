package recordstore

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockAppointmentStore struct {
	mock.Mock
}

func (m *mockAppointmentStore) Collection() string {
	return constvars.CollectionAppointments
}

func (m *mockAppointmentStore) List(ctx context.Context, userID string) ([]*models.UserAppointment, error) {
	args := m.Called(ctx, userID)
	records, _ := args.Get(0).([]*models.UserAppointment)
	return records, args.Error(1)
}

func (m *mockAppointmentStore) ListAll(ctx context.Context) ([]*models.UserAppointment, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]*models.UserAppointment)
	return records, args.Error(1)
}

func (m *mockAppointmentStore) Create(ctx context.Context, userID string, record *models.UserAppointment) (*models.UserAppointment, error) {
	args := m.Called(ctx, userID, record)
	created, _ := args.Get(0).(*models.UserAppointment)
	return created, args.Error(1)
}

func (m *mockAppointmentStore) Update(ctx context.Context, userID string, record *models.UserAppointment) (*models.UserAppointment, error) {
	args := m.Called(ctx, userID, record)
	updated, _ := args.Get(0).(*models.UserAppointment)
	return updated, args.Error(1)
}

func (m *mockAppointmentStore) Delete(ctx context.Context, userID, id string) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

var _ contracts.RecordStore[*models.UserAppointment] = (*mockAppointmentStore)(nil)

func TestFallbackStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Primary Serves While Healthy", func(t *testing.T) {
		primary := new(mockAppointmentStore)
		local := NewFileStore[*models.UserAppointment](zap.NewNop(), t.TempDir(), constvars.CollectionAppointments)
		state := NewFallbackSwitch(zap.NewNop())
		store := NewFallbackStore[*models.UserAppointment](primary, local, state)

		primary.On("List", ctx, "user-1").Return([]*models.UserAppointment{newAppointment("a", "Remote")}, nil)

		records, err := store.List(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Remote", records[0].Title)
		assert.False(t, state.Active())
	})

	t.Run("Not Found Does Not Trip", func(t *testing.T) {
		primary := new(mockAppointmentStore)
		local := NewFileStore[*models.UserAppointment](zap.NewNop(), t.TempDir(), constvars.CollectionAppointments)
		state := NewFallbackSwitch(zap.NewNop())
		store := NewFallbackStore[*models.UserAppointment](primary, local, state)

		record := newAppointment("missing", "x")
		primary.On("Update", ctx, "user-1", record).Return(nil, exceptions.ErrRecordNotFound(nil, "missing", constvars.CollectionAppointments))

		_, err := store.Update(ctx, "user-1", record)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
		assert.False(t, state.Active(), "domain errors must not switch to the local store")
	})

	t.Run("First Failure Switches Permanently", func(t *testing.T) {
		primary := new(mockAppointmentStore)
		local := NewFileStore[*models.UserAppointment](zap.NewNop(), t.TempDir(), constvars.CollectionAppointments)
		state := NewFallbackSwitch(zap.NewNop())
		store := NewFallbackStore[*models.UserAppointment](primary, local, state)

		_, err := local.Create(ctx, "user-1", newAppointment("a", "Local"))
		require.NoError(t, err)
		primary.On("List", ctx, "user-1").Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("connection refused"))).Once()

		records, err := store.List(ctx, "user-1")
		require.NoError(t, err, "the failed call should be served by the local store")
		require.Len(t, records, 1)
		assert.Equal(t, "Local", records[0].Title)
		assert.True(t, state.Active())

		records, err = store.List(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, records, 1)
		primary.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("Replay Miss After Switch Is Logged", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		primary := new(mockAppointmentStore)
		local := NewFileStore[*models.UserAppointment](zap.NewNop(), t.TempDir(), constvars.CollectionAppointments)
		state := NewFallbackSwitch(zap.New(core))
		store := NewFallbackStore[*models.UserAppointment](primary, local, state)

		record := newAppointment("only-remote", "x")
		primary.On("Update", ctx, "user-1", record).Return(nil, exceptions.ErrMongoDBUpdateDocument(errors.New("connection reset")))

		_, err := store.Update(ctx, "user-1", record)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
		assert.True(t, state.Active())
		assert.Equal(t, 1, logs.FilterMessage("FallbackStore replayed call missed on local store after switching").Len())
	})

	t.Run("Switch Is Shared Across Collections", func(t *testing.T) {
		state := NewFallbackSwitch(zap.NewNop())
		primary := new(mockAppointmentStore)
		store := NewFallbackStore[*models.UserAppointment](primary, NewFileStore[*models.UserAppointment](zap.NewNop(), t.TempDir(), constvars.CollectionAppointments), state)

		state.Trip(constvars.CollectionMedications, errors.New("boom"))

		_, err := store.ListAll(ctx)
		require.NoError(t, err)
		primary.AssertNotCalled(t, "ListAll", mock.Anything)
	})
}

func TestOpen(t *testing.T) {
	t.Run("File Driver", func(t *testing.T) {
		backend := &Backend{Driver: constvars.StoreDriverFile, DataDir: t.TempDir(), Fallback: NewFallbackSwitch(zap.NewNop()), Log: zap.NewNop()}

		store := Open[*models.UserAppointment](backend, constvars.CollectionAppointments)

		_, ok := store.(*FileStore[*models.UserAppointment])
		assert.True(t, ok)
		assert.Equal(t, constvars.CollectionAppointments, store.Collection())
	})

	t.Run("Mongo Without Client Uses Local Through Fallback", func(t *testing.T) {
		backend := &Backend{Driver: constvars.StoreDriverMongo, DataDir: t.TempDir(), FallbackEnabled: true, Fallback: NewFallbackSwitch(zap.NewNop()), Log: zap.NewNop()}

		store := Open[*models.UserAppointment](backend, constvars.CollectionAppointments)

		_, ok := store.(*FallbackStore[*models.UserAppointment])
		assert.True(t, ok)
	})
}
