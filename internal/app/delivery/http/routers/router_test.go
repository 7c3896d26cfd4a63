package routers

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/delivery/http/controllers"
	"afiatrack-service/internal/app/delivery/http/middlewares"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/core/records"
	"afiatrack-service/internal/app/services/shared/jwtmanager"
	"afiatrack-service/internal/app/services/shared/locker"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/dto/responses"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Session, error) {
	args := m.Called(ctx, request)
	session, _ := args.Get(0).(*responses.Session)
	return session, args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Session, error) {
	args := m.Called(ctx, request)
	session, _ := args.Get(0).(*responses.Session)
	return session, args.Error(1)
}

func (m *mockAuthUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (*responses.ForgotPassword, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.ForgotPassword)
	return response, args.Error(1)
}

func (m *mockAuthUsecase) VerifyCode(ctx context.Context, request *requests.VerifyCode) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockAuthUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockAuthUsecase) ChangePassword(ctx context.Context, request *requests.ChangePassword) error {
	return m.Called(ctx, request).Error(0)
}

type mockProfileUsecase struct {
	mock.Mock
}

func (m *mockProfileUsecase) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*models.UserProfile)
	return profile, args.Error(1)
}

func (m *mockProfileUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.UserProfile, error) {
	args := m.Called(ctx, request)
	profile, _ := args.Get(0).(*models.UserProfile)
	return profile, args.Error(1)
}

func (m *mockProfileUsecase) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	settings, _ := args.Get(0).(*models.UserSettings)
	return settings, args.Error(1)
}

func (m *mockProfileUsecase) UpdateSettings(ctx context.Context, request *requests.UpdateSettings) (*models.UserSettings, error) {
	args := m.Called(ctx, request)
	settings, _ := args.Get(0).(*models.UserSettings)
	return settings, args.Error(1)
}

type mockAppointmentUsecase struct {
	mock.Mock
}

func (m *mockAppointmentUsecase) List(ctx context.Context, userID string) ([]*models.UserAppointment, error) {
	args := m.Called(ctx, userID)
	records, _ := args.Get(0).([]*models.UserAppointment)
	return records, args.Error(1)
}

func (m *mockAppointmentUsecase) Create(ctx context.Context, userID string, record *models.UserAppointment) (*models.UserAppointment, error) {
	args := m.Called(ctx, userID, record)
	created, _ := args.Get(0).(*models.UserAppointment)
	return created, args.Error(1)
}

func (m *mockAppointmentUsecase) Update(ctx context.Context, userID, id string, record *models.UserAppointment) (*models.UserAppointment, error) {
	args := m.Called(ctx, userID, id, record)
	updated, _ := args.Get(0).(*models.UserAppointment)
	return updated, args.Error(1)
}

func (m *mockAppointmentUsecase) Delete(ctx context.Context, userID, id string) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAppointmentUsecase) Batch(ctx context.Context, userID string, items []*models.UserAppointment) (*responses.BatchResult, error) {
	args := m.Called(ctx, userID, items)
	result, _ := args.Get(0).(*responses.BatchResult)
	return result, args.Error(1)
}

type mockHealthDataUsecase struct {
	mock.Mock
}

func (m *mockHealthDataUsecase) GetHealthData(ctx context.Context, userID string) (*models.UserHealthData, error) {
	args := m.Called(ctx, userID)
	data, _ := args.Get(0).(*models.UserHealthData)
	return data, args.Error(1)
}

func (m *mockHealthDataUsecase) AddReading(ctx context.Context, userID, metric string, request *requests.Reading) (*models.UserHealthData, error) {
	args := m.Called(ctx, userID, metric, request)
	data, _ := args.Get(0).(*models.UserHealthData)
	return data, args.Error(1)
}

func (m *mockHealthDataUsecase) DeleteReading(ctx context.Context, userID, metric, readingID string) error {
	return m.Called(ctx, userID, metric, readingID).Error(0)
}

func (m *mockHealthDataUsecase) GetReport(ctx context.Context, userID string, days int) (*responses.HealthReport, error) {
	args := m.Called(ctx, userID, days)
	report, _ := args.Get(0).(*responses.HealthReport)
	return report, args.Error(1)
}

type fixedLimiter struct {
	allow bool
}

func (l fixedLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.allow, nil
}

type testServer struct {
	router      *chi.Mux
	jwtManager  *jwtmanager.JWTManager
	auth        *mockAuthUsecase
	profile     *mockProfileUsecase
	appointment *mockAppointmentUsecase
	healthData  *mockHealthDataUsecase
}

func newTestServer(t *testing.T, authAllowed bool) *testServer {
	t.Helper()
	return newTestServerWithAppointments(t, authAllowed, nil)
}

// newTestServerWithAppointments serves appointments from appointments when it
// is not nil and from the mocked usecase otherwise.
func newTestServerWithAppointments(t *testing.T, authAllowed bool, appointments contracts.RecordUsecase[*models.UserAppointment]) *testServer {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "/api",
			CORSAllowedOrigins:         "*",
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 1,
			DocumentMaxUploadSizeInMB:  1,
		},
		JWT: config.AppJWT{Secret: "router-test-secret", ExpTimeInHour: 1},
	}

	server := &testServer{
		router:      chi.NewRouter(),
		jwtManager:  jwtmanager.NewJWTManager(internalConfig, logger),
		auth:        new(mockAuthUsecase),
		profile:     new(mockProfileUsecase),
		appointment: new(mockAppointmentUsecase),
		healthData:  new(mockHealthDataUsecase),
	}

	if appointments == nil {
		appointments = server.appointment
	}

	mw := middlewares.NewMiddlewares(logger, server.jwtManager, fixedLimiter{allow: authAllowed}, internalConfig)
	handlers := &Controllers{
		Auth:         &controllers.AuthController{Log: logger, AuthUsecase: server.auth},
		Profile:      &controllers.ProfileController{Log: logger, ProfileUsecase: server.profile},
		Appointments: controllers.NewRecordController[*models.UserAppointment](logger, appointments, constvars.ResourceAppointments, func() *models.UserAppointment { return new(models.UserAppointment) }),
		Medications:  controllers.NewRecordController[*models.UserMedication](logger, nil, constvars.ResourceMedications, func() *models.UserMedication { return new(models.UserMedication) }),
		Documents: &controllers.DocumentController{
			RecordController: controllers.NewRecordController[*models.UserDocument](logger, nil, constvars.ResourceDocuments, func() *models.UserDocument { return new(models.UserDocument) }),
			InternalConfig:   internalConfig,
		},
		HealthData:  &controllers.HealthDataController{Log: logger, HealthDataUsecase: server.healthData},
		Reminders:   &controllers.ReminderController{Log: logger},
		HealthCheck: controllers.NewHealthCheckController(constvars.StoreDriverFile, func() bool { return false }),
	}
	SetupRoutes(server.router, internalConfig, mw, handlers)
	return server
}

func (s *testServer) token(t *testing.T, userID string) string {
	t.Helper()
	output, err := s.jwtManager.CreateToken(context.Background(), &jwtmanager.CreateTokenInput{Subject: userID})
	require.NoError(t, err)
	return output.Token
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_HealthCheck(t *testing.T) {
	server := newTestServer(t, true)

	rr := server.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Success bool                  `json:"success"`
		Data    responses.HealthCheck `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, constvars.StoreDriverFile, body.Data.StoreDriver)
	assert.False(t, body.Data.Fallback)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
}

func TestRouter_CompressesJSON(t *testing.T) {
	server := newTestServer(t, true)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Accept-Encoding", "br")

	rr := server.do(req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "br", rr.Header().Get("Content-Encoding"))
	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(brotli.NewReader(rr.Body)).Decode(&body))
	assert.True(t, body.Success)
}

func TestRouter_Login(t *testing.T) {
	server := newTestServer(t, true)
	server.auth.On("Login", mock.Anything, mock.MatchedBy(func(r *requests.Login) bool {
		return r.EmailOrUsername == "amina" && r.Password == "secret1"
	})).Return(&responses.Session{
		User:  responses.User{ID: "u1", Username: "amina", Email: "amina@example.com"},
		Token: "token",
	}, nil)

	body, _ := json.Marshal(requests.Login{EmailOrUsername: "amina", Password: "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set(constvars.HeaderXRequestID, "req-1")

	rr := server.do(req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "req-1", rr.Header().Get(constvars.HeaderXRequestID))
	server.auth.AssertExpectations(t)
}

func TestRouter_LoginValidationError(t *testing.T) {
	server := newTestServer(t, true)

	body, _ := json.Marshal(requests.Login{EmailOrUsername: "amina"})
	rr := server.do(httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	server.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestRouter_AuthRateLimited(t *testing.T) {
	server := newTestServer(t, false)

	body, _ := json.Marshal(requests.Login{EmailOrUsername: "amina", Password: "secret1"})
	rr := server.do(httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get(constvars.HeaderRetryAfter))
	server.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestRouter_SessionHandling(t *testing.T) {
	t.Run("invalid bearer token is rejected", func(t *testing.T) {
		server := newTestServer(t, true)
		req := httptest.NewRequest(http.MethodGet, "/api/profile?userId=u1", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+"not-a-token")

		rr := server.do(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		server.profile.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	})

	t.Run("session user must match requested user", func(t *testing.T) {
		server := newTestServer(t, true)
		req := httptest.NewRequest(http.MethodGet, "/api/profile?userId=u2", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+server.token(t, "u1"))

		rr := server.do(req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		server.profile.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	})

	t.Run("session user is used when userId is omitted", func(t *testing.T) {
		server := newTestServer(t, true)
		server.profile.On("GetProfile", mock.Anything, "u1").Return(&models.UserProfile{}, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+server.token(t, "u1"))

		rr := server.do(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		server.profile.AssertExpectations(t)
	})

	t.Run("no session and no userId", func(t *testing.T) {
		server := newTestServer(t, true)

		rr := server.do(httptest.NewRequest(http.MethodGet, "/api/profile", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRouter_AppointmentBatch(t *testing.T) {
	server := newTestServer(t, true)
	server.appointment.On("Batch", mock.Anything, "u1", mock.MatchedBy(func(items []*models.UserAppointment) bool {
		return len(items) == 1 && items[0].Title == "Checkup"
	})).Return(&responses.BatchResult{Created: []string{"a1"}, Updated: []string{}, Deleted: []string{}}, nil)

	body := []byte(`{"userId":"u1","items":[{"id":"a1","title":"Checkup","date":"2026-10-20T09:00:00Z"}]}`)
	rr := server.do(httptest.NewRequest(http.MethodPost, "/api/appointments/batch", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	var response struct {
		Data responses.BatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, []string{"a1"}, response.Data.Created)
	server.appointment.AssertExpectations(t)
}

func TestRouter_AppointmentBatchAgainstFileStore(t *testing.T) {
	logger := zap.NewNop()
	store := recordstore.NewFileStore[*models.UserAppointment](logger, t.TempDir(), constvars.CollectionAppointments)
	_, err := store.Create(context.Background(), "U1", &models.UserAppointment{RecordBase: models.RecordBase{ID: "A"}, Title: "X"})
	require.NoError(t, err)
	usecase := records.NewRecordUsecase(store, locker.NewLockService(nil, logger), logger, records.WithOrder(records.ByAppointmentDate))
	server := newTestServerWithAppointments(t, true, usecase)

	body := []byte(`{"userId":"U1","items":[{"id":"A","title":"Y"},{"id":"B","title":"Z"}]}`)
	for run := 1; run <= 2; run++ {
		rr := server.do(httptest.NewRequest(http.MethodPost, "/api/appointments/batch", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Code, "run %d: %s", run, rr.Body.String())

		stored, err := store.List(context.Background(), "U1")
		require.NoError(t, err)
		require.Len(t, stored, 2, "run %d", run)
		assert.Equal(t, "A", stored[0].ID)
		assert.Equal(t, "Y", stored[0].Title)
		assert.Equal(t, "B", stored[1].ID)
		assert.Equal(t, "Z", stored[1].Title)
	}

	missingID := []byte(`{"userId":"U1","items":[{"title":"no id"}]}`)
	rr := server.do(httptest.NewRequest(http.MethodPost, "/api/appointments/batch", bytes.NewReader(missingID)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	stored, err := store.List(context.Background(), "U1")
	require.NoError(t, err)
	assert.Len(t, stored, 2, "a rejected batch leaves the store untouched")
}

func TestRouter_AppointmentDelete(t *testing.T) {
	server := newTestServer(t, true)
	server.appointment.On("Delete", mock.Anything, "u1", "a1").Return(true, nil)

	rr := server.do(httptest.NewRequest(http.MethodDelete, "/api/appointments/a1?userId=u1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	server.appointment.AssertExpectations(t)
}

func TestRouter_HealthDataRoutes(t *testing.T) {
	t.Run("report reads the days window", func(t *testing.T) {
		server := newTestServer(t, true)
		server.healthData.On("GetReport", mock.Anything, "u1", 7).Return(&responses.HealthReport{}, nil)

		rr := server.do(httptest.NewRequest(http.MethodGet, "/api/health-data/report?userId=u1&days=7", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		server.healthData.AssertExpectations(t)
	})

	t.Run("reading delete passes metric and reading id", func(t *testing.T) {
		server := newTestServer(t, true)
		server.healthData.On("DeleteReading", mock.Anything, "u1", "weight", "r1").Return(nil)

		rr := server.do(httptest.NewRequest(http.MethodDelete, "/api/health-data/weight/r1?userId=u1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		server.healthData.AssertExpectations(t)
	})

	t.Run("reading add passes the metric", func(t *testing.T) {
		server := newTestServer(t, true)
		server.healthData.On("AddReading", mock.Anything, "u1", "heart-rate", mock.AnythingOfType("*requests.Reading")).
			Return(models.NewUserHealthData("u1"), nil)

		body := []byte(`{"date":"2026-10-18T08:00:00Z","bpm":72}`)
		rr := server.do(httptest.NewRequest(http.MethodPost, "/api/health-data/heart-rate?userId=u1", bytes.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		server.healthData.AssertExpectations(t)
	})
}
