package records

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/app/services/shared/recordstore"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockStorage struct {
	mock.Mock
	enabled bool
}

func (m *mockStorage) Enabled() bool {
	return m.enabled
}

func (m *mockStorage) UploadObject(ctx context.Context, bucketName, objectKey string, file io.Reader, size int64, contentType string) error {
	return m.Called(bucketName, objectKey, size, contentType).Error(0)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectKey string, expiryTime time.Duration) (string, error) {
	args := m.Called(bucketName, objectKey, expiryTime)
	return args.String(0), args.Error(1)
}

func newTestDocumentUsecase(t *testing.T, storage contracts.Storage) *documentUsecase {
	cfg := &config.InternalConfig{
		App:   config.App{MinioPreSignedUrlObjectExpiryTimeInHours: 24},
		Minio: config.AppMinio{BucketName: "afiatrack"},
	}
	store := recordstore.NewFileStore[*models.UserDocument](zap.NewNop(), t.TempDir(), constvars.CollectionDocuments)
	return newDocumentUsecase(store, newFakeLocker(), storage, cfg, zap.NewNop())
}

func TestAttachFile(t *testing.T) {
	ctx := context.Background()
	upload := func(name string) *contracts.FileUpload {
		return &contracts.FileUpload{
			Reader:      strings.NewReader("pdf bytes"),
			Size:        9,
			FileName:    name,
			ContentType: "application/pdf",
		}
	}

	t.Run("Uploads And Stores URL", func(t *testing.T) {
		storage := &mockStorage{enabled: true}
		storage.On("UploadObject", "afiatrack", "user-1/doc-1/report.pdf", int64(9), "application/pdf").Return(nil)
		storage.On("GetObjectUrlWithExpiryTime", "afiatrack", "user-1/doc-1/report.pdf", 24*time.Hour).Return("https://files.example/report.pdf", nil)
		uc := newTestDocumentUsecase(t, storage)

		_, err := uc.Create(ctx, "user-1", &models.UserDocument{
			RecordBase: models.RecordBase{ID: "doc-1"},
			Title:      "Lab",
			Type:       constvars.DocumentTypeLabResult,
		})
		require.NoError(t, err)

		document, err := uc.AttachFile(ctx, "user-1", "doc-1", upload("../../report.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "https://files.example/report.pdf", document.FileURL)
		assert.Equal(t, "user-1/doc-1/report.pdf", document.ObjectKey)

		documents, err := uc.List(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, documents, 1)
		assert.Equal(t, "https://files.example/report.pdf", documents[0].FileURL)
		storage.AssertExpectations(t)
	})

	t.Run("Unknown Document", func(t *testing.T) {
		uc := newTestDocumentUsecase(t, &mockStorage{enabled: true})

		_, err := uc.AttachFile(ctx, "user-1", "missing", upload("a.pdf"))
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("Storage Disabled", func(t *testing.T) {
		uc := newTestDocumentUsecase(t, &mockStorage{enabled: false})

		_, err := uc.AttachFile(ctx, "user-1", "doc-1", upload("a.pdf"))
		require.Error(t, err)
		assert.Equal(t, constvars.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
	})
}
