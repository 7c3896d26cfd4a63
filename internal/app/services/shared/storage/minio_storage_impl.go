package storage

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

// NewMinioStorage wraps a minio client. A nil client yields a storage that
// reports itself disabled and refuses every call.
func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) Enabled() bool {
	return m.MinioClient != nil
}

func (m *minioStorage) UploadObject(ctx context.Context, bucketName, objectKey string, file io.Reader, size int64, contentType string) error {
	if !m.Enabled() {
		return exceptions.ErrStorageUnavailable(nil)
	}

	_, err := m.MinioClient.PutObject(ctx, bucketName, objectKey, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectKey string, expiryTime time.Duration) (string, error) {
	if !m.Enabled() {
		return "", exceptions.ErrStorageUnavailable(nil)
	}

	url, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectKey, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, bucketName)
	}
	return url.String(), nil
}
