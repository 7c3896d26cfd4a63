package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	Enabled() bool
	UploadObject(ctx context.Context, bucketName, objectKey string, file io.Reader, size int64, contentType string) error
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectKey string, expiryTime time.Duration) (string, error)
}
