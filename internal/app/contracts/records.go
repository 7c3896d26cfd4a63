package contracts

import (
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/dto/responses"
	"context"
	"io"
)

type RecordUsecase[T models.Record] interface {
	List(ctx context.Context, userID string) ([]T, error)
	Create(ctx context.Context, userID string, record T) (T, error)
	Update(ctx context.Context, userID, id string, record T) (T, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
	Batch(ctx context.Context, userID string, items []T) (*responses.BatchResult, error)
}

type DocumentUsecase interface {
	RecordUsecase[*models.UserDocument]
	AttachFile(ctx context.Context, userID, documentID string, file *FileUpload) (*models.UserDocument, error)
}

type FileUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}
