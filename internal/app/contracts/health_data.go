package contracts

import (
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/dto/responses"
	"context"
)

type HealthDataUsecase interface {
	GetHealthData(ctx context.Context, userID string) (*models.UserHealthData, error)
	AddReading(ctx context.Context, userID, metric string, request *requests.Reading) (*models.UserHealthData, error)
	DeleteReading(ctx context.Context, userID, metric, readingID string) error
	GetReport(ctx context.Context, userID string, days int) (*responses.HealthReport, error)
}
