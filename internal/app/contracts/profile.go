package contracts

import (
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/dto/requests"
	"context"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.UserProfile, error)
	GetSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, request *requests.UpdateSettings) (*models.UserSettings, error)
}
