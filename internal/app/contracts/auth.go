package contracts

import (
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.Signup) (*responses.Session, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Session, error)
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (*responses.ForgotPassword, error)
	VerifyCode(ctx context.Context, request *requests.VerifyCode) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	ChangePassword(ctx context.Context, request *requests.ChangePassword) error
}

// Seeder fills a new account with demo records.
type Seeder interface {
	SeedUser(ctx context.Context, userID string) error
}
