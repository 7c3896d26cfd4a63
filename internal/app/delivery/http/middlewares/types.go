package middlewares

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/services/shared/jwtmanager"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	JWTManager      *jwtmanager.JWTManager
	AuthRateLimiter contracts.RateLimiter
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	jwtManager *jwtmanager.JWTManager,
	authRateLimiter contracts.RateLimiter,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:             logger,
		JWTManager:      jwtManager,
		AuthRateLimiter: authRateLimiter,
		InternalConfig:  internalConfig,
	}
}
