package jwtmanager

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// JWTManager issues and verifies HS256 session tokens whose subject is the
// user id.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type CreateTokenInput struct {
	Subject string
}

type CreateTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type VerifyTokenInput struct {
	Token string
}

type VerifyTokenOutput struct {
	Valid   bool
	Subject string
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) *JWTManager {
	ttl := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTManager{
		log:    log,
		secret: []byte(cfg.JWT.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	if in == nil || strings.TrimSpace(in.Subject) == "" {
		return nil, exceptions.ErrTokenGenerate(fmt.Errorf("subject is required"))
	}

	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   in.Subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	return &CreateTokenOutput{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyToken reports Valid false, without an error, for tokens that are
// malformed, expired or signed with another key.
func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	if in == nil || strings.TrimSpace(in.Token) == "" {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(in.Token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		j.log.Debug("JWTManager.VerifyToken rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &VerifyTokenOutput{Valid: false}, nil
	}

	return &VerifyTokenOutput{Valid: true, Subject: claims.Subject}, nil
}
