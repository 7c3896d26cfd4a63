package contracts

import (
	"afiatrack-service/internal/pkg/dto/requests"
	"context"
)

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
	SendSMS(ctx context.Context, request *requests.SMSPayload) error
}
