package mailer

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/dto/requests"
	"afiatrack-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// mailerService hands messages to the mailer and sms workers through
// rabbitmq; it does not talk to any mail server itself.
type mailerService struct {
	Channel     *amqp091.Channel
	MailerQueue string
	SMSQueue    string
}

func NewMailerService(rabbitMQConnection *amqp091.Connection, mailerQueue, smsQueue string) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return &mailerService{
		Channel:     channel,
		MailerQueue: mailerQueue,
		SMSQueue:    smsQueue,
	}, nil
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	return s.publish(ctx, s.MailerQueue, request)
}

func (s *mailerService) SendSMS(ctx context.Context, request *requests.SMSPayload) error {
	return s.publish(ctx, s.SMSQueue, request)
}

func (s *mailerService) publish(ctx context.Context, queue string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, queue)
	}
	return nil
}

type logMailerService struct {
	Log *zap.Logger
}

// NewLogMailerService is used when rabbitmq is disabled. Messages are only
// logged.
func NewLogMailerService(logger *zap.Logger) contracts.MailerService {
	return &logMailerService{Log: logger}
}

func (s *logMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	s.Log.Info("logMailerService.SendEmail message not delivered, rabbitmq disabled",
		zap.Strings("to", request.To),
		zap.String("subject", request.Subject),
	)
	return nil
}

func (s *logMailerService) SendSMS(ctx context.Context, request *requests.SMSPayload) error {
	s.Log.Info("logMailerService.SendSMS message not delivered, rabbitmq disabled",
		zap.String("to", request.To),
	)
	return nil
}
