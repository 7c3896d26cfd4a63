package reminders

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher is the part of an amqp091 channel the notifier uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type rabbitNotifier struct {
	mu          sync.Mutex
	openChannel func() (publisher, error)
	Channel     publisher
	Queue       string
	Log         *zap.Logger
}

// NewRabbitNotifier publishes fired reminders to queue. A failed publish is
// retried once on a freshly opened channel.
func NewRabbitNotifier(connection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.Notifier, error) {
	return newRabbitNotifier(func() (publisher, error) {
		return connection.Channel()
	}, queue, logger)
}

func newRabbitNotifier(openChannel func() (publisher, error), queue string, logger *zap.Logger) (*rabbitNotifier, error) {
	channel, err := openChannel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return &rabbitNotifier{
		openChannel: openChannel,
		Channel:     channel,
		Queue:       queue,
		Log:         logger,
	}, nil
}

func (n *rabbitNotifier) Notify(ctx context.Context, reminder *models.Reminder) error {
	body, err := json.Marshal(reminder)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	err = n.Channel.PublishWithContext(ctx, "", n.Queue, false, false, message)
	if err == nil {
		return nil
	}

	n.Log.Warn("rabbitNotifier.Notify publish failed, reopening channel",
		zap.String(constvars.LoggingQueueKey, n.Queue),
		zap.Error(err),
	)

	channel, openErr := n.openChannel()
	if openErr != nil {
		return exceptions.ErrRabbitMQOpenChannel(openErr)
	}
	_ = n.Channel.Close()
	n.Channel = channel

	err = n.Channel.PublishWithContext(ctx, "", n.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, n.Queue)
	}
	return nil
}

type logNotifier struct {
	Log *zap.Logger
}

// NewLogNotifier is used when rabbitmq is disabled.
func NewLogNotifier(logger *zap.Logger) contracts.Notifier {
	return &logNotifier{Log: logger}
}

func (n *logNotifier) Notify(ctx context.Context, reminder *models.Reminder) error {
	n.Log.Info("logNotifier.Notify reminder fired",
		zap.String(constvars.LoggingUserIDKey, reminder.UserID),
		zap.String(constvars.LoggingMedicationIDKey, reminder.MedicationID),
		zap.Time(constvars.LoggingFireAtKey, reminder.ScheduledFor),
		zap.String("title", reminder.Title),
	)
	return nil
}
