package messaging

import (
	"afiatrack-service/internal/app/config"
	"fmt"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}

	err = declareQueues(conn,
		internalConfig.RabbitMQ.MailerQueue,
		internalConfig.RabbitMQ.SMSQueue,
		internalConfig.RabbitMQ.ReminderQueue,
	)
	if err != nil {
		log.Fatalf("Failed to declare rabbitMQ queues: %s", err.Error())
	}

	log.Println("Successfully connected to rabbitMQ")
	return conn
}

func declareQueues(conn *amqp091.Connection, queues ...string) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	for _, queue := range queues {
		_, err := ch.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("queue %s: %w", queue, err)
		}
	}
	return nil
}
