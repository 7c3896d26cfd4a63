package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries every long lived dependency of the running service.
// Optional drivers are nil when disabled.
type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// SchedulerStop cancels every outstanding reminder timer.
	SchedulerStop func()
	// WorkerStop stops the maintenance cron and waits for a running job.
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SchedulerStop != nil {
		b.SchedulerStop()
		log.Println("Successfully stopped reminder scheduler")
	}

	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped maintenance worker")
	}

	if b.MongoDB != nil {
		err := b.MongoDB.Disconnect(ctx)
		if err != nil {
			return err
		}
		log.Println("Successfully disconnecting MongoDB")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
