package database

import (
	"afiatrack-service/internal/app/config"
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

// NewMongoDB connects and pings. Unlike the other drivers it returns the
// error instead of exiting, since a failing mongo can be replaced by the
// local file store.
func NewMongoDB(driverConfig *config.DriverConfig) (*mongo.Client, error) {
	connectionString := fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	if driverConfig.MongoDB.Username != "" {
		connectionString = fmt.Sprintf(
			"mongodb://%s:%s@%s:%s",
			driverConfig.MongoDB.Username,
			driverConfig.MongoDB.Password,
			driverConfig.MongoDB.Host,
			driverConfig.MongoDB.Port,
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo database: %w", err)
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return client, fmt.Errorf("failed to ping or test the connection to mongo database: %w", err)
	}
	log.Println("Successfully connected to mongo database")
	return client, nil
}
