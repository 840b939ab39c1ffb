package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config represents MongoDB client connection settings
type Config struct {
	// MaxPoolSize is the maximum number of connections in the driver pool
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of warm connections kept ready
	MinPoolSize uint64
	// MaxConnIdleTime is the maximum idle time before a connection is released
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing new connections
	ConnectTimeout time.Duration
	// ServerSelectionTimeout bounds how long the driver waits for a usable server
	ServerSelectionTimeout time.Duration
}

// DefaultConfig returns client configuration suitable for production
func DefaultConfig() *Config {
	return &Config{
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        5 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 10 * time.Second,
	}
}

// Connect creates a new MongoDB client, verifying the deployment is
// reachable before returning it.
func Connect(ctx context.Context, uri string, cfg *Config) (*mongo.Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}
