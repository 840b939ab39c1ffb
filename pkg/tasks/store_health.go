package tasks

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/careerdesk/core/pkg/logger"
)

// Pinger is the slice of the Mongo client the health task needs
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// StoreHealthTask periodically pings the store and logs the latency
type StoreHealthTask struct {
	client Pinger
	logger *logger.Logger
}

// NewStoreHealthTask creates a new store health task
func NewStoreHealthTask(client Pinger, log *logger.Logger) *StoreHealthTask {
	return &StoreHealthTask{
		client: client,
		logger: log,
	}
}

func (t *StoreHealthTask) Name() string {
	return "store_health"
}

func (t *StoreHealthTask) Schedule() string {
	return "@every 5m"
}

func (t *StoreHealthTask) Execute(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start := time.Now()
	if err := t.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("store ping failed: %w", err)
	}

	t.logger.Info().
		Str("action", "store_health").
		Dur("ping_duration", time.Since(start)).
		Msg("Store ping succeeded")

	return nil
}
