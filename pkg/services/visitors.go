package services

import (
	"context"
	"fmt"
	"time"

	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/repository"
)

// visitorGateInterval is the minimum time between visitor increments
const visitorGateInterval = time.Hour

// VisitorService maintains the hour-gated visitor tally. Reads trigger the
// increment, so the counter only moves when a request lands after the gate
// has elapsed.
type VisitorService struct {
	counters repository.CounterRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewVisitorService creates a new visitor counter service
func NewVisitorService(counters repository.CounterRepository, log *logger.Logger) *VisitorService {
	return &VisitorService{
		counters: counters,
		logger:   log,
		now:      time.Now,
	}
}

// CurrentCount returns the visitor tally, first applying the gated
// increment when the previous update is at least an hour old.
func (s *VisitorService) CurrentCount(ctx context.Context) (int64, error) {
	now := s.now()

	if err := s.counters.EnsureVisitorCounter(ctx, now); err != nil {
		return 0, fmt.Errorf("failed to read visitor count: %w", err)
	}

	if err := s.counters.IncrementVisitorIfStale(ctx, now, visitorGateInterval); err != nil {
		return 0, fmt.Errorf("failed to read visitor count: %w", err)
	}

	count, err := s.counters.VisitorCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read visitor count: %w", err)
	}

	return count, nil
}
