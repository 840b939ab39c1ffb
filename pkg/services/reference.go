package services

import (
	"context"
	"fmt"
	"time"

	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/repository"
)

// ReferenceService hands out sequential reference numbers formatted as
// NNN/MM/YYYY, where NNN is the zero-padded counter value.
type ReferenceService struct {
	counters repository.CounterRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewReferenceService creates a new reference number service
func NewReferenceService(counters repository.CounterRepository, log *logger.Logger) *ReferenceService {
	return &ReferenceService{
		counters: counters,
		logger:   log,
		now:      time.Now,
	}
}

// Generate advances the reference counter and formats the result against
// the current month and year. The first call ever yields 001.
func (s *ReferenceService) Generate(ctx context.Context) (string, error) {
	count, err := s.counters.NextReference(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate reference number: %w", err)
	}

	now := s.now()
	reference := fmt.Sprintf("%03d/%02d/%d", count, int(now.Month()), now.Year())

	s.logger.LogCounterIncrement("reference_number", count)

	return reference, nil
}
