package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/repository"
)

func TestCurrentCountFirstUse(t *testing.T) {
	counters := &mockCounterRepository{}
	service := NewVisitorService(counters, logger.New("test"))
	service.now = fixedNow(time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC))

	count, err := service.CurrentCount(context.Background())
	if err != nil {
		t.Fatalf("CurrentCount() error = %v", err)
	}
	if count != repository.DefaultVisitorCount {
		t.Errorf("Expected default count %d on first use, got %d", repository.DefaultVisitorCount, count)
	}
}

func TestCurrentCountInsideGate(t *testing.T) {
	start := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	counters := &mockCounterRepository{}
	service := NewVisitorService(counters, logger.New("test"))

	service.now = fixedNow(start)
	first, err := service.CurrentCount(context.Background())
	if err != nil {
		t.Fatalf("CurrentCount() error = %v", err)
	}

	// 59 minutes later: inside the gate, count must not move
	service.now = fixedNow(start.Add(59 * time.Minute))
	second, err := service.CurrentCount(context.Background())
	if err != nil {
		t.Fatalf("CurrentCount() error = %v", err)
	}

	if first != second {
		t.Errorf("Counts inside the gate should match: first=%d second=%d", first, second)
	}
}

func TestCurrentCountPastGate(t *testing.T) {
	start := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	counters := &mockCounterRepository{}
	service := NewVisitorService(counters, logger.New("test"))

	service.now = fixedNow(start)
	first, err := service.CurrentCount(context.Background())
	if err != nil {
		t.Fatalf("CurrentCount() error = %v", err)
	}

	// exactly one hour later the gate opens
	service.now = fixedNow(start.Add(time.Hour))
	second, err := service.CurrentCount(context.Background())
	if err != nil {
		t.Fatalf("CurrentCount() error = %v", err)
	}

	if second != first+1 {
		t.Errorf("Expected count to advance by exactly 1 past the gate: first=%d second=%d", first, second)
	}

	// another read right after must not advance again
	service.now = fixedNow(start.Add(time.Hour + time.Minute))
	third, err := service.CurrentCount(context.Background())
	if err != nil {
		t.Fatalf("CurrentCount() error = %v", err)
	}
	if third != second {
		t.Errorf("Expected no second increment inside the new window: second=%d third=%d", second, third)
	}
}

func TestCurrentCountStoreFailures(t *testing.T) {
	storeErr := errors.New("store down")

	tests := []struct {
		name     string
		counters *mockCounterRepository
	}{
		{
			name:     "ensure fails",
			counters: &mockCounterRepository{ensureErr: storeErr},
		},
		{
			name:     "increment fails",
			counters: &mockCounterRepository{incrementErr: storeErr},
		},
		{
			name:     "read fails",
			counters: &mockCounterRepository{visitorCountErr: storeErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewVisitorService(tt.counters, logger.New("test"))
			if _, err := service.CurrentCount(context.Background()); err == nil {
				t.Error("Expected error when the store fails")
			}
		})
	}
}
