package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careerdesk/core/pkg/logger"
)

func TestBreakerIgnoresExpectedMisses(t *testing.T) {
	duplicateKey := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	tests := []struct {
		name string
		err  error
	}{
		{
			name: "lookup misses",
			err:  mongo.ErrNoDocuments,
		},
		{
			name: "wrapped lookup misses",
			err:  fmt.Errorf("failed to get user: %w", mongo.ErrNoDocuments),
		},
		{
			name: "duplicate key collisions",
			err:  duplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker := NewBreaker("test-store", logger.New("test"))

			// A storm of expected misses, well past the trip threshold
			for i := 0; i < 20; i++ {
				err := breaker.Do(func() error { return tt.err })
				if err == nil {
					t.Fatalf("Call %d: expected the miss to propagate", i+1)
				}
				if errors.Is(err, gobreaker.ErrOpenState) {
					t.Fatalf("Call %d: breaker opened on an expected miss", i+1)
				}
			}

			// The breaker must still admit healthy operations
			if err := breaker.Do(func() error { return nil }); err != nil {
				t.Errorf("Expected breaker to stay closed after expected misses, got %v", err)
			}
		})
	}
}

func TestBreakerOpensOnStoreFailures(t *testing.T) {
	breaker := NewBreaker("test-store", logger.New("test"))
	storeErr := errors.New("connection reset")

	for i := 0; i < 5; i++ {
		if err := breaker.Do(func() error { return storeErr }); !errors.Is(err, storeErr) {
			t.Fatalf("Call %d: expected the store error back, got %v", i+1, err)
		}
	}

	// Five consecutive real failures trip the breaker; subsequent
	// operations are rejected without running.
	ran := false
	err := breaker.Do(func() error {
		ran = true
		return nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Expected open-breaker rejection, got %v", err)
	}
	if ran {
		t.Error("Operation must not run while the breaker is open")
	}
}

func TestBreakerMissesResetFailureStreak(t *testing.T) {
	breaker := NewBreaker("test-store", logger.New("test"))
	storeErr := errors.New("connection reset")

	// Alternating failures and misses never accumulate five consecutive
	// failures, so the breaker stays closed.
	for i := 0; i < 4; i++ {
		_ = breaker.Do(func() error { return storeErr })
	}
	_ = breaker.Do(func() error { return mongo.ErrNoDocuments })
	for i := 0; i < 4; i++ {
		_ = breaker.Do(func() error { return storeErr })
	}

	if err := breaker.Do(func() error { return nil }); err != nil {
		t.Errorf("Expected breaker to stay closed, got %v", err)
	}
}
