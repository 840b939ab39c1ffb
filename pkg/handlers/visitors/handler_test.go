package visitors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/models/api"
)

type mockCounter struct {
	count int64
	err   error
}

func (m *mockCounter) CurrentCount(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

func TestCount(t *testing.T) {
	handler := NewHandler(&mockCounter{count: 905}, logger.New("test"))

	req := httptest.NewRequest(http.MethodGet, "/api/visitorCount", nil)
	rec := httptest.NewRecorder()
	handler.Count(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp api.VisitorCountResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.VisitorCount != 905 {
		t.Errorf("Expected visitor count 905, got %d", resp.VisitorCount)
	}
}

func TestCountStoreFailure(t *testing.T) {
	handler := NewHandler(&mockCounter{err: errors.New("store down")}, logger.New("test"))

	req := httptest.NewRequest(http.MethodGet, "/api/visitorCount", nil)
	rec := httptest.NewRecorder()
	handler.Count(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}
}

func TestCountMethodNotAllowed(t *testing.T) {
	handler := NewHandler(&mockCounter{}, logger.New("test"))

	req := httptest.NewRequest(http.MethodPost, "/api/visitorCount", nil)
	rec := httptest.NewRecorder()
	handler.Count(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}
}
