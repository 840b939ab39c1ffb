package services

import (
	"context"
	"time"

	"github.com/careerdesk/core/pkg/models"
	"github.com/careerdesk/core/pkg/repository"
)

// mockCounterRepository mimics the store's atomic counter semantics in
// memory: gated increments only fire when lastUpdated is old enough.
type mockCounterRepository struct {
	refCount int64
	visitor  *models.VisitorCounter

	nextReferenceErr error
	ensureErr        error
	incrementErr     error
	visitorCountErr  error
}

func (m *mockCounterRepository) NextReference(ctx context.Context) (int64, error) {
	if m.nextReferenceErr != nil {
		return 0, m.nextReferenceErr
	}
	m.refCount++
	return m.refCount, nil
}

func (m *mockCounterRepository) CurrentReference(ctx context.Context) (int64, error) {
	return m.refCount, nil
}

func (m *mockCounterRepository) EnsureVisitorCounter(ctx context.Context, now time.Time) error {
	if m.ensureErr != nil {
		return m.ensureErr
	}
	if m.visitor == nil {
		m.visitor = &models.VisitorCounter{
			ID:          "site_visitors",
			Count:       repository.DefaultVisitorCount,
			LastUpdated: now,
		}
	}
	return nil
}

func (m *mockCounterRepository) IncrementVisitorIfStale(ctx context.Context, now time.Time, interval time.Duration) error {
	if m.incrementErr != nil {
		return m.incrementErr
	}
	if m.visitor != nil && !m.visitor.LastUpdated.After(now.Add(-interval)) {
		m.visitor.Count++
		m.visitor.LastUpdated = now
	}
	return nil
}

func (m *mockCounterRepository) VisitorCount(ctx context.Context) (int64, error) {
	if m.visitorCountErr != nil {
		return 0, m.visitorCountErr
	}
	if m.visitor == nil {
		return repository.DefaultVisitorCount, nil
	}
	return m.visitor.Count, nil
}

// mockUserRepository keeps users in a map keyed by username
type mockUserRepository struct {
	users map[string]*models.User

	createErr error
	getErr    error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*models.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.users[user.Username]; exists {
		return repository.ErrUsernameTaken
	}
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	user, exists := m.users[username]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}
