package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/models"
	"github.com/careerdesk/core/pkg/repository"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
// Callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialService registers accounts and checks credentials per request.
// It issues no tokens or sessions.
type CredentialService struct {
	users  repository.UserRepository
	logger *logger.Logger
}

// NewCredentialService creates a new credential service
func NewCredentialService(users repository.UserRepository, log *logger.Logger) *CredentialService {
	return &CredentialService{
		users:  users,
		logger: log,
	}
}

// Register stores a new account with a bcrypt-hashed password. The cost
// factor is fixed; bcrypt randomizes the salt per hash.
func (s *CredentialService) Register(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  username,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info().
		Str("action", "user_registered").
		Str("username", username).
		Msg("User registered")

	return nil
}

// Login checks the supplied credentials and returns the username on
// success. Unknown username and wrong password both map to
// ErrInvalidCredentials.
func (s *CredentialService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return user.Username, nil
}
