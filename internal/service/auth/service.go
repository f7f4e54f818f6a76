// Package auth is the minimal identity collaborator: it registers users with
// a password credential and exchanges credentials for signed access tokens.
// The list and item services only ever see the resulting domain.Principal.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/config"
	"github.com/ekshore/loot-list/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type authMethodRepo interface {
	GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error)
	Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, name string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements auth operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	authMethods authMethodRepo
	tx          txManager
	tokens      tokenManager
	cfg         config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	authMethods authMethodRepo,
	tx txManager,
	tokens tokenManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		authMethods: authMethods,
		tx:          tx,
		tokens:      tokens,
		cfg:         cfg,
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
