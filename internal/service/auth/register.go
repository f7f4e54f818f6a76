package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ekshore/loot-list/internal/domain"
)

// Register creates a new user with email + password authentication and
// returns an access token for it.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Email uniqueness is enforced by the users_email_key constraint.
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := domain.Now()

		user, err := s.users.Create(txCtx, &domain.User{
			ID:        uuid.New(),
			Name:      input.Name,
			Email:     input.Email,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.authMethods.Create(txCtx, &domain.AuthMethod{
			UserID:       user.ID,
			Method:       domain.AuthMethodPassword,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(created.ID, created.Name)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()))

	return &AuthResult{AccessToken: token, User: created}, nil
}
