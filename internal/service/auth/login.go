package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ekshore/loot-list/internal/domain"
)

// Login authenticates a user with email + password.
// Unknown email, missing password credential and wrong password all return
// ErrUnauthenticated so the caller cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	am, err := s.authMethods.GetByUserAndMethod(ctx, user.ID, domain.AuthMethodPassword)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("auth.Login get auth method: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(am.PasswordHash), []byte(input.Password)); err != nil {
		s.log.DebugContext(ctx, "password mismatch", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthenticated
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{AccessToken: token, User: user}, nil
}

// ValidateToken resolves a bearer token into the principal it was issued to.
// Any invalid token yields ErrUnauthenticated.
func (s *Service) ValidateToken(token string) (domain.Principal, error) {
	userID, name, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return domain.Anonymous(), fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	return domain.NewPrincipal(userID, name), nil
}
