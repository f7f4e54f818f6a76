package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ekshore/loot-list/internal/domain"
)

// GetProfile returns the calling user's profile.
func (s *Service) GetProfile(ctx context.Context, p domain.Principal) (*domain.User, error) {
	if p.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	u, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", domain.HideNotFound(err))
	}
	return u, nil
}

// UpdateProfile renames the calling user. Tokens issued earlier keep the old
// name until the next login; list owner names are read from storage.
func (s *Service) UpdateProfile(ctx context.Context, p domain.Principal, input UpdateProfileInput) (*domain.User, error) {
	if p.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.UpdateName(ctx, p.UserID, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", domain.HideNotFound(err))
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", p.UserID.String()))
	return u, nil
}
