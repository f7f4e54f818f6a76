package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

// VisibleLists groups the lists p can see, each group newest-updated first.
// Authenticated principals get their own lists plus other users' public
// lists; anonymous principals get public lists only.
func (s *Service) VisibleLists(ctx context.Context, p domain.Principal) (*domain.ListFeed, error) {
	if p.IsAnonymous() {
		public, err := s.PublicLists(ctx)
		if err != nil {
			return nil, err
		}
		return &domain.ListFeed{Mine: []domain.List{}, Shared: public}, nil
	}

	mine, err := s.UserLists(ctx, p)
	if err != nil {
		return nil, err
	}

	shared, err := s.SharedLists(ctx, p)
	if err != nil {
		return nil, err
	}

	return &domain.ListFeed{Mine: mine, Shared: shared}, nil
}

// HomeFeed returns every list p can view joined with its owner's display
// name, newest-updated first.
func (s *Service) HomeFeed(ctx context.Context, p domain.Principal) ([]domain.FeedEntry, error) {
	var viewer *uuid.UUID
	if !p.IsAnonymous() {
		viewer = &p.UserID
	}

	entries, err := s.lists.ListVisible(ctx, viewer)
	if err != nil {
		return nil, fmt.Errorf("home feed: %w", err)
	}

	s.log.DebugContext(ctx, "home feed built",
		slog.Bool("anonymous", p.IsAnonymous()),
		slog.Int("lists", len(entries)),
	)

	return entries, nil
}

// UserLists returns the lists p owns.
func (s *Service) UserLists(ctx context.Context, p domain.Principal) ([]domain.List, error) {
	if p.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	lists, err := s.lists.ListByOwner(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("user lists: %w", err)
	}
	return lists, nil
}

// PublicLists returns every public list.
func (s *Service) PublicLists(ctx context.Context) ([]domain.List, error) {
	lists, err := s.lists.ListPublic(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("public lists: %w", err)
	}
	return lists, nil
}

// SharedLists returns public lists owned by someone other than p. There is
// no per-user sharing; "shared" means public and not mine.
func (s *Service) SharedLists(ctx context.Context, p domain.Principal) ([]domain.List, error) {
	if p.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	lists, err := s.lists.ListPublic(ctx, &p.UserID)
	if err != nil {
		return nil, fmt.Errorf("shared lists: %w", err)
	}
	return lists, nil
}
