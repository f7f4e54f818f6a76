package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/access"
	"github.com/ekshore/loot-list/internal/domain"
)

// ListItems returns the items of a list in insertion order. The list must be
// visible to p; a missing or private list fails with domain.ErrUnauthorized.
func (s *Service) ListItems(ctx context.Context, listID uuid.UUID, p domain.Principal) ([]domain.Item, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, domain.HideNotFound(fmt.Errorf("get list: %w", err))
	}

	if !access.CanViewList(*l, p) {
		return nil, fmt.Errorf("list %s: %w", listID, domain.ErrUnauthorized)
	}

	items, err := s.items.ListByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}
