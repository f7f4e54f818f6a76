package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

// UpdateItem edits an item in a list p owns and bumps the list's updated_at.
// If the item disappears mid-transaction (a concurrent list delete) the call
// fails with domain.ErrUnauthorized and nothing is written.
func (s *Service) UpdateItem(ctx context.Context, itemID uuid.UUID, p domain.Principal, input UpdateItemInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domain.Item
		listID  uuid.UUID
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		listID, err = s.access.RequireItemOwner(txCtx, itemID, p)
		if err != nil {
			return err
		}

		u, err := s.items.Update(txCtx, itemID, input.params())
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		if err := s.lists.Touch(txCtx, listID, s.now()); err != nil {
			return fmt.Errorf("touch list: %w", err)
		}

		updated = u
		return nil
	})
	if err != nil {
		return nil, domain.HideNotFound(err)
	}

	s.log.InfoContext(ctx, "item updated",
		slog.String("user_id", p.UserID.String()),
		slog.String("list_id", listID.String()),
		slog.String("item_id", itemID.String()),
	)

	return updated, nil
}
