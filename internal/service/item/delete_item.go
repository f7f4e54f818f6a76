package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

// DeleteItem removes an item from a list p owns and bumps the list's updated_at.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID, p domain.Principal) error {
	var listID uuid.UUID

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.access.RequireItemOwner(txCtx, itemID, p); err != nil {
			return err
		}

		var err error
		listID, err = s.items.Delete(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		if err := s.lists.Touch(txCtx, listID, s.now()); err != nil {
			return fmt.Errorf("touch list: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.HideNotFound(err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", p.UserID.String()),
		slog.String("list_id", listID.String()),
		slog.String("item_id", itemID.String()),
	)

	return nil
}
