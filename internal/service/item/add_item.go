package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

// AddItem adds an item to a list p owns and bumps the list's updated_at.
func (s *Service) AddItem(ctx context.Context, listID uuid.UUID, p domain.Principal, input AddItemInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	it := input.toItem()
	it.ID = uuid.New()
	it.ListID = listID

	var created *domain.Item

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.access.RequireListOwner(txCtx, listID, p); err != nil {
			return err
		}

		c, err := s.items.Create(txCtx, &it)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		if err := s.lists.Touch(txCtx, listID, s.now()); err != nil {
			return fmt.Errorf("touch list: %w", err)
		}

		created = c
		return nil
	})
	if err != nil {
		return nil, domain.HideNotFound(err)
	}

	s.log.InfoContext(ctx, "item added",
		slog.String("user_id", p.UserID.String()),
		slog.String("list_id", listID.String()),
		slog.String("item_id", created.ID.String()),
	)

	return created, nil
}
