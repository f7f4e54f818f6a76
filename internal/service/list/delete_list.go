package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

// DeleteList removes a list p owns together with all of its items. Both
// deletes run in one transaction: either everything is gone or nothing is.
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID, p domain.Principal) error {
	var removed int64

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.access.RequireListOwner(txCtx, listID, p); err != nil {
			return err
		}

		n, err := s.items.DeleteByList(txCtx, listID)
		if err != nil {
			return deleteFailure("delete list items", err)
		}

		if err := s.lists.Delete(txCtx, listID); err != nil {
			return deleteFailure("delete list", err)
		}

		removed = n
		return nil
	})
	if err != nil {
		return domain.HideNotFound(err)
	}

	s.log.InfoContext(ctx, "list deleted",
		slog.String("user_id", p.UserID.String()),
		slog.String("list_id", listID.String()),
		slog.Int64("items_deleted", removed),
	)

	return nil
}

// deleteFailure wraps a storage error raised after the owner check passed.
// A row that vanished or a concurrent item insert tripping the foreign key
// surfaces as ErrNotFound; here that is a persistence failure, not an
// access one.
func deleteFailure(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrPersistence, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
