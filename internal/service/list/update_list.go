package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

// UpdateListDetails replaces name, summary and public flag of a list p owns
// and bumps its updated_at.
func (s *Service) UpdateListDetails(ctx context.Context, listID uuid.UUID, p domain.Principal, input UpdateListInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.access.RequireListOwner(txCtx, listID, p); err != nil {
			return err
		}

		if _, err := s.lists.Update(txCtx, listID, input.params(), s.now()); err != nil {
			return fmt.Errorf("update list: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.HideNotFound(err)
	}

	s.log.InfoContext(ctx, "list updated",
		slog.String("user_id", p.UserID.String()),
		slog.String("list_id", listID.String()),
	)

	return nil
}
