package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/access"
	"github.com/ekshore/loot-list/internal/domain"
)

// GetListDetails returns a list with its owner's name if p may view it.
// A missing list and a private list of someone else both fail with
// domain.ErrUnauthorized.
func (s *Service) GetListDetails(ctx context.Context, listID uuid.UUID, p domain.Principal) (*domain.ListDetails, error) {
	details, err := s.lists.GetDetails(ctx, listID)
	if err != nil {
		return nil, domain.HideNotFound(fmt.Errorf("get list details: %w", err))
	}

	if !access.CanViewList(details.List, p) {
		s.log.DebugContext(ctx, "list details denied",
			slog.String("list_id", listID.String()),
			slog.Bool("anonymous", p.IsAnonymous()),
		)
		return nil, fmt.Errorf("list %s: %w", listID, domain.ErrUnauthorized)
	}

	details.IsOwner = p.Is(details.OwnerID)
	return details, nil
}
