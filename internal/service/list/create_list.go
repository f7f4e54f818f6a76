package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

// CreateList creates a list owned by p and returns its id.
// Anonymous principals get domain.ErrUnauthenticated.
func (s *Service) CreateList(ctx context.Context, p domain.Principal, input CreateListInput) (uuid.UUID, error) {
	if p.IsAnonymous() {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}
	input = input.normalize()

	now := s.now()
	var created *domain.List

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, err := s.lists.Create(txCtx, &domain.List{
			ID:        uuid.New(),
			OwnerID:   p.UserID,
			Name:      input.Name,
			Summary:   input.Summary,
			Public:    input.Public,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create list: %w", err)
		}
		created = l
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", p.UserID.String()),
		slog.String("list_id", created.ID.String()),
		slog.Bool("public", created.Public),
	)

	return created.ID, nil
}
