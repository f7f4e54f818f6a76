package item

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// MarkPurchased records that someone bought the item and returns the time
// written. Any caller may do this, including anonymous ones, so gift givers
// can coordinate without involving the list owner. A missing item fails with
// domain.ErrPersistence.
func (s *Service) MarkPurchased(ctx context.Context, itemID uuid.UUID) (time.Time, error) {
	now := s.now()

	if err := s.setPurchased(ctx, itemID, &now); err != nil {
		return time.Time{}, err
	}

	s.log.InfoContext(ctx, "item marked purchased",
		slog.String("item_id", itemID.String()),
	)

	return now, nil
}

// UnmarkPurchased clears the purchase date. Like MarkPurchased it is open to
// any caller.
func (s *Service) UnmarkPurchased(ctx context.Context, itemID uuid.UUID) error {
	if err := s.setPurchased(ctx, itemID, nil); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item unmarked purchased",
		slog.String("item_id", itemID.String()),
	)

	return nil
}

func (s *Service) setPurchased(ctx context.Context, itemID uuid.UUID, at *time.Time) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.items.SetPurchased(txCtx, itemID, at)
		if err != nil {
			return fmt.Errorf("set purchased: %w", err)
		}

		if err := s.lists.Touch(txCtx, it.ListID, s.now()); err != nil {
			return fmt.Errorf("touch list: %w", err)
		}
		return nil
	})
}
