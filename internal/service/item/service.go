package item

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type itemRepo interface {
	Create(ctx context.Context, it *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Item, error)
	SetPurchased(ctx context.Context, id uuid.UUID, at *time.Time) (*domain.Item, error)
}

type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
}

type accessChecker interface {
	RequireListOwner(ctx context.Context, listID uuid.UUID, p domain.Principal) error
	RequireItemOwner(ctx context.Context, itemID uuid.UUID, p domain.Principal) (uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements item operations. Every item mutation also bumps the
// parent list's updated_at in the same transaction.
type Service struct {
	items  itemRepo
	lists  listRepo
	access accessChecker
	tx     txManager
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new item service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	lists listRepo,
	access accessChecker,
	tx txManager,
) *Service {
	return &Service{
		items:  items,
		lists:  lists,
		access: access,
		tx:     tx,
		log:    log.With("service", "item"),
		now:    domain.Now,
	}
}
