package list

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

type listRepo interface {
	Create(ctx context.Context, l *domain.List) (*domain.List, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*domain.ListDetails, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ListUpdateParams, at time.Time) (*domain.List, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemRepo interface {
	DeleteByList(ctx context.Context, listID uuid.UUID) (int64, error)
}

type accessChecker interface {
	RequireListOwner(ctx context.Context, listID uuid.UUID, p domain.Principal) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements list operations. Every call takes the principal it acts
// for explicitly.
type Service struct {
	lists  listRepo
	items  itemRepo
	access accessChecker
	tx     txManager
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new list service.
func NewService(
	log *slog.Logger,
	lists listRepo,
	items itemRepo,
	access accessChecker,
	tx txManager,
) *Service {
	return &Service{
		lists:  lists,
		items:  items,
		access: access,
		tx:     tx,
		log:    log.With("service", "list"),
		now:    domain.Now,
	}
}
