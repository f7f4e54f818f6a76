// Package feed produces the sets of lists a principal may see.
package feed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

type listRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.List, error)
	ListPublic(ctx context.Context, excludeOwner *uuid.UUID) ([]domain.List, error)
	ListVisible(ctx context.Context, viewer *uuid.UUID) ([]domain.FeedEntry, error)
}

// Service is read-only: it never mutates storage and needs no transactions.
type Service struct {
	lists listRepo
	log   *slog.Logger
}

// NewService creates a new feed service.
func NewService(log *slog.Logger, lists listRepo) *Service {
	return &Service{
		lists: lists,
		log:   log.With("service", "feed"),
	}
}
