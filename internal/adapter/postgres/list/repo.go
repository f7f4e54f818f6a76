// Package list implements the List repository using PostgreSQL.
package list

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/ekshore/loot-list/internal/adapter/postgres"
	"github.com/ekshore/loot-list/internal/domain"
)

const table = "lists"

var columns = []string{"id", "owner_id", "name", "summary", "public", "created_at", "updated_at"}

// qualified returns columns prefixed with the lists alias, for joins.
func qualified() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = "l." + c
	}
	return out
}

// newest-updated first; id breaks ties so paging is stable.
var feedOrder = []string{"l.updated_at DESC", "l.id"}

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a list. The insert must return exactly one row; anything
// else is reported as domain.ErrPersistence so the caller's transaction
// rolls back.
func (r *Repo) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(l.ID, l.OwnerID, l.Name, l.Summary, l.Public, l.CreatedAt, l.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rows []domain.List
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "list", l.ID)
	}
	if err := postgres.ExpectOneRow(int64(len(rows)), "insert", "list", l.ID); err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return &rows[0], nil
}

// GetByID returns a list by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	var l domain.List
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &l, query); err != nil {
		return nil, postgres.MapError(err, "list", id)
	}
	return &l, nil
}

// GetDetails returns a list joined with its owner's display name.
func (r *Repo) GetDetails(ctx context.Context, id uuid.UUID) (*domain.ListDetails, error) {
	query := postgres.Builder().
		Select(append(qualified(), "u.name AS owner_name")...).
		From(table + " l").
		Join("users u ON u.id = l.owner_id").
		Where(sq.Eq{"l.id": id})

	var d domain.ListDetails
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &d, query); err != nil {
		return nil, postgres.MapError(err, "list", id)
	}
	return &d, nil
}

// GetOwnerID returns the owner of a list.
func (r *Repo) GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query := postgres.Builder().
		Select("owner_id").
		From(table).
		Where(sq.Eq{"id": id})

	var ownerID uuid.UUID
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ownerID, query); err != nil {
		return uuid.Nil, postgres.MapError(err, "list", id)
	}
	return ownerID, nil
}

// Update writes the editable fields and sets updated_at. owner_id is never
// touched. Returns domain.ErrNotFound if the list no longer exists.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ListUpdateParams, at time.Time) (*domain.List, error) {
	query := postgres.Builder().
		Update(table).
		Set("name", params.Name).
		Set("summary", params.Summary).
		Set("public", params.Public).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var l domain.List
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &l, query); err != nil {
		return nil, postgres.MapError(err, "list", id)
	}
	return &l, nil
}

// Touch sets updated_at on a list after one of its items changed.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	stmt := postgres.Builder().
		Update(table).
		Set("updated_at", at).
		Where(sq.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "list", id)
	}
	if n == 0 {
		return fmt.Errorf("list %s: %w", id, domain.ErrNotFound)
	}
	return postgres.ExpectOneRow(n, "touch", "list", id)
}

// Delete removes the list row. Items must already be gone; the foreign key
// rejects the statement otherwise.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	stmt := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "list", id)
	}
	if n == 0 {
		return fmt.Errorf("list %s: %w", id, domain.ErrNotFound)
	}
	return postgres.ExpectOneRow(n, "delete", "list", id)
}

// ListByOwner returns every list owned by ownerID, newest-updated first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.List, error) {
	query := postgres.Builder().
		Select(qualified()...).
		From(table + " l").
		Where(sq.Eq{"l.owner_id": ownerID}).
		OrderBy(feedOrder...)

	return r.selectLists(ctx, query, ownerID)
}

// ListPublic returns public lists, newest-updated first. When excludeOwner
// is set, lists owned by that user are left out.
func (r *Repo) ListPublic(ctx context.Context, excludeOwner *uuid.UUID) ([]domain.List, error) {
	query := postgres.Builder().
		Select(qualified()...).
		From(table + " l").
		Where(sq.Eq{"l.public": true}).
		OrderBy(feedOrder...)

	id := uuid.Nil
	if excludeOwner != nil {
		id = *excludeOwner
		query = query.Where(sq.NotEq{"l.owner_id": id})
	}

	return r.selectLists(ctx, query, id)
}

// ListVisible returns the lists viewer may see (public, or owned by viewer)
// joined with the owner's display name, newest-updated first. A nil viewer
// sees public lists only.
func (r *Repo) ListVisible(ctx context.Context, viewer *uuid.UUID) ([]domain.FeedEntry, error) {
	visible := sq.Or{sq.Eq{"l.public": true}}
	id := uuid.Nil
	if viewer != nil {
		id = *viewer
		visible = append(visible, sq.Eq{"l.owner_id": id})
	}

	query := postgres.Builder().
		Select(append(qualified(), "u.name AS owner_name")...).
		From(table + " l").
		Join("users u ON u.id = l.owner_id").
		Where(visible).
		OrderBy(feedOrder...)

	entries := []domain.FeedEntry{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &entries, query); err != nil {
		return nil, postgres.MapError(err, "feed", id)
	}
	return entries, nil
}

func (r *Repo) selectLists(ctx context.Context, query sq.SelectBuilder, id uuid.UUID) ([]domain.List, error) {
	lists := []domain.List{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &lists, query); err != nil {
		return nil, postgres.MapError(err, "lists", id)
	}
	return lists, nil
}
