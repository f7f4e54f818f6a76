// Package item implements the list item repository using PostgreSQL.
package item

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

const table = "list_items"

var columns = []string{"id", "list_id", "name", "description", "url", "date_purchased", "created_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides list item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an item. created_at is assigned by the database so items
// added in one transaction still keep insertion order.
func (r *Repo) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "list_id", "name", "description", "url").
		Values(it.ID, it.ListID, it.Name, it.Description, it.URL).
		Suffix(returning)

	var rows []domain.Item
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "list_item", it.ID)
	}
	if err := postgres.ExpectOneRow(int64(len(rows)), "insert", "list_item", it.ID); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &rows[0], nil
}

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	var it domain.Item
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &it, query); err != nil {
		return nil, postgres.MapError(err, "list_item", id)
	}
	return &it, nil
}

// GetListID returns the list an item belongs to.
func (r *Repo) GetListID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query := postgres.Builder().
		Select("list_id").
		From(table).
		Where(sq.Eq{"id": id})

	var listID uuid.UUID
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &listID, query); err != nil {
		return uuid.Nil, postgres.MapError(err, "list_item", id)
	}
	return listID, nil
}

// Update applies a partial update. Name is always written. A nil Description
// keeps the stored value and an empty one clears it. A nil or blank URL keeps
// the stored value. Returns domain.ErrNotFound if the item no longer exists.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ItemUpdateParams) (*domain.Item, error) {
	query := postgres.Builder().
		Update(table).
		Set("name", params.Name).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	if params.Description != nil {
		if *params.Description == "" {
			query = query.Set("description", nil)
		} else {
			query = query.Set("description", *params.Description)
		}
	}
	if params.URL != nil && strings.TrimSpace(*params.URL) != "" {
		query = query.Set("url", *params.URL)
	}

	var it domain.Item
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &it, query); err != nil {
		return nil, postgres.MapError(err, "list_item", id)
	}
	return &it, nil
}

// Delete removes an item and returns the list it belonged to.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING list_id")

	var listIDs []uuid.UUID
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &listIDs, query); err != nil {
		return uuid.Nil, postgres.MapError(err, "list_item", id)
	}
	if len(listIDs) == 0 {
		return uuid.Nil, fmt.Errorf("list_item %s: %w", id, domain.ErrNotFound)
	}
	if err := postgres.ExpectOneRow(int64(len(listIDs)), "delete", "list_item", id); err != nil {
		return uuid.Nil, err
	}
	return listIDs[0], nil
}

// DeleteByList removes every item of a list and returns how many were removed.
func (r *Repo) DeleteByList(ctx context.Context, listID uuid.UUID) (int64, error) {
	stmt := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"list_id": listID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return 0, postgres.MapError(err, "list", listID)
	}
	return n, nil
}

// ListByList returns the items of a list in insertion order.
func (r *Repo) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"list_id": listID}).
		OrderBy("created_at", "id")

	items := []domain.Item{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &items, query); err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}
	return items, nil
}

// SetPurchased writes date_purchased (nil clears it) and returns the updated
// item. The statement is keyed by primary key, so anything other than exactly
// one affected row is reported as domain.ErrPersistence.
func (r *Repo) SetPurchased(ctx context.Context, id uuid.UUID, at *time.Time) (*domain.Item, error) {
	query := postgres.Builder().
		Update(table).
		Set("date_purchased", at).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	var rows []domain.Item
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "list_item", id)
	}
	if err := postgres.ExpectOneRow(int64(len(rows)), "set purchased", "list_item", id); err != nil {
		return nil, err
	}
	return &rows[0], nil
}
