// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/ekshore/loot-list/internal/adapter/postgres"
	"github.com/ekshore/loot-list/internal/domain"
)

const table = "users"

var columns = []string{"id", "name", "email", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	var u domain.User
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"email": strings.ToLower(email)})

	var u domain.User
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Name, strings.ToLower(u.Email), u.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rows []domain.User
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	if err := postgres.ExpectOneRow(int64(len(rows)), "insert", "user", u.ID); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &rows[0], nil
}

// UpdateName changes a user's display name.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("name", name).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rows []domain.User
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &rows[0], nil
}
