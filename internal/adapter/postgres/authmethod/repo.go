// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

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

const table = "auth_methods"

var columns = []string{"user_id", "method", "password_hash", "created_at"}

type row struct {
	UserID       uuid.UUID `db:"user_id"`
	Method       string    `db:"method"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func toDomain(r row) domain.AuthMethod {
	return domain.AuthMethod{
		UserID:       r.UserID,
		Method:       domain.AuthMethodType(r.Method),
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new auth method repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByUserAndMethod returns the auth method for a user with the given method type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "method": string(method)})

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query); err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}

	am := toDomain(res)
	return &am, nil
}

// Create inserts a new auth method row.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(am.UserID, string(am.Method), am.PasswordHash, am.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "auth_method", am.UserID)
	}
	if err := postgres.ExpectOneRow(int64(len(rows)), "insert", "auth_method", am.UserID); err != nil {
		return nil, fmt.Errorf("create auth method: %w", err)
	}

	result := toDomain(rows[0])
	return &result, nil
}
