package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekshore/loot-list/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func ptr[T any](v T) *T { return &v }

// SeedUser creates a user with a unique email. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Name:      "Test User " + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, user.Email, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedList creates a list owned by ownerID. The updated_at column is set a
// minute in the past so tests can observe it being bumped.
func SeedList(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, public bool) domain.List {
	t.Helper()

	suffix := uniqueSuffix()
	created := time.Now().UTC().Add(-time.Minute).Truncate(time.Microsecond)
	list := domain.List{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "List " + suffix,
		Summary:   "summary " + suffix,
		Public:    public,
		CreatedAt: created,
		UpdatedAt: created,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lists (id, owner_id, name, summary, public, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		list.ID, list.OwnerID, list.Name, list.Summary, list.Public, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList insert: %v", err)
	}

	return list
}

// SeedItem creates an unpurchased item in listID with a description and URL.
func SeedItem(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID) domain.Item {
	t.Helper()

	suffix := uniqueSuffix()
	item := domain.Item{
		ID:          uuid.New(),
		ListID:      listID,
		Name:        "Item " + suffix,
		Description: ptr("description " + suffix),
		URL:         ptr("https://example.com/" + suffix),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO list_items (id, list_id, name, description, url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.ListID, item.Name, item.Description, item.URL, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}

// ListUpdatedAt reads lists.updated_at directly.
func ListUpdatedAt(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID) time.Time {
	t.Helper()

	var at time.Time
	err := pool.QueryRow(context.Background(),
		`SELECT updated_at FROM lists WHERE id = $1`, listID,
	).Scan(&at)
	if err != nil {
		t.Fatalf("testhelper: ListUpdatedAt: %v", err)
	}
	return at
}

// CountItems returns the number of items stored for listID.
func CountItems(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM list_items WHERE list_id = $1`, listID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountItems: %v", err)
	}
	return n
}
