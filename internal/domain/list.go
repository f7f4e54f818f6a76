package domain

import (
	"time"

	"github.com/google/uuid"
)

// List is a named wishlist owned by a single user.
type List struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Summary   string    `db:"summary"`
	Public    bool      `db:"public"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ListDetails is a list joined with its owner's identity.
type ListDetails struct {
	List
	OwnerName string `db:"owner_name"`
	IsOwner   bool   `db:"-"` // computed for the requesting principal
}

// ListUpdateParams holds the editable list fields. Ownership is never editable.
type ListUpdateParams struct {
	Name    string
	Summary string
	Public  bool
}

// FeedEntry is a visible list paired with the owner's display name.
type FeedEntry struct {
	List
	OwnerName string `db:"owner_name"`
}

// ListFeed groups the lists a principal can see.
// Mine is empty for anonymous principals.
type ListFeed struct {
	Mine   []List
	Shared []List
}
