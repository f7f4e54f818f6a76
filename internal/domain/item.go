package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a desired thing inside a list.
type Item struct {
	ID            uuid.UUID  `db:"id"`
	ListID        uuid.UUID  `db:"list_id"`
	Name          string     `db:"name"`
	Description   *string    `db:"description"`
	URL           *string    `db:"url"`
	DatePurchased *time.Time `db:"date_purchased"`
	CreatedAt     time.Time  `db:"created_at"`
}

// IsPurchased reports whether someone has marked the item as bought.
func (i *Item) IsPurchased() bool {
	return i.DatePurchased != nil
}

// ItemUpdateParams holds a partial item update.
// Description: nil = keep, ptr("") = clear. URL: nil = keep.
type ItemUpdateParams struct {
	Name        string
	Description *string
	URL         *string
}
