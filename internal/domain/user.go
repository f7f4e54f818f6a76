package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created by the auth collaborator on first sign-in.
// The list and item services only ever read it.
type User struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// Principal is the identity a call is made on behalf of.
// The zero value is the anonymous principal.
type Principal struct {
	UserID      uuid.UUID
	DisplayName string
}

// Anonymous returns the principal used for calls without a session.
func Anonymous() Principal { return Principal{} }

// NewPrincipal creates an authenticated principal.
func NewPrincipal(userID uuid.UUID, displayName string) Principal {
	return Principal{UserID: userID, DisplayName: displayName}
}

// IsAnonymous reports whether no user is behind the call.
func (p Principal) IsAnonymous() bool {
	return p.UserID == uuid.Nil
}

// Is reports whether the principal is the authenticated user id.
// Always false for the anonymous principal.
func (p Principal) Is(userID uuid.UUID) bool {
	return !p.IsAnonymous() && p.UserID == userID
}
