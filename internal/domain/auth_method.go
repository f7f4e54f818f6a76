package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthMethodType represents the type of authentication credential.
type AuthMethodType string

const (
	AuthMethodPassword AuthMethodType = "password"
)

func (m AuthMethodType) String() string { return string(m) }

// AuthMethod is a credential owned by the auth collaborator.
// The wishlist core never reads it.
type AuthMethod struct {
	UserID       uuid.UUID
	Method       AuthMethodType
	PasswordHash string
	CreatedAt    time.Time
}
