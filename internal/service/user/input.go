package user

import (
	"strings"
	"unicode/utf8"

	"github.com/ekshore/loot-list/internal/domain"
)

const (
	minNameLen = 2
	maxNameLen = 50
)

// UpdateProfileInput holds parameters for a profile update.
type UpdateProfileInput struct {
	Name string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	n := utf8.RuneCountInString(strings.TrimSpace(i.Name))
	switch {
	case n == 0:
		return domain.NewValidationError("name", "required")
	case n < minNameLen || n > maxNameLen:
		return domain.NewValidationError("name", "must be between 2 and 50 characters")
	}
	return nil
}
