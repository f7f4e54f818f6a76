package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/ekshore/loot-list/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores bytes past 72
	maxEmailLen    = 254
	minNameLen     = 2
	maxNameLen     = 50
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Name = strings.TrimSpace(i.Name)
}

// Validate validates the register input. Call after normalization.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if n := utf8.RuneCountInString(i.Name); n == 0 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if n < minNameLen || n > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must be between 2 and 50 characters"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(i.Password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLen {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}
