package list

import (
	"strings"
	"unicode/utf8"

	"github.com/ekshore/loot-list/internal/domain"
)

const (
	MinNameLen    = 2
	MaxNameLen    = 50
	MaxSummaryLen = 255
)

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	Name    string
	Summary string
	Public  bool
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	return validateFields(i.Name, i.Summary)
}

func (i CreateListInput) normalize() CreateListInput {
	i.Name = strings.TrimSpace(i.Name)
	i.Summary = strings.TrimSpace(i.Summary)
	return i
}

// UpdateListInput holds the editable list fields.
type UpdateListInput struct {
	Name    string
	Summary string
	Public  bool
}

// Validate checks all fields and collects all errors.
func (i UpdateListInput) Validate() error {
	return validateFields(i.Name, i.Summary)
}

func (i UpdateListInput) params() domain.ListUpdateParams {
	return domain.ListUpdateParams{
		Name:    strings.TrimSpace(i.Name),
		Summary: strings.TrimSpace(i.Summary),
		Public:  i.Public,
	}
}

func validateFields(name, summary string) error {
	var errs []domain.FieldError

	n := utf8.RuneCountInString(strings.TrimSpace(name))
	switch {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case n < MinNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "min 2 characters"})
	case n > MaxNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 50 characters"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(summary)) > MaxSummaryLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
