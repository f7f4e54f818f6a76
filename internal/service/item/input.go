package item

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/ekshore/loot-list/internal/domain"
)

const (
	MinNameLen        = 2
	MaxNameLen        = 50
	MaxDescriptionLen = 500
	MaxURLLen         = 2000
)

// AddItemInput holds the parameters for adding an item to a list.
type AddItemInput struct {
	Name        string
	Description *string
	URL         *string
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	return validateFields(i.Name, i.Description, i.URL)
}

func (i AddItemInput) toItem() domain.Item {
	return domain.Item{
		Name:        strings.TrimSpace(i.Name),
		Description: trimOrNil(i.Description),
		URL:         trimOrNil(i.URL),
	}
}

// UpdateItemInput holds a partial item update. A nil Description keeps the
// stored value and an empty one clears it. A nil or blank URL keeps the
// stored value; there is no way to clear a URL.
type UpdateItemInput struct {
	Name        string
	Description *string
	URL         *string
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	return validateFields(i.Name, i.Description, i.URL)
}

func (i UpdateItemInput) params() domain.ItemUpdateParams {
	p := domain.ItemUpdateParams{
		Name: strings.TrimSpace(i.Name),
		URL:  trimOrNil(i.URL),
	}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		p.Description = &d
	}
	return p
}

func validateFields(name string, description, rawURL *string) error {
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

	if description != nil && utf8.RuneCountInString(strings.TrimSpace(*description)) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if rawURL != nil {
		if u := strings.TrimSpace(*rawURL); u != "" {
			if len(u) > MaxURLLen {
				errs = append(errs, domain.FieldError{Field: "url", Message: "max 2000 characters"})
			} else if !isWebURL(u) {
				errs = append(errs, domain.FieldError{Field: "url", Message: "must be a valid http(s) URL"})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isWebURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
