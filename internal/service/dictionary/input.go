package dictionary

import (
	"unicode/utf8"

	"github.com/heartmarshall/dictlookup/internal/domain"
)

// MaxQueryLength is the longest accepted query, in characters.
const MaxQueryLength = 5000

// SearchInput holds parameters for Search.
type SearchInput struct {
	Query string
	Lang  string
}

// Validate validates the search input. Query is expected to be trimmed.
// Errors are listed in field order: q, then lang.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.Query == "" {
		errs = append(errs, domain.FieldError{Field: "q", Message: "required"})
	} else if utf8.RuneCountInString(i.Query) > MaxQueryLength {
		errs = append(errs, domain.FieldError{Field: "q", Message: "too long"})
	}

	if !domain.Direction(i.Lang).IsValid() {
		errs = append(errs, domain.FieldError{Field: "lang", Message: "unsupported"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
