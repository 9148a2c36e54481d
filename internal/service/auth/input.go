package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/dictlookup/internal/domain"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 128
	maxEmailLen    = 254
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Email    string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if fe, ok := validateEmail(i.Email); !ok {
		errs = append(errs, fe)
	}

	n := utf8.RuneCountInString(i.Password)
	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case n < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case n > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if utf8.RuneCountInString(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) (domain.FieldError, bool) {
	if email == "" {
		return domain.FieldError{Field: "email", Message: "required"}, false
	}
	if len(email) > maxEmailLen {
		return domain.FieldError{Field: "email", Message: "too long"}, false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domain.FieldError{Field: "email", Message: "invalid format"}, false
	}
	return domain.FieldError{}, true
}
