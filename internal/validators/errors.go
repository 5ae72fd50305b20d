package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrEmptyFirstName   = errors.New("first name is required")
	ErrEmptyLastName    = errors.New("last name is required")
	ErrEmptyPosition    = errors.New("position is required")
	ErrInvalidCountry   = errors.New("country must be France or Tunisia")
	ErrEmptyToken       = errors.New("reset token is required")
)

// FieldError ties a validation failure to the request field that caused it.
type FieldError struct {
	Field string `json:"field"`
	Err   error  `json:"-"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// Message returns the human-readable part of the failure for serialization.
func (e FieldError) Message() string {
	return e.Err.Error()
}

// FieldErrors is the full list of validation failures for one request.
// It satisfies error, and errors.Is matches any of the wrapped sentinels.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, fe := range e {
		errs = append(errs, fe)
	}
	return errs
}

// orNil collapses an empty list to a nil error.
func (e FieldErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
