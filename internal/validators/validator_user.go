package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/staff-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldPosition        = "position"
	FieldCountry         = "country"
	FieldToken           = "token"
)

// minPasswordLength is enforced on every password a caller chooses:
// bootstrap, admin creation, password change and password reset.
const minPasswordLength = 8

type UserRequestValidator struct {
}

func NewUserRequestValidator() Validator {
	return &UserRequestValidator{}
}

func (v *UserRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InitializeSystemRequest:
		return v.validateAdminRequest(ctx, models.CreateAdminRequest(value), fields...)
	case *models.InitializeSystemRequest:
		return v.validateAdminRequest(ctx, models.CreateAdminRequest(*value), fields...)

	case models.CreateAdminRequest:
		return v.validateAdminRequest(ctx, value, fields...)
	case *models.CreateAdminRequest:
		return v.validateAdminRequest(ctx, *value, fields...)

	case models.CreateUserRequest:
		return v.validateUserRequest(ctx, value, fields...)
	case *models.CreateUserRequest:
		return v.validateUserRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, *value, fields...)

	case models.RequestPasswordResetRequest:
		return v.validateResetRequest(ctx, value, fields...)
	case *models.RequestPasswordResetRequest:
		return v.validateResetRequest(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(ctx, value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidEmail applies a light structural check: one "@" separating a
// non-empty local part from a domain that contains a dot. Deliverability
// is not our problem; the mail system decides that.
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	if strings.ContainsAny(email, " \t") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func checkChosenPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func (v *UserRequestValidator) validateAdminRequest(_ context.Context, req models.CreateAdminRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName, FieldPosition, FieldCountry}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				errs = append(errs, FieldError{Field: FieldEmail, Err: ErrInvalidEmail})
			}
		case FieldPassword:
			if err := checkChosenPassword(req.Password); err != nil {
				errs = append(errs, FieldError{Field: FieldPassword, Err: err})
			}
		case FieldFirstName:
			if strings.TrimSpace(req.FirstName) == "" {
				errs = append(errs, FieldError{Field: FieldFirstName, Err: ErrEmptyFirstName})
			}
		case FieldLastName:
			if strings.TrimSpace(req.LastName) == "" {
				errs = append(errs, FieldError{Field: FieldLastName, Err: ErrEmptyLastName})
			}
		case FieldPosition:
			if strings.TrimSpace(req.Position) == "" {
				errs = append(errs, FieldError{Field: FieldPosition, Err: ErrEmptyPosition})
			}
		case FieldCountry:
			if !req.Country.Valid() {
				errs = append(errs, FieldError{Field: FieldCountry, Err: ErrInvalidCountry})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserRequestValidator) validateUserRequest(_ context.Context, req models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldFirstName, FieldLastName, FieldPosition, FieldCountry}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				errs = append(errs, FieldError{Field: FieldEmail, Err: ErrInvalidEmail})
			}
		case FieldFirstName:
			if strings.TrimSpace(req.FirstName) == "" {
				errs = append(errs, FieldError{Field: FieldFirstName, Err: ErrEmptyFirstName})
			}
		case FieldLastName:
			if strings.TrimSpace(req.LastName) == "" {
				errs = append(errs, FieldError{Field: FieldLastName, Err: ErrEmptyLastName})
			}
		case FieldPosition:
			if strings.TrimSpace(req.Position) == "" {
				errs = append(errs, FieldError{Field: FieldPosition, Err: ErrEmptyPosition})
			}
		case FieldCountry:
			if !req.Country.Valid() {
				errs = append(errs, FieldError{Field: FieldCountry, Err: ErrInvalidCountry})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserRequestValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				errs = append(errs, FieldError{Field: FieldEmail, Err: ErrInvalidEmail})
			}
		case FieldPassword:
			// Login only requires presence: the stored credential decides,
			// and length rules must not leak which accounts predate them.
			if req.Password == "" {
				errs = append(errs, FieldError{Field: FieldPassword, Err: ErrEmptyPassword})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserRequestValidator) validateChangePasswordRequest(_ context.Context, req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if req.CurrentPassword == "" {
				errs = append(errs, FieldError{Field: FieldCurrentPassword, Err: ErrEmptyPassword})
			}
		case FieldNewPassword:
			if err := checkChosenPassword(req.NewPassword); err != nil {
				errs = append(errs, FieldError{Field: FieldNewPassword, Err: err})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserRequestValidator) validateResetRequest(_ context.Context, req models.RequestPasswordResetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				errs = append(errs, FieldError{Field: FieldEmail, Err: ErrInvalidEmail})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserRequestValidator) validateResetPasswordRequest(_ context.Context, req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldNewPassword}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldToken:
			if strings.TrimSpace(req.Token) == "" {
				errs = append(errs, FieldError{Field: FieldToken, Err: ErrEmptyToken})
			}
		case FieldNewPassword:
			if err := checkChosenPassword(req.NewPassword); err != nil {
				errs = append(errs, FieldError{Field: FieldNewPassword, Err: err})
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}
