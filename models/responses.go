package models

// Response is the envelope every successful API response is wrapped in.
// Errors are written as plain-text HTTP errors by the handler layer and do
// not use this envelope.
type Response struct {
	// Success is always true for responses written through this envelope.
	Success bool `json:"success"`

	// Message is a short human-readable description of the outcome.
	Message string `json:"message"`

	// Count is the number of elements in Data when Data is a collection.
	// Omitted otherwise.
	Count int `json:"count,omitempty"`

	// Data is the operation-specific payload. Omitted when the operation
	// produces no payload.
	Data any `json:"data,omitempty"`
}

// LoginResponse is the payload of a successful login: the signed session
// token plus a sanitized user summary.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// CreatedUserResponse is the payload of an admin-invoked user creation.
// GeneratedPassword and ResetToken are relayed out-of-band by the caller;
// this service does not send email.
type CreatedUserResponse struct {
	User              User   `json:"user"`
	GeneratedPassword string `json:"generatedPassword"`
	ResetToken        string `json:"resetToken,omitempty"`
}

// ChangedPasswordResponse is the payload of a successful password change.
type ChangedPasswordResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstLogin bool   `json:"firstLogin"`
}

// ResetTokenResponse is the payload of a password reset request. Token is
// present only when the account exists; the HTTP status never reveals
// account existence.
type ResetTokenResponse struct {
	ResetToken string `json:"resetToken,omitempty"`
}
