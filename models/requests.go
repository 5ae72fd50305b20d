package models

// InitializeSystemRequest bootstraps the very first HR admin account.
// Valid only while the directory is completely empty.
type InitializeSystemRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Position  string  `json:"position"`
	Country   Country `json:"country"`
}

// CreateAdminRequest creates an admin account directly, bypassing the
// empty-directory check. Used by the legacy create-admin endpoint and by the
// API-key-guarded bootstrap endpoint.
type CreateAdminRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Position  string  `json:"position"`
	Country   Country `json:"country"`
}

// CreateUserRequest creates a regular employee account. No password is
// supplied by the caller; the server generates one.
type CreateUserRequest struct {
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Position  string  `json:"position"`
	Country   Country `json:"country"`
}

// LoginRequest authenticates a user by email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest replaces the authenticated user's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// RequestPasswordResetRequest asks for a reset token by email.
type RequestPasswordResetRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest consumes a reset token to set a new password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}
