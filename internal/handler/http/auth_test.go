// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/staff-keeper/internal/service"
	"github.com/MKhiriev/staff-keeper/internal/store"
	"github.com/MKhiriev/staff-keeper/internal/utils"
	"github.com/MKhiriev/staff-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withIdentity attaches an authenticated identity to the request context,
// simulating what the auth middleware does.
func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, identity)
	return r.WithContext(ctx)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies a valid login responds 200 with the access
// token and the sanitized user in the envelope.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"
	user := fixtureUser(true)

	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.Token, models.User, error) {
			return models.Token{SignedString: signedToken}, user, nil
		},
	}

	h := newTestHandler(t, &mockUserService{}, auth)
	body := jsonBody(t, models.LoginRequest{Email: "admin@example.com", Password: "first-admin-password"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string      `json:"accessToken"`
			User        models.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, signedToken, resp.Data.AccessToken)
	assert.Equal(t, user.ID, resp.Data.User.ID)
}

// TestLogin_CredentialFailures verifies every credential failure collapses
// to the same 401 response.
func TestLogin_CredentialFailures(t *testing.T) {
	for name, svcErr := range map[string]error{
		"unknown email":  service.ErrInvalidCredentials,
		"wrong password": service.ErrInvalidCredentials,
		"inactive user":  service.ErrAccountInactive,
	} {
		t.Run(name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.LoginRequest) (models.Token, models.User, error) {
					return models.Token{}, models.User{}, svcErr
				},
			}

			h := newTestHandler(t, &mockUserService{}, auth)
			body := jsonBody(t, models.LoginRequest{Email: "x@example.com", Password: "pw"})
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid email or password")
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockUserService{}, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// changePassword
// ─────────────────────────────────────────────

func TestChangePassword_Success(t *testing.T) {
	user := fixtureUser(false)
	user.FirstLogin = false

	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, userID uuid.UUID, req models.ChangePasswordRequest) (models.User, error) {
			assert.Equal(t, user.ID, userID)
			return user, nil
		},
	}

	h := newTestHandler(t, &mockUserService{}, auth)
	body := jsonBody(t, models.ChangePasswordRequest{CurrentPassword: "old password", NewPassword: "new password 123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
	req = withIdentity(req, models.Identity{ID: user.ID, Email: user.Email, IsActive: true})
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.ChangedPasswordResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, user.ID.String(), resp.Data.ID)
	assert.False(t, resp.Data.FirstLogin)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _ uuid.UUID, _ models.ChangePasswordRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newTestHandler(t, &mockUserService{}, auth)
	body := jsonBody(t, models.ChangePasswordRequest{CurrentPassword: "a wrong guess", NewPassword: "new password 123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
	req = withIdentity(req, models.Identity{ID: uuid.New(), IsActive: true})
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword_UserDeletedAfterAuth(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _ uuid.UUID, _ models.ChangePasswordRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("user lookup failed during password change: %w", store.ErrUserNotFound)
		},
	}

	h := newTestHandler(t, &mockUserService{}, auth)
	body := jsonBody(t, models.ChangePasswordRequest{CurrentPassword: "old password", NewPassword: "new password 123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
	req = withIdentity(req, models.Identity{ID: uuid.New(), IsActive: true})
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword_NoIdentity(t *testing.T) {
	h := newTestHandler(t, &mockUserService{}, &mockAuthService{})
	body := jsonBody(t, models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new password 123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// requestPasswordReset
// ─────────────────────────────────────────────

// TestRequestPasswordReset_KnownEmail verifies the token lands in the
// response data.
func TestRequestPasswordReset_KnownEmail(t *testing.T) {
	const resetToken = "signed.reset.token"

	auth := &mockAuthService{
		requestPasswordResetFn: func(_ context.Context, email string) (string, error) {
			return resetToken, nil
		},
	}

	h := newTestHandler(t, &mockUserService{}, auth)
	body := jsonBody(t, models.RequestPasswordResetRequest{Email: "hr@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/auth/request-password-reset", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.requestPasswordReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), resetToken)
}

// TestRequestPasswordReset_UnknownEmail verifies the status and message are
// identical to the known-email case, with no token in the data.
func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		requestPasswordResetFn: func(_ context.Context, _ string) (string, error) {
			return "", nil
		},
	}

	h := newTestHandler(t, &mockUserService{}, auth)
	body := jsonBody(t, models.RequestPasswordResetRequest{Email: "ghost@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/auth/request-password-reset", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.requestPasswordReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec.Body.Bytes())
	assert.True(t, resp.Success)
	assert.NotContains(t, rec.Body.String(), "resetToken")
}

// ─────────────────────────────────────────────
// resetPassword
// ─────────────────────────────────────────────

func TestResetPassword_Success(t *testing.T) {
	user := fixtureUser(false)
	user.FirstLogin = false

	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, req models.ResetPasswordRequest) (models.User, error) {
			return user, nil
		},
	}

	h := newTestHandler(t, &mockUserService{}, auth)
	body := jsonBody(t, models.ResetPasswordRequest{Token: "signed.reset.token", NewPassword: "brand new password"})
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec.Body.Bytes())
	assert.True(t, resp.Success)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, _ models.ResetPasswordRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidResetToken
		},
	}

	h := newTestHandler(t, &mockUserService{}, auth)
	body := jsonBody(t, models.ResetPasswordRequest{Token: "tampered.token", NewPassword: "brand new password"})
	req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

func TestProfile_ReturnsIdentity(t *testing.T) {
	identity := models.Identity{
		ID:        uuid.New(),
		Email:     "hr@example.com",
		FirstName: "Leila",
		LastName:  "Mansour",
		IsAdmin:   true,
		IsActive:  true,
	}

	h := newTestHandler(t, &mockUserService{}, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/auth/profile", nil)
	req = withIdentity(req, identity)
	rec := httptest.NewRecorder()

	h.profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.Identity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, identity, resp.Data)
}

func TestProfile_NoIdentity(t *testing.T) {
	h := newTestHandler(t, &mockUserService{}, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/auth/profile", nil)
	rec := httptest.NewRecorder()

	h.profile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
