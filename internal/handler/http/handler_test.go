// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/staff-keeper/internal/config"
	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/internal/service"
	"github.com/MKhiriev/staff-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case.
type mockUserService struct {
	isInitializedFn    func(ctx context.Context) (bool, error)
	initializeSystemFn func(ctx context.Context, req models.InitializeSystemRequest) (models.User, error)
	createAdminFn      func(ctx context.Context, req models.CreateAdminRequest) (models.User, error)
	createUserFn       func(ctx context.Context, req models.CreateUserRequest) (models.User, string, error)
	findByEmailFn      func(ctx context.Context, email string) (models.User, error)
	findByIDFn         func(ctx context.Context, id uuid.UUID) (models.User, error)
	listAllFn          func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserService) IsInitialized(ctx context.Context) (bool, error) {
	return m.isInitializedFn(ctx)
}

func (m *mockUserService) InitializeSystem(ctx context.Context, req models.InitializeSystemRequest) (models.User, error) {
	return m.initializeSystemFn(ctx, req)
}

func (m *mockUserService) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (models.User, error) {
	return m.createAdminFn(ctx, req)
}

func (m *mockUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, string, error) {
	return m.createUserFn(ctx, req)
}

func (m *mockUserService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserService) FindByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserService) ListAll(ctx context.Context) ([]models.User, error) {
	return m.listAllFn(ctx)
}

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	loginFn                func(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error)
	changePasswordFn       func(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) (models.User, error)
	requestPasswordResetFn func(ctx context.Context, email string) (string, error)
	resetPasswordFn        func(ctx context.Context, req models.ResetPasswordRequest) (models.User, error)
	createTokenFn          func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn           func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) (models.User, error) {
	return m.changePasswordFn(ctx, userID, req)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	return m.requestPasswordResetFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.User, error) {
	return m.resetPasswordFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testAdminKey = "test-admin-creation-key"

// newTestHandler builds a Handler with the given service mocks.
func newTestHandler(t *testing.T, users service.UserService, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		UserService: users,
		AuthService: auth,
	}
	return NewHandler(svcs, config.App{AdminCreationKey: testAdminKey}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeEnvelope parses a response body into the standard envelope.
func decodeEnvelope(t *testing.T, body []byte) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

// validAdmin is a convenience fixture used across multiple tests.
var validAdmin = models.CreateAdminRequest{
	Email:     "admin@example.com",
	Password:  "first-admin-password",
	FirstName: "Amina",
	LastName:  "Ben Salah",
	Position:  "Head of HR",
	Country:   models.CountryTunisia,
}

// fixtureUser returns a stored user matching the validAdmin fixture.
func fixtureUser(isAdmin bool) models.User {
	return models.User{
		ID:         uuid.New(),
		Email:      "admin@example.com",
		FirstName:  "Amina",
		LastName:   "Ben Salah",
		Position:   "Head of HR",
		Country:    models.CountryTunisia,
		HireDate:   time.Now(),
		IsAdmin:    isAdmin,
		IsActive:   true,
		FirstLogin: true,
	}
}
