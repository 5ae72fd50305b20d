package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/staff-keeper/internal/config"
	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/internal/store"
	"github.com/MKhiriev/staff-keeper/internal/utils"
	"github.com/MKhiriev/staff-keeper/models"
	"github.com/google/uuid"
)

// authService is the concrete implementation of AuthService.
//
// Session tokens and password-reset tokens are signed with distinct
// secrets and carry a purpose claim, so a token issued for one flow can
// never be replayed into the other. Reset tokens are additionally
// single-use: the SHA-256 digest of the issued token is persisted on the
// user record and cleared by the password update that consumes it.
type authService struct {
	userRepository store.UserRepository

	tokenSignKey       string
	resetSignKey       string
	tokenIssuer        string
	tokenDuration      time.Duration
	resetTokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository and token settings.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		tokenSignKey:       cfg.TokenSignKey,
		resetSignKey:       cfg.ResetSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		resetTokenDuration: cfg.ResetTokenDuration,
		logger:             logger,
	}
}

// Login verifies the credentials and issues a session token.
//
// An unknown email and a wrong password both come back as
// ErrInvalidCredentials; a deactivated account fails with
// ErrAccountInactive before the password is even checked.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", email).Msg("login rejected: unknown email")
			return models.Token{}, models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user lookup failed during login")
		return models.Token{}, models.User{}, fmt.Errorf("user lookup failed during login: %w", err)
	}

	if !user.IsActive {
		log.Warn().Str("email", email).Msg("login rejected: account deactivated")
		return models.Token{}, models.User{}, ErrAccountInactive
	}

	if err := utils.CheckPassword(user.PasswordHash, req.Password); err != nil {
		log.Warn().Str("email", email).Msg("login rejected: wrong password")
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.Token{}, models.User{}, err
	}

	log.Info().Str("id", user.ID.String()).Msg("user logged in")

	return token, user, nil
}

// ChangePassword updates the password of an authenticated user after
// verifying the current one.
//
// The update also clears the first-login flag and revokes any pending
// reset token, so a password obtained through one flow invalidates the
// other.
func (a *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID.String()).Msg("user lookup failed during password change")
		return models.User{}, fmt.Errorf("user lookup failed during password change: %w", err)
	}

	if err := utils.CheckPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		log.Warn().Str("id", userID.String()).Msg("password change rejected: wrong current password")
		return models.User{}, ErrInvalidCredentials
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	updated, err := a.userRepository.UpdatePassword(ctx, userID, passwordHash)
	if err != nil {
		log.Err(err).Str("id", userID.String()).Msg("password update ended with error")
		return models.User{}, fmt.Errorf("password update ended with error: %w", err)
	}

	log.Info().Str("id", userID.String()).Msg("password changed")

	return updated, nil
}

// RequestPasswordReset issues a short-lived reset token for the account
// registered under the given email.
//
// For an unknown email it returns an empty token and no error, so the
// caller cannot probe which addresses exist. The digest of the issued
// token and its expiry are stored on the user record; only the most
// recently issued token remains valid.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	normalized := models.NormalizeEmail(email)

	user, err := a.userRepository.FindUserByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("email", normalized).Msg("reset requested for unknown email")
			return "", nil
		}
		log.Err(err).Msg("user lookup failed during reset request")
		return "", fmt.Errorf("user lookup failed during reset request: %w", err)
	}

	token, err := utils.GenerateResetToken(a.tokenIssuer, user.ID, a.resetTokenDuration, a.resetSignKey)
	if err != nil {
		log.Err(err).Msg("reset token creation failed")
		return "", ErrTokenCreationFailed
	}

	expiresAt := time.Now().Add(a.resetTokenDuration)
	if err := a.userRepository.SetResetToken(ctx, user.ID, utils.HashToken(token.SignedString), expiresAt); err != nil {
		log.Err(err).Str("id", user.ID.String()).Msg("reset token persistence failed")
		return "", fmt.Errorf("reset token persistence failed: %w", err)
	}

	log.Info().Str("id", user.ID.String()).Msg("password reset token issued")

	return token.SignedString, nil
}

// ResetPassword consumes a reset token and sets the new password.
//
// The token must verify against the reset signing key, carry the
// password-reset purpose, match the digest stored on the user record,
// and still be within its stored expiry. Any failure is reported as
// ErrInvalidResetToken without detail.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(req.Token, a.resetSignKey, a.tokenIssuer, models.PurposePasswordReset)
	if err != nil {
		log.Warn().Msg("reset rejected: token failed verification")
		return models.User{}, ErrInvalidResetToken
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("id", token.UserID.String()).Msg("reset rejected: user no longer exists")
			return models.User{}, ErrInvalidResetToken
		}
		log.Err(err).Msg("user lookup failed during password reset")
		return models.User{}, fmt.Errorf("user lookup failed during password reset: %w", err)
	}

	if user.ResetTokenHash == "" || user.ResetTokenHash != utils.HashToken(req.Token) {
		log.Warn().Str("id", user.ID.String()).Msg("reset rejected: token already used or superseded")
		return models.User{}, ErrInvalidResetToken
	}
	if user.ResetTokenExpiresAt.IsZero() || time.Now().After(user.ResetTokenExpiresAt) {
		log.Warn().Str("id", user.ID.String()).Msg("reset rejected: token expired")
		return models.User{}, ErrInvalidResetToken
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	updated, err := a.userRepository.UpdatePassword(ctx, user.ID, passwordHash)
	if err != nil {
		log.Err(err).Str("id", user.ID.String()).Msg("password reset ended with error")
		return models.User{}, fmt.Errorf("password reset ended with error: %w", err)
	}

	log.Info().Str("id", user.ID.String()).Msg("password reset completed")

	return updated, nil
}

// CreateToken signs a session token for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateSessionToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("session token creation failed")
		return models.Token{}, ErrTokenCreationFailed
	}

	return token, nil
}

// ParseToken verifies a session token string and returns its parsed form.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.PurposeSession)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
