package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/internal/service"
	"github.com/MKhiriev/staff-keeper/internal/store"
	"github.com/MKhiriev/staff-keeper/internal/utils"
	"github.com/MKhiriev/staff-keeper/internal/validators"
	"github.com/MKhiriev/staff-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			log.Warn().Err(err).Msg("login request failed validation")
			writeValidationError(w, fieldErrs)
			return
		}
		log.Err(err).Msg("unexpected validation failure")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token, user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrAccountInactive):
			log.Warn().Msg("login rejected")
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "login successful",
		Data: models.LoginResponse{
			AccessToken: token.SignedString,
			User:        user,
		},
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on an authenticated route")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			log.Warn().Err(err).Msg("password change request failed validation")
			writeValidationError(w, fieldErrs)
			return
		}
		log.Err(err).Msg("unexpected validation failure")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	updated, err := h.services.AuthService.ChangePassword(ctx, identity.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Msg("password change rejected: wrong current password")
			http.Error(w, "wrong current password", http.StatusUnauthorized)
		case errors.Is(err, store.ErrUserNotFound):
			// the account was deleted after the auth middleware fetched it
			log.Warn().Msg("password change rejected: user no longer exists")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during password change")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "password changed",
		Data: models.ChangedPasswordResponse{
			ID:         updated.ID.String(),
			Email:      updated.Email,
			FirstLogin: updated.FirstLogin,
		},
	}, http.StatusOK)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RequestPasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			log.Warn().Err(err).Msg("password reset request failed validation")
			writeValidationError(w, fieldErrs)
			return
		}
		log.Err(err).Msg("unexpected validation failure")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resetToken, err := h.services.AuthService.RequestPasswordReset(ctx, req.Email)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during password reset request")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Same message for known and unknown emails: the response must not
	// reveal whether an account exists.
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "if the account exists, a reset token was issued",
		Data:    models.ResetTokenResponse{ResetToken: resetToken},
	}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			log.Warn().Err(err).Msg("password reset failed validation")
			writeValidationError(w, fieldErrs)
			return
		}
		log.Err(err).Msg("unexpected validation failure")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	updated, err := h.services.AuthService.ResetPassword(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResetToken):
			log.Warn().Msg("password reset rejected: invalid token")
			http.Error(w, "invalid or expired reset token", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during password reset")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "password reset",
		Data: models.ChangedPasswordResponse{
			ID:         updated.ID.String(),
			Email:      updated.Email,
			FirstLogin: updated.FirstLogin,
		},
	}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on an authenticated route")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "profile",
		Data:    identity,
	}, http.StatusOK)
}
