package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/internal/store"
	"github.com/MKhiriev/staff-keeper/internal/utils"
	"github.com/MKhiriev/staff-keeper/internal/validators"
	"github.com/MKhiriev/staff-keeper/models"
)

func (h *Handler) initializeSystem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.InitializeSystemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			log.Warn().Err(err).Msg("initialize request failed validation")
			writeValidationError(w, fieldErrs)
			return
		}
		log.Err(err).Msg("unexpected validation failure")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	admin, err := h.services.UserService.InitializeSystem(ctx, req)
	if err != nil {
		log.Err(err).Msg("system initialization failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "system initialized",
		Data:    admin,
	}, http.StatusCreated)
}

// createAdmin serves both the legacy open admin-creation route and the
// API-key guarded one. Unlike initializeSystem it performs no
// empty-directory check, only the duplicate email check.
func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			log.Warn().Err(err).Msg("admin creation request failed validation")
			writeValidationError(w, fieldErrs)
			return
		}
		log.Err(err).Msg("unexpected validation failure")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	admin, err := h.services.UserService.CreateAdmin(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Warn().Msg("admin creation rejected: email already exists")
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during admin creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "admin user created",
		Data:    admin,
	}, http.StatusCreated)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			log.Warn().Err(err).Msg("user creation request failed validation")
			writeValidationError(w, fieldErrs)
			return
		}
		log.Err(err).Msg("unexpected validation failure")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, generatedPassword, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Warn().Msg("user creation rejected: email already exists")
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	// The generated password and reset token travel back to the admin who
	// created the account; no email is sent.
	resetToken, err := h.services.AuthService.RequestPasswordReset(ctx, user.Email)
	if err != nil {
		log.Err(err).Msg("reset token issuing failed for freshly created user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "user created",
		Data: models.CreatedUserResponse{
			User:              user,
			GeneratedPassword: generatedPassword,
			ResetToken:        resetToken,
		},
	}, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListAll(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "users listed",
		Count:   len(users),
		Data:    users,
	}, http.StatusOK)
}
