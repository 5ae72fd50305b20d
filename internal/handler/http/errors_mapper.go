package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/staff-keeper/internal/service"
	"github.com/MKhiriev/staff-keeper/internal/store"
	"github.com/MKhiriev/staff-keeper/internal/utils"
	"github.com/MKhiriev/staff-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrAccountInactive:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrInvalidResetToken:        http.StatusUnauthorized,
	service.ErrSystemAlreadyInitialized: http.StatusConflict,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// fieldErrorItem is the wire form of one validation failure.
type fieldErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Errors  []fieldErrorItem `json:"errors"`
}

// writeValidationError serializes a validators.FieldErrors list as a 400
// response with one entry per failed field.
func writeValidationError(w http.ResponseWriter, fieldErrs validators.FieldErrors) {
	items := make([]fieldErrorItem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		items = append(items, fieldErrorItem{Field: fe.Field, Message: fe.Message()})
	}

	utils.WriteJSON(w, validationErrorResponse{
		Success: false,
		Message: "validation failed",
		Errors:  items,
	}, http.StatusBadRequest)
}
