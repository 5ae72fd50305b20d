package http

import (
	"net/http"

	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/internal/utils"
)

// admin requires an authenticated identity with the admin role. It must be
// chained after auth, which places the identity into the request context.
func (h *Handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			log.Error().Msg("no identity in context on an admin route")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if !identity.IsAdmin {
			log.Warn().Str("email", identity.Email).Msg("admin route rejected for non-admin user")
			http.Error(w, ErrAdminRequired.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
