package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/staff-keeper/internal/logger"
)

const adminAPIKeyHeader = "x-admin-api-key"

// adminAPIKey guards the static-key admin creation route.
//
// The presented header is compared in constant time against the configured
// admin creation key. When no key is configured the route is disabled and
// every request is rejected; absence of configuration must never mean open
// access.
func (h *Handler) adminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.adminCreationKey == "" {
			log.Warn().Msg("admin creation key is not configured, route disabled")
			http.Error(w, ErrInvalidAdminAPIKey.Error(), http.StatusUnauthorized)
			return
		}

		presented := r.Header.Get(adminAPIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(h.adminCreationKey)) != 1 {
			log.Warn().Msg("admin creation rejected: wrong API key")
			http.Error(w, ErrInvalidAdminAPIKey.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
