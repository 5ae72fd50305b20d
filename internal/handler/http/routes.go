package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users/initialize", h.initializeSystem)
		r.Post("/users/create-admin", h.createAdmin)
		r.Post("/auth/login", h.login)
		r.Post("/auth/request-password-reset", h.requestPasswordReset)
		r.Post("/auth/reset-password", h.resetPassword)
	})

	// routes guarded by the static admin creation key
	router.Group(func(r chi.Router) {
		r.Use(h.adminAPIKey)
		r.Post("/users/admin", h.createAdmin)
	})

	// routes requiring an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users", h.listUsers)
		r.Post("/auth/change-password", h.changePassword)
		r.Post("/auth/profile", h.profile)
	})

	// routes requiring an authenticated admin
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.admin)
		r.Post("/users/create", h.createUser)
	})

	return router
}
