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
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/verify-token", h.verifyResetToken)
		r.Post("/api/auth/reset-password", h.resetPassword)
	})

	// routes behind session authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/check", h.check)
		r.Post("/api/auth/change-password", h.changePassword)
		r.Get("/api/customers", h.listCustomers)
		r.Post("/api/customers", h.createCustomer)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
