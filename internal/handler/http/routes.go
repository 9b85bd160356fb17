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
		r.Post("/api/auth", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)

		r.Post("/api/users", h.createUser)
		r.Get("/api/users", h.getAllUsers)
		r.Get("/api/users/search", h.searchUser)
		r.Get("/api/users/{id}", h.getUser)

		r.Get("/api/addresses", h.getAllAddresses)
		r.Get("/api/addresses/{id}", h.getAddress)

		r.Get("/ping", h.ping)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes guarded by a bearer access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Patch("/api/users/{id}", h.updateUser)
		r.Delete("/api/users/{id}", h.deleteUser)

		r.Post("/api/addresses", h.createAddress)
		r.Patch("/api/addresses/{id}", h.updateAddress)
		r.Delete("/api/addresses/{id}", h.deleteAddress)
	})

	return router
}
