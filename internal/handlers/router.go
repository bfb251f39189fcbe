package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/acme/account-service/internal/repositories"
)

// NewRouter builds the full route table. The {id} segment is constrained to
// digits so non-integer ids fall through to the router's own 404.
func NewRouter(repo repositories.AccountRepository) chi.Router {
	h := NewAccountHandler(repo)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(RequestID)
	router.Use(SecurityHeaders)

	router.Get("/health", h.Health)
	router.Get("/", h.Index)

	router.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.CreateAccount)
		r.Get("/", h.ListAccounts)
		r.Get("/{id:[0-9]+}", h.GetAccount)
		r.Put("/{id:[0-9]+}", h.UpdateAccount)
		r.Delete("/{id:[0-9]+}", h.DeleteAccount)
	})

	return router
}
