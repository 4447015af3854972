package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/internal/data/entity"
	"store-ratings/pkg/middleware"
	"store-ratings/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	// Every admin route requires a valid credential AND the admin role;
	// authentication always runs first.
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.RequireRole(log, string(entity.RoleAdmin)),
	).Route("/api/admin", func(r chi.Router) {
		r.Get("/dashboard", adminHandler.Dashboard)
		r.Post("/user", adminHandler.CreateUser)
		r.Post("/store", adminHandler.CreateStore)
		r.Get("/users", adminHandler.ListUsers)
		r.Get("/stores", adminHandler.ListStores)
	})
}
