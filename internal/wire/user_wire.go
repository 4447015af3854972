package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/internal/data/entity"
	"store-ratings/pkg/middleware"
	"store-ratings/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.RequireRole(log, string(entity.RoleUser)),
	).Route("/api/user", func(r chi.Router) {
		r.Get("/stores", userHandler.ListStores)
		r.Post("/rating", userHandler.SubmitRating)
		r.Put("/password", userHandler.ChangePassword)
	})
}
