package wire

import (
	"store-ratings/internal/adaptor"
	"store-ratings/internal/data/entity"
	"store-ratings/pkg/middleware"
	"store-ratings/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStore(
	r chi.Router,
	storeHandler *adaptor.StoreHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	r.With(
		middleware.Authenticate(tokens, log),
		middleware.RequireRole(log, string(entity.RoleStoreOwner)),
	).Route("/api/store", func(r chi.Router) {
		r.Get("/dashboard", storeHandler.Dashboard)
		r.Put("/password", storeHandler.ChangePassword)
	})
}
