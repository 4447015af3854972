package adaptor

import (
	"errors"
	"net/http"

	"store-ratings/internal/data/repository"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Admin *AdminHandler
	User  *UserHandler
	Store *StoreHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		Admin: NewAdminHandler(service.Admin, log),
		User:  NewUserHandler(service.User, service.Auth, log),
		Store: NewStoreHandler(service.Store, service.Auth, log),
	}
}

// handleServiceError maps service failures onto the HTTP error taxonomy.
// Validation problems arrive as typed errors; anything unrecognized is a
// storage failure and is never leaked verbatim.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var invalidInput *usecase.InvalidInputError

	switch {
	case errors.As(err, &invalidInput):
		log.Warn(operation+" rejected", zap.String("reason", invalidInput.Msg))
		utils.ResponseBadRequest(w, invalidInput.Msg)

	case errors.Is(err, repository.ErrDuplicateEmail):
		log.Warn(operation+" rejected - duplicate email")
		utils.ResponseBadRequest(w, "Email already exists")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation + " rejected - invalid credentials")
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, usecase.ErrWrongPassword):
		log.Warn(operation + " rejected - wrong current password")
		utils.ResponseUnauthorized(w, "Current password incorrect")

	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Not found")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
