package adaptor

import (
	"encoding/json"
	"net/http"

	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	auth    usecase.AuthService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, auth usecase.AuthService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

// ListStores handles GET /api/user/stores
func (h *UserHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	stores, err := h.service.ListStores(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, stores)
}

// SubmitRating handles POST /api/user/rating
func (h *UserHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.SubmitRating(r.Context(), userID, &req); err != nil {
		handleServiceError(w, h.log, err, "submit rating")
		return
	}

	utils.ResponseCreated(w, response.MessageResponse{Message: "Rating submitted successfully"})
}

// ChangePassword handles PUT /api/user/password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	changePassword(w, r, h.auth, h.log)
}

// changePassword is shared by the user and store-owner password routes.
func changePassword(w http.ResponseWriter, r *http.Request, auth usecase.AuthService, log *zap.Logger) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := auth.ChangePassword(r.Context(), userID, &req); err != nil {
		handleServiceError(w, log, err, "change password")
		return
	}

	utils.ResponseSuccess(w, response.MessageResponse{Message: "Password updated successfully"})
}
