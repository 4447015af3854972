package adaptor

import (
	"net/http"

	"store-ratings/internal/usecase"
	"store-ratings/pkg/utils"

	"go.uber.org/zap"
)

type StoreHandler struct {
	service usecase.StoreService
	auth    usecase.AuthService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, auth usecase.AuthService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

// Dashboard handles GET /api/store/dashboard
func (h *StoreHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Dashboard(r.Context(), ownerID)
	if err != nil {
		handleServiceError(w, h.log, err, "load dashboard")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// ChangePassword handles PUT /api/store/password
func (h *StoreHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	changePassword(w, r, h.auth, h.log)
}
