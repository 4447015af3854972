package adaptor

import (
	"encoding/json"
	"net/http"

	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Dashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "load dashboard")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// CreateUser handles POST /api/admin/user
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, resp)
}

// CreateStore handles POST /api/admin/store
func (h *AdminHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.CreateStore(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create store")
		return
	}

	utils.ResponseCreated(w, resp)
}

// ListUsers handles GET /api/admin/users with optional query filters
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := repository.UserFilter{
		Name:    r.URL.Query().Get("name"),
		Email:   r.URL.Query().Get("email"),
		Address: r.URL.Query().Get("address"),
		Role:    r.URL.Query().Get("role"),
	}

	users, err := h.service.ListUsers(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// ListStores handles GET /api/admin/stores
func (h *AdminHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListStores(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, stores)
}
