package response

import (
	"store-ratings/internal/data/entity"
)

type LoginResponse struct {
	Token string          `json:"token"`
	Role  entity.UserRole `json:"role"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
