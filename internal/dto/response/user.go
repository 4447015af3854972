package response

import (
	"github.com/google/uuid"

	"store-ratings/internal/data/entity"
)

// UserStoreResponse is one row of the user's store listing: the overall mean
// plus this user's own rating, both null when absent.
type UserStoreResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	OverallRating *float64 `json:"overall_rating"`
	UserRating    *int     `json:"user_rating"`
}

func UserStoreToResponse(store *entity.StoreForUser) UserStoreResponse {
	return UserStoreResponse{
		ID:            store.ID.String(),
		Name:          store.Name,
		Email:         store.Email,
		Address:       store.Address,
		OverallRating: store.OverallRating,
		UserRating:    store.UserRating,
	}
}

func ownerIDString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
