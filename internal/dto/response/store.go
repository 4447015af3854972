package response

import (
	"store-ratings/internal/data/entity"
)

// StoreResponse reports Rating as null, not 0, for stores with no ratings.
type StoreResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	OwnerID *string  `json:"ownerId"`
	Rating  *float64 `json:"rating"`
}

func StoreToResponse(store *entity.StoreWithRating) StoreResponse {
	return StoreResponse{
		ID:      store.ID.String(),
		Name:    store.Name,
		Email:   store.Email,
		Address: store.Address,
		OwnerID: ownerIDString(store.OwnerID),
		Rating:  store.AvgRating,
	}
}

type OwnerRatingResponse struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

type OwnerDashboardResponse struct {
	Ratings       []OwnerRatingResponse `json:"ratings"`
	AverageRating *float64              `json:"averageRating"`
}
