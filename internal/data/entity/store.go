package entity

import (
	"github.com/google/uuid"
)

type Store struct {
	Base
	Name    string     `db:"name"`
	Email   string     `db:"email"`
	Address string     `db:"address"`
	OwnerID *uuid.UUID `db:"owner_id"`
}

// StoreWithRating is a store joined with the mean of its ratings.
// AvgRating is nil when the store has no ratings yet.
type StoreWithRating struct {
	Store
	AvgRating *float64 `db:"avg_rating"`
}

// StoreForUser adds the requesting user's own rating to the overall mean.
type StoreForUser struct {
	Store
	OverallRating *float64 `db:"overall_rating"`
	UserRating    *int     `db:"user_rating"`
}
