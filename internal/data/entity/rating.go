package entity

import (
	"github.com/google/uuid"
)

// Rating holds a single user's score for a store. At most one row exists
// per (user_id, store_id) pair; resubmission replaces the value.
type Rating struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	StoreID uuid.UUID `db:"store_id"`
	Value   int       `db:"rating"` // 1-5
}

// OwnerRating is one rating row on an owned store, joined with the rater's name.
type OwnerRating struct {
	RaterName string `db:"name"`
	Value     int    `db:"rating"`
}
