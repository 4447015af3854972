package repository

import (
	"errors"

	"store-ratings/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicateEmail maps the storage uniqueness violation on users.email /
// stores.email. Callers never see the raw constraint error.
var ErrDuplicateEmail = errors.New("email already exists")

type Repository struct {
	User   UserRepository
	Store  StoreRepository
	Rating RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Store:  NewStoreRepository(db, log),
		Rating: NewRatingRepository(db, log),
	}
}
