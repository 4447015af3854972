package repository

import (
	"context"
	"fmt"

	"store-ratings/internal/data/entity"
	"store-ratings/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindAllWithRating(ctx context.Context) ([]*entity.StoreWithRating, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.StoreForUser, error)
	CountAll(ctx context.Context) (int64, error)
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log,
	}
}

func (sr *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		store.ID,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
		store.CreatedAt,
		store.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		sr.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("email", store.Email),
		)
		return fmt.Errorf("create store %s: %w", store.Email, err)
	}

	return nil
}

// FindAllWithRating lists every store with the mean of its ratings.
// AVG over zero rows is NULL, which is preserved rather than coalesced to 0.
func (sr *storeRepository) FindAllWithRating(ctx context.Context) ([]*entity.StoreWithRating, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at, s.updated_at,
		       AVG(r.rating) AS avg_rating
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		GROUP BY s.id
		ORDER BY s.created_at DESC
	`

	rows, err := sr.db.Query(ctx, query)
	if err != nil {
		sr.log.Error("Failed to list stores with ratings", zap.Error(err))
		return nil, fmt.Errorf("list stores with ratings: %w", err)
	}
	defer rows.Close()

	var stores []*entity.StoreWithRating
	for rows.Next() {
		var store entity.StoreWithRating
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Email,
			&store.Address,
			&store.OwnerID,
			&store.CreatedAt,
			&store.UpdatedAt,
			&store.AvgRating,
		)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

// FindAllForUser lists every store with the overall mean plus the rating the
// given user submitted, if any.
func (sr *storeRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.StoreForUser, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at, s.updated_at,
		       AVG(r.rating) AS overall_rating,
		       MAX(ur.rating) AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		LEFT JOIN ratings ur ON s.id = ur.store_id AND ur.user_id = $1
		GROUP BY s.id
		ORDER BY s.created_at DESC
	`

	rows, err := sr.db.Query(ctx, query, userID)
	if err != nil {
		sr.log.Error("Failed to list stores for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list stores for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var stores []*entity.StoreForUser
	for rows.Next() {
		var store entity.StoreForUser
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Email,
			&store.Address,
			&store.OwnerID,
			&store.CreatedAt,
			&store.UpdatedAt,
			&store.OverallRating,
			&store.UserRating,
		)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

func (sr *storeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stores`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Database error counting stores", zap.Error(err))
		return 0, fmt.Errorf("count all stores: %w", err)
	}

	return count, nil
}
