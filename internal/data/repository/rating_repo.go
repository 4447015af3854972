package repository

import (
	"context"
	"fmt"

	"store-ratings/internal/data/entity"
	"store-ratings/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingRepository interface {
	// Upsert inserts the rating or replaces the existing value for the same
	// (user_id, store_id) pair in a single statement.
	Upsert(ctx context.Context, rating *entity.Rating) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.OwnerRating, error)
	AverageByOwner(ctx context.Context, ownerID uuid.UUID) (*float64, error)
	CountAll(ctx context.Context) (int64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log,
	}
}

func (rr *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, user_id, store_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = EXCLUDED.updated_at
	`

	_, err := rr.db.Exec(ctx, query,
		rating.ID,
		rating.UserID,
		rating.StoreID,
		rating.Value,
		rating.CreatedAt,
		rating.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", rating.UserID.String()),
			zap.String("store_id", rating.StoreID.String()),
		)
		return fmt.Errorf("upsert rating for store %s: %w", rating.StoreID.String(), err)
	}

	return nil
}

// FindByOwner lists every rating on stores owned by ownerID, joined with the
// rater's name.
func (rr *ratingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.OwnerRating, error) {
	query := `
		SELECT u.name, r.rating
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		JOIN stores s ON r.store_id = s.id
		WHERE s.owner_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query, ownerID)
	if err != nil {
		rr.log.Error("Failed to list owner ratings",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("list ratings for owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var ratings []*entity.OwnerRating
	for rows.Next() {
		var rating entity.OwnerRating
		if err := rows.Scan(&rating.RaterName, &rating.Value); err != nil {
			rr.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ratings rows: %w", err)
	}

	return ratings, nil
}

// AverageByOwner returns the mean over all ratings on the owner's stores,
// nil when there are none.
func (rr *ratingRepository) AverageByOwner(ctx context.Context, ownerID uuid.UUID) (*float64, error) {
	query := `
		SELECT AVG(r.rating)
		FROM ratings r
		JOIN stores s ON r.store_id = s.id
		WHERE s.owner_id = $1
	`

	var avg *float64
	err := rr.db.QueryRow(ctx, query, ownerID).Scan(&avg)
	if err != nil {
		rr.log.Error("Failed to compute owner average rating",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("average rating for owner %s: %w", ownerID.String(), err)
	}

	return avg, nil
}

func (rr *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings`

	var count int64
	err := rr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		rr.log.Error("Database error counting ratings", zap.Error(err))
		return 0, fmt.Errorf("count all ratings: %w", err)
	}

	return count, nil
}
