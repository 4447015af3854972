package usecase

import (
	"context"

	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreService interface {
	Dashboard(ctx context.Context, ownerID uuid.UUID) (*response.OwnerDashboardResponse, error)
}

type storeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreService(repo *repository.Repository, log *zap.Logger) StoreService {
	return &storeService{
		repo: repo,
		log:  log,
	}
}

// Dashboard lists every rating on the owner's stores with the rater's name,
// plus the mean over those ratings (null when there are none).
func (s *storeService) Dashboard(ctx context.Context, ownerID uuid.UUID) (*response.OwnerDashboardResponse, error) {
	ratings, err := s.repo.Rating.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	average, err := s.repo.Rating.AverageByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]response.OwnerRatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		result = append(result, response.OwnerRatingResponse{
			Name:   rating.RaterName,
			Rating: rating.Value,
		})
	}

	return &response.OwnerDashboardResponse{
		Ratings:       result,
		AverageRating: average,
	}, nil
}
