package usecase

import (
	"context"
	"time"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	ListStores(ctx context.Context, userID uuid.UUID) ([]response.UserStoreResponse, error)
	SubmitRating(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (s *userService) ListStores(ctx context.Context, userID uuid.UUID) ([]response.UserStoreResponse, error) {
	stores, err := s.repo.Store.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]response.UserStoreResponse, 0, len(stores))
	for _, store := range stores {
		result = append(result, response.UserStoreToResponse(store))
	}

	return result, nil
}

func (s *userService) SubmitRating(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) error {
	if msg := utils.FirstValidationError(req); msg != "" {
		s.log.Warn("Rating validation failed", zap.String("reason", msg))
		return invalidInput(msg)
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return invalidInput("Invalid store id")
	}

	now := time.Now()
	rating := &entity.Rating{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  userID,
		StoreID: storeID,
		Value:   req.Rating,
	}

	// Single conditional write; two near-simultaneous submissions for the
	// same pair resolve to one row without a read-then-write race.
	if err := s.repo.Rating.Upsert(ctx, rating); err != nil {
		return err
	}

	s.log.Info("Rating submitted",
		zap.String("user_id", userID.String()),
		zap.String("store_id", storeID.String()),
		zap.Int("rating", req.Rating),
	)

	return nil
}
