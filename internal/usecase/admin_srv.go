package usecase

import (
	"context"
	"fmt"
	"time"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.CreatedResponse, error)
	CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.CreatedResponse, error)
	ListUsers(ctx context.Context, filter repository.UserFilter) ([]response.UserResponse, error)
	ListStores(ctx context.Context) ([]response.StoreResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log,
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalStores, err := s.repo.Store.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stores: %w", err)
	}

	totalRatings, err := s.repo.Rating.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	return &response.DashboardResponse{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

func (s *adminService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.CreatedResponse, error) {
	if msg := utils.FirstValidationError(req); msg != "" {
		s.log.Warn("Create user validation failed", zap.String("reason", msg))
		return nil, invalidInput(msg)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Address:      req.Address,
		Role:         entity.UserRole(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("Admin created user",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return &response.CreatedResponse{ID: user.ID.String()}, nil
}

func (s *adminService) CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.CreatedResponse, error) {
	if msg := utils.FirstValidationError(req); msg != "" {
		s.log.Warn("Create store validation failed", zap.String("reason", msg))
		return nil, invalidInput(msg)
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return nil, invalidInput("Invalid owner id")
	}

	now := time.Now()
	store := &entity.Store{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: &ownerID,
	}

	if err := s.repo.Store.Create(ctx, store); err != nil {
		return nil, err
	}

	s.log.Info("Admin created store", zap.String("store_id", store.ID.String()))

	return &response.CreatedResponse{ID: store.ID.String()}, nil
}

func (s *adminService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, response.UserToResponse(user))
	}

	return result, nil
}

func (s *adminService) ListStores(ctx context.Context) ([]response.StoreResponse, error) {
	stores, err := s.repo.Store.FindAllWithRating(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]response.StoreResponse, 0, len(stores))
	for _, store := range stores {
		result = append(result, response.StoreToResponse(store))
	}

	return result, nil
}
