package usecase

import (
	"store-ratings/internal/data/repository"
	"store-ratings/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Admin AdminService
	User  UserService
	Store StoreService
}

func NewService(repo *repository.Repository, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, tokens, log),
		Admin: NewAdminService(repo, log),
		User:  NewUserService(repo, log),
		Store: NewStoreService(repo, log),
	}
}
