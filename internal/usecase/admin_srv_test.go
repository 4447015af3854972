package usecase

import (
	"context"
	"errors"
	"testing"

	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestAdminService_CreateStore_RequiresOwner(t *testing.T) {
	svc := NewAdminService(newStubRepository(), zap.NewNop())

	_, err := svc.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:    "A Store Name Long Enough To Pass",
		Email:   "store@example.com",
		Address: "12 Example Street",
	})
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError for missing owner, got %v", err)
	}
}

func TestAdminService_CreateStore_DuplicateEmail(t *testing.T) {
	svc := NewAdminService(newStubRepository(), zap.NewNop())

	req := &request.CreateStoreRequest{
		Name:    "A Store Name Long Enough To Pass",
		Email:   "store@example.com",
		Address: "12 Example Street",
		OwnerID: uuid.New().String(),
	}

	if _, err := svc.CreateStore(context.Background(), req); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateStore(context.Background(), req); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAdminService_Dashboard_Counts(t *testing.T) {
	repo := newStubRepository()
	svc := NewAdminService(repo, zap.NewNop())
	userSvc := NewUserService(repo, zap.NewNop())

	if err := userSvc.SubmitRating(context.Background(), uuid.New(), &request.SubmitRatingRequest{
		StoreID: uuid.New().String(),
		Rating:  4,
	}); err != nil {
		t.Fatalf("submit rating: %v", err)
	}

	resp, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if resp.TotalRatings != 1 {
		t.Fatalf("expected 1 rating, got %d", resp.TotalRatings)
	}
	if resp.TotalUsers != 0 || resp.TotalStores != 0 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
}
