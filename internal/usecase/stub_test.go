package usecase

import (
	"context"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return cloneUser(r.users[id]), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindFiltered(_ context.Context, _ repository.UserFilter) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range r.users {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

func (r *stubUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

type ratingKey struct {
	userID  uuid.UUID
	storeID uuid.UUID
}

type stubRatingRepo struct {
	ratings map[ratingKey]int
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{ratings: make(map[ratingKey]int)}
}

func (r *stubRatingRepo) Upsert(_ context.Context, rating *entity.Rating) error {
	r.ratings[ratingKey{userID: rating.UserID, storeID: rating.StoreID}] = rating.Value
	return nil
}

func (r *stubRatingRepo) FindByOwner(_ context.Context, _ uuid.UUID) ([]*entity.OwnerRating, error) {
	return nil, nil
}

func (r *stubRatingRepo) AverageByOwner(_ context.Context, _ uuid.UUID) (*float64, error) {
	return nil, nil
}

func (r *stubRatingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.ratings)), nil
}

type stubStoreRepo struct {
	stores []*entity.Store
}

func (r *stubStoreRepo) Create(_ context.Context, store *entity.Store) error {
	for _, existing := range r.stores {
		if existing.Email == store.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *store
	r.stores = append(r.stores, &clone)
	return nil
}

func (r *stubStoreRepo) FindAllWithRating(_ context.Context) ([]*entity.StoreWithRating, error) {
	var stores []*entity.StoreWithRating
	for _, s := range r.stores {
		stores = append(stores, &entity.StoreWithRating{Store: *s})
	}
	return stores, nil
}

func (r *stubStoreRepo) FindAllForUser(_ context.Context, _ uuid.UUID) ([]*entity.StoreForUser, error) {
	var stores []*entity.StoreForUser
	for _, s := range r.stores {
		stores = append(stores, &entity.StoreForUser{Store: *s})
	}
	return stores, nil
}

func (r *stubStoreRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.stores)), nil
}

func newStubRepository() *repository.Repository {
	return &repository.Repository{
		User:   newStubUserRepo(),
		Store:  &stubStoreRepo{},
		Rating: newStubRatingRepo(),
	}
}
