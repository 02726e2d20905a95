// Package store holds the gorm-backed persistence for every aggregate.
// Methods return apperr-kinded failures so the service layer never inspects
// driver errors.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecommerce-backend/apperr"
	"ecommerce-backend/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Email already registered")
		}
		return apperr.Wrap(apperr.KindInternal, "failed to create user", err)
	}
	return nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.NotFound("User not found")
		}
		return models.User{}, apperr.Wrap(apperr.KindInternal, "failed to fetch user", err)
	}
	return user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.NotFound("User not found")
		}
		return models.User{}, apperr.Wrap(apperr.KindInternal, "failed to fetch user", err)
	}
	return user, nil
}
