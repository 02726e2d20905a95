package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecommerce-backend/apperr"
	"ecommerce-backend/models"
)

type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// GetByUser loads the user's cart with its items. Missing carts surface as
// NotFound; callers decide whether that is an error or just an empty cart.
func (s *CartStore) GetByUser(ctx context.Context, userID string) (models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, apperr.NotFound("Cart not found")
		}
		return models.Cart{}, apperr.Wrap(apperr.KindInternal, "failed to fetch cart", err)
	}
	return cart, nil
}

// GetOrCreate returns the user's cart, creating the row on first use.
func (s *CartStore) GetOrCreate(ctx context.Context, userID string) (models.Cart, error) {
	cart, err := s.GetByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		return models.Cart{}, err
	}

	cart = models.Cart{UserID: userID}
	if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return models.Cart{}, apperr.Wrap(apperr.KindInternal, "failed to create cart", err)
	}
	return cart, nil
}

func (s *CartStore) InsertItem(ctx context.Context, item *models.CartItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to add cart item", err)
	}
	return nil
}

func (s *CartStore) UpdateItemQuantity(ctx context.Context, itemID uint, qty int) error {
	err := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		UpdateColumn("quantity", qty).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to update cart item", err)
	}
	return nil
}

// DeleteItem removes one line and reports whether it existed.
func (s *CartStore) DeleteItem(ctx context.Context, cartID, productID uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return false, apperr.Wrap(apperr.KindInternal, "failed to remove cart item", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *CartStore) ClearItems(ctx context.Context, cartID uint) error {
	err := s.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to clear cart", err)
	}
	return nil
}

func (s *CartStore) SaveTotal(ctx context.Context, cartID uint, total float64) error {
	err := s.db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("cart_id = ?", cartID).
		UpdateColumn("total", total).Error
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to update cart total", err)
	}
	return nil
}
