package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecommerce-backend/apperr"
	"ecommerce-backend/models"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create persists the order and its frozen items in one transaction.
func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to create order", err)
	}
	return nil
}

func (s *OrderStore) GetByOrderID(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, apperr.NotFound("Order not found")
		}
		return models.Order{}, apperr.Wrap(apperr.KindInternal, "failed to fetch order", err)
	}
	return order, nil
}

// GetForUser is the ownership-checked lookup; an order belonging to someone
// else reads as missing.
func (s *OrderStore) GetForUser(ctx context.Context, orderID, userID string) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, apperr.NotFound("Order not found")
		}
		return models.Order{}, apperr.Wrap(apperr.KindInternal, "failed to fetch order", err)
	}
	return order, nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to fetch orders", err)
	}
	return orders, nil
}

// UpdateStatus overwrites the status unconditionally; the payment gateway is
// the source of truth for payment-derived states.
func (s *OrderStore) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	result := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Order not found")
	}
	return nil
}

func (s *OrderStore) AttachPayment(ctx context.Context, orderID, token, url string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{"payment_token": token, "payment_url": url})
	if result.Error != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to attach payment session", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Order not found")
	}
	return nil
}
