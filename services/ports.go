// Package services holds the stateless service objects behind the HTTP
// handlers. Each service receives its store handles and gateway client at
// construction time; there is no shared module-level state.
package services

import (
	"context"

	"ecommerce-backend/gateway"
	"ecommerce-backend/models"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
}

type ProductStore interface {
	List(ctx context.Context, category, search string) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id uint) (models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uint, updates map[string]any) (models.Product, error)
	SoftDelete(ctx context.Context, id uint) error
	DecrementStock(ctx context.Context, id uint, qty int) error
}

type CartStore interface {
	GetByUser(ctx context.Context, userID string) (models.Cart, error)
	GetOrCreate(ctx context.Context, userID string) (models.Cart, error)
	InsertItem(ctx context.Context, item *models.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uint, qty int) error
	DeleteItem(ctx context.Context, cartID, productID uint) (bool, error)
	ClearItems(ctx context.Context, cartID uint) error
	SaveTotal(ctx context.Context, cartID uint, total float64) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetByOrderID(ctx context.Context, orderID string) (models.Order, error)
	GetForUser(ctx context.Context, orderID, userID string) (models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error
	AttachPayment(ctx context.Context, orderID, token, url string) error
}

// PaymentGateway is the remote payment service: session creation, webhook
// payload authentication, and status lookup.
type PaymentGateway interface {
	CreateSession(ctx context.Context, params gateway.SessionParams) (gateway.Session, error)
	ParseNotification(payload []byte) (gateway.Notification, error)
	Status(ctx context.Context, orderID string) (gateway.TransactionStatus, error)
}
