package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecommerce-backend/apperr"
	"ecommerce-backend/models"
)

type OrderService struct {
	orders   OrderStore
	products ProductStore
	cart     *CartService

	freeShippingMin float64
	shippingFlatFee float64
}

func NewOrderService(orders OrderStore, products ProductStore, cart *CartService, freeShippingMin, shippingFlatFee float64) *OrderService {
	return &OrderService{
		orders:          orders,
		products:        products,
		cart:            cart,
		freeShippingMin: freeShippingMin,
		shippingFlatFee: shippingFlatFee,
	}
}

// ShippingFee is a flat threshold discount: free at or above the configured
// floor, a fixed fee below it.
func (s *OrderService) ShippingFee(subtotal float64) float64 {
	if subtotal >= s.freeShippingMin {
		return 0
	}
	return s.shippingFlatFee
}

// Checkout converts the user's cart into an immutable Pending order.
//
// The order is persisted before stock is decremented: if a decrement fails
// partway, the Pending order stays visible for manual reconciliation instead
// of vanishing. Stock handling is best-effort, not transactional; the
// per-line decrement itself is atomic and conditional.
func (s *OrderService) Checkout(ctx context.Context, userID, shippingAddress string) (models.Order, error) {
	shippingAddress = strings.TrimSpace(shippingAddress)
	if len(shippingAddress) < 10 {
		return models.Order{}, apperr.Validation("Shipping address must be at least 10 characters")
	}

	cart, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return models.Order{}, err
	}
	if len(cart.Items) == 0 {
		return models.Order{}, apperr.EmptyCart("Cart is empty")
	}

	if err := s.cart.ValidateStock(ctx, userID); err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			PriceAtPurchase: line.Price,
			Quantity:        line.Quantity,
			ImageURL:        line.ImageURL,
		})
	}

	subtotal := cart.ComputeTotal()
	shippingFee := s.ShippingFee(subtotal)

	order := models.Order{
		OrderID:         generateOrderID(),
		UserID:          userID,
		Items:           items,
		Subtotal:        subtotal,
		ShippingFee:     shippingFee,
		TotalAmount:     subtotal + shippingFee,
		Status:          models.OrderStatusPending,
		ShippingAddress: shippingAddress,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return models.Order{}, err
	}

	// A failure here leaves the Pending order in place, by the ordering above.
	for _, item := range order.Items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			if apperr.KindOf(err) == apperr.KindInsufficientStock {
				return models.Order{}, apperr.Newf(apperr.KindInsufficientStock,
					"Insufficient stock for %s", item.ProductName)
			}
			return models.Order{}, err
		}
	}

	if err := s.cart.Clear(ctx, userID); err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// generateOrderID builds the gateway-visible reference: time-based with a
// random suffix, e.g. ORD-1718000000000-1A2B3C4D.
func generateOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "ORD-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + suffix
}

// GetOrders lists the user's orders; no orders serializes as an empty array,
// not null.
func (s *OrderService) GetOrders(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID, userID string) (models.Order, error) {
	return s.orders.GetForUser(ctx, orderID, userID)
}

// CancelOrder is only valid while the order is still Pending. Cancelled is
// terminal and stock is not returned to the shelf.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID string) (models.Order, error) {
	order, err := s.orders.GetForUser(ctx, orderID, userID)
	if err != nil {
		return models.Order{}, err
	}
	if order.Status != models.OrderStatusPending {
		return models.Order{}, apperr.InvalidState("Order cannot be cancelled")
	}
	if err := s.orders.UpdateStatus(ctx, orderID, models.OrderStatusCancelled); err != nil {
		return models.Order{}, err
	}
	order.Status = models.OrderStatusCancelled
	return order, nil
}

// UpdateStatus overwrites the order status without a transition-validity
// check; the reconciliation handler treats the gateway as the source of truth.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	return s.orders.UpdateStatus(ctx, orderID, status)
}

func (s *OrderService) AttachPaymentSession(ctx context.Context, orderID, token, url string) error {
	return s.orders.AttachPayment(ctx, orderID, token, url)
}
