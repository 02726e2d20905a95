package services

import (
	"context"
	"strconv"

	"ecommerce-backend/apperr"
	"ecommerce-backend/gateway"
	"ecommerce-backend/models"
)

// Midtrans rejects item names longer than 50 chars; the original storefront
// displays at most 40.
const maxItemNameLen = 40

type PaymentService struct {
	gw     PaymentGateway
	orders OrderStore
}

func NewPaymentService(gw PaymentGateway, orders OrderStore) *PaymentService {
	return &PaymentService{gw: gw, orders: orders}
}

// CreateSession opens a gateway payment session for a freshly created order
// and persists the returned token/URL onto it. Gateway failures surface as
// gateway errors; the order stays Pending with no token attached.
func (s *PaymentService) CreateSession(ctx context.Context, order models.Order, user models.User) (gateway.Session, error) {
	items := buildManifest(order)

	var gross float64
	for _, item := range items {
		gross += item.Price * float64(item.Quantity)
	}
	// Cross-check before calling out: the gateway rejects manifests whose
	// line total disagrees with the gross amount.
	if gross != order.TotalAmount {
		return gateway.Session{}, apperr.Newf(apperr.KindInternal,
			"payment manifest total %.2f does not match order total %.2f", gross, order.TotalAmount)
	}

	session, err := s.gw.CreateSession(ctx, gateway.SessionParams{
		OrderID:     order.OrderID,
		GrossAmount: order.TotalAmount,
		FirstName:   user.Username,
		Email:       user.Email,
		Items:       items,
	})
	if err != nil {
		return gateway.Session{}, err
	}

	if err := s.orders.AttachPayment(ctx, order.OrderID, session.Token, session.RedirectURL); err != nil {
		return gateway.Session{}, err
	}
	return session, nil
}

// buildManifest turns the order's frozen items into gateway line items,
// appending a synthetic shipping line when a fee applies.
func buildManifest(order models.Order) []gateway.ItemDetail {
	items := make([]gateway.ItemDetail, 0, len(order.Items)+1)
	for _, item := range order.Items {
		items = append(items, gateway.ItemDetail{
			ID:       strconv.FormatUint(uint64(item.ProductID), 10),
			Price:    item.PriceAtPurchase,
			Quantity: item.Quantity,
			Name:     truncateName(item.ProductName),
		})
	}
	if order.ShippingFee > 0 {
		items = append(items, gateway.ItemDetail{
			ID:       "SHIPPING-FEE",
			Price:    order.ShippingFee,
			Quantity: 1,
			Name:     "Shipping Fee",
		})
	}
	return items
}

// truncateName counts characters, not bytes, so multibyte names are neither
// over-truncated nor cut mid-rune.
func truncateName(name string) string {
	if name == "" {
		return "Item"
	}
	runes := []rune(name)
	if len(runes) > maxItemNameLen {
		return string(runes[:maxItemNameLen-3]) + "..."
	}
	return name
}

type NotificationResult struct {
	OrderID           string             `json:"orderId"`
	Status            models.OrderStatus `json:"status"`
	TransactionStatus string             `json:"transactionStatus"`
}

// HandleNotification authenticates a webhook payload via the gateway, maps
// the transaction/fraud state pair to an order status and applies it
// unconditionally. Re-delivered notifications re-apply the same status, which
// is a no-op in effect; an older notification arriving late can regress the
// status (accepted last-write-wins behavior).
func (s *PaymentService) HandleNotification(ctx context.Context, payload []byte) (NotificationResult, error) {
	notification, err := s.gw.ParseNotification(payload)
	if err != nil {
		return NotificationResult{}, err
	}

	status := MapNotificationStatus(notification.TransactionStatus, notification.FraudStatus)

	if err := s.orders.UpdateStatus(ctx, notification.OrderID, status); err != nil {
		return NotificationResult{}, err
	}

	return NotificationResult{
		OrderID:           notification.OrderID,
		Status:            status,
		TransactionStatus: notification.TransactionStatus,
	}, nil
}

// MapNotificationStatus is the fixed gateway-state to order-status table.
func MapNotificationStatus(transactionStatus, fraudStatus string) models.OrderStatus {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return models.OrderStatusPaid
		}
		return models.OrderStatusPending
	case "settlement":
		return models.OrderStatusPaid
	case "cancel", "deny", "expire":
		return models.OrderStatusCancelled
	default:
		return models.OrderStatusPending
	}
}

type PaymentStatus struct {
	OrderID           string `json:"orderId"`
	TransactionStatus string `json:"transactionStatus"`
	FraudStatus       string `json:"fraudStatus"`
	GrossAmount       string `json:"grossAmount"`
}

// CheckStatus is a read-only passthrough to the gateway's status endpoint.
func (s *PaymentService) CheckStatus(ctx context.Context, orderID string) (PaymentStatus, error) {
	status, err := s.gw.Status(ctx, orderID)
	if err != nil {
		return PaymentStatus{}, err
	}
	return PaymentStatus{
		OrderID:           status.OrderID,
		TransactionStatus: status.TransactionStatus,
		FraudStatus:       status.FraudStatus,
		GrossAmount:       status.GrossAmount,
	}, nil
}
