package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-backend/apperr"
	"ecommerce-backend/models"
)

const (
	testFreeShippingMin = 100000.0
	testShippingFee     = 15000.0
)

func newOrderFixture(products ...models.Product) (*OrderService, *fakeOrderStore, *fakeCartStore, *fakeProductStore) {
	orders := newFakeOrderStore()
	carts := newFakeCartStore()
	prods := newFakeProductStore(products...)
	cartSvc := NewCartService(carts, prods)
	svc := NewOrderService(orders, prods, cartSvc, testFreeShippingMin, testShippingFee)
	return svc, orders, carts, prods
}

func TestShippingFee(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	assert.Equal(t, 0.0, svc.ShippingFee(100000), "free at the floor")
	assert.Equal(t, 0.0, svc.ShippingFee(250000))
	assert.Equal(t, testShippingFee, svc.ShippingFee(99999.99))
	assert.Equal(t, testShippingFee, svc.ShippingFee(30000))
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, orders, _, _ := newOrderFixture()

	_, err := svc.Checkout(context.Background(), "u1", "Jl. Merdeka No. 17, Bandung")
	assert.Equal(t, apperr.KindEmptyCart, apperr.KindOf(err))
	assert.Empty(t, orders.orders, "no order may be created")
}

func TestCheckoutShortAddress(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	_, err := svc.Checkout(context.Background(), "u1", "short")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCheckoutSuccessFreeShipping(t *testing.T) {
	svc, orders, carts, prods := newOrderFixture(models.Product{
		ID: 1, Name: "Kemeja", Price: 50000, Stock: 10, IsActive: true,
	})
	carts.seed("u1", models.CartItem{ProductID: 1, ProductName: "Kemeja", Price: 50000, Quantity: 2})

	order, err := svc.Checkout(context.Background(), "u1", "Jl. Merdeka No. 17, Bandung")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderID, "ORD-"))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 100000.0, order.Subtotal)
	assert.Equal(t, 0.0, order.ShippingFee, "subtotal at the floor ships free")
	assert.Equal(t, 100000.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 50000.0, order.Items[0].PriceAtPurchase)

	assert.Equal(t, 8, prods.products[1].Stock, "stock decreases by exactly the line quantity")
	assert.Empty(t, carts.carts["u1"].Items, "cart is cleared")
	assert.Zero(t, carts.carts["u1"].Total)

	stored, err := orders.GetByOrderID(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestCheckoutAppliesFlatFeeBelowFloor(t *testing.T) {
	svc, _, carts, _ := newOrderFixture(models.Product{
		ID: 1, Name: "Topi", Price: 30000, Stock: 5, IsActive: true,
	})
	carts.seed("u1", models.CartItem{ProductID: 1, ProductName: "Topi", Price: 30000, Quantity: 1})

	order, err := svc.Checkout(context.Background(), "u1", "Jl. Sudirman No. 4, Jakarta")
	require.NoError(t, err)

	assert.Equal(t, 30000.0, order.Subtotal)
	assert.Equal(t, testShippingFee, order.ShippingFee)
	assert.Equal(t, 45000.0, order.TotalAmount)
}

func TestCheckoutInsufficientStockAborts(t *testing.T) {
	svc, orders, carts, prods := newOrderFixture(models.Product{
		ID: 1, Name: "Sepatu", Price: 80000, Stock: 1, IsActive: true,
	})
	carts.seed("u1", models.CartItem{ProductID: 1, ProductName: "Sepatu", Price: 80000, Quantity: 3})

	_, err := svc.Checkout(context.Background(), "u1", "Jl. Merdeka No. 17, Bandung")
	require.Equal(t, apperr.KindInsufficientStock, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "Sepatu")

	assert.Empty(t, orders.orders, "validation failure precedes order creation")
	assert.Equal(t, 1, prods.products[1].Stock)
	assert.Len(t, carts.carts["u1"].Items, 1, "cart survives a failed checkout")
}

func TestCheckoutOrderSurvivesDecrementRace(t *testing.T) {
	// Stock passes validation but a concurrent checkout wins the conditional
	// decrement: the Pending order must remain visible for reconciliation.
	svc, orders, carts, prods := newOrderFixture(
		models.Product{ID: 1, Name: "Jam", Price: 60000, Stock: 2, IsActive: true},
		models.Product{ID: 2, Name: "Tas", Price: 90000, Stock: 1, IsActive: true},
	)
	carts.seed("u1",
		models.CartItem{ProductID: 1, ProductName: "Jam", Price: 60000, Quantity: 2},
		models.CartItem{ProductID: 2, ProductName: "Tas", Price: 90000, Quantity: 1},
	)

	// product 2 sells out between validation and its decrement
	raceStore := &racingProductStore{fakeProductStore: prods, sellOutID: 2}
	svc.products = raceStore

	_, err := svc.Checkout(context.Background(), "u1", "Jl. Merdeka No. 17, Bandung")
	require.Equal(t, apperr.KindInsufficientStock, apperr.KindOf(err))

	require.Len(t, orders.orders, 1, "order stays Pending for manual reconciliation")
	for _, o := range orders.orders {
		assert.Equal(t, models.OrderStatusPending, o.Status)
	}
	assert.Equal(t, 0, prods.products[1].Stock, "earlier lines stay decremented (best-effort)")
}

// racingProductStore empties one product between validation and decrement.
type racingProductStore struct {
	*fakeProductStore
	sellOutID uint
}

func (s *racingProductStore) DecrementStock(ctx context.Context, id uint, qty int) error {
	if id == s.sellOutID {
		s.products[id].Stock = 0
	}
	return s.fakeProductStore.DecrementStock(ctx, id, qty)
}

func TestCancelOrder(t *testing.T) {
	pending := models.Order{OrderID: "ORD-1", UserID: "u1", Status: models.OrderStatusPending}
	paid := models.Order{OrderID: "ORD-2", UserID: "u1", Status: models.OrderStatusPaid}
	orders := newFakeOrderStore(pending, paid)
	svc := NewOrderService(orders, newFakeProductStore(), nil, testFreeShippingMin, testShippingFee)

	t.Run("missing order", func(t *testing.T) {
		_, err := svc.CancelOrder(context.Background(), "ORD-404", "u1")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := svc.CancelOrder(context.Background(), "ORD-1", "intruder")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("paid order cannot be cancelled", func(t *testing.T) {
		_, err := svc.CancelOrder(context.Background(), "ORD-2", "u1")
		assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
	})

	t.Run("pending order cancels, then is terminal", func(t *testing.T) {
		order, err := svc.CancelOrder(context.Background(), "ORD-1", "u1")
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)

		_, err = svc.CancelOrder(context.Background(), "ORD-1", "u1")
		assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
	})
}

func TestUpdateStatusOverwritesUnconditionally(t *testing.T) {
	orders := newFakeOrderStore(models.Order{OrderID: "ORD-1", UserID: "u1", Status: models.OrderStatusPaid})
	svc := NewOrderService(orders, newFakeProductStore(), nil, testFreeShippingMin, testShippingFee)

	// gateway-driven regression is accepted, not rejected
	require.NoError(t, svc.UpdateStatus(context.Background(), "ORD-1", models.OrderStatusPending))
	assert.Equal(t, models.OrderStatusPending, orders.orders["ORD-1"].Status)

	err := svc.UpdateStatus(context.Background(), "ORD-404", models.OrderStatusPaid)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetOrdersEmptyHistoryIsNotNil(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	orders, err := svc.GetOrders(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, orders, "must serialize as [] rather than null")
	assert.Empty(t, orders)
}

func TestGenerateOrderIDShape(t *testing.T) {
	a, b := generateOrderID(), generateOrderID()

	assert.True(t, strings.HasPrefix(a, "ORD-"))
	assert.NotEqual(t, a, b, "random suffix keeps references unique")
	assert.Len(t, strings.Split(a, "-"), 3)
}
