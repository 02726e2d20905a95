package services

import (
	"context"
	"sync"
	"time"

	"ecommerce-backend/apperr"
	"ecommerce-backend/models"
)

type CartService struct {
	carts    CartStore
	products ProductStore

	// Per-user lock serializing cart mutations; cross-user calls are
	// independent.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCartService(carts CartStore, products ProductStore) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *CartService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// GetCart returns the user's cart, or an empty cart shape if none exists.
// Reading never creates a persisted record.
func (s *CartService) GetCart(ctx context.Context, userID string) (models.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}
		return models.Cart{}, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// AddItem merges qty into an existing line or inserts a new line snapshotting
// the product's current name, effective price and image.
func (s *CartService) AddItem(ctx context.Context, userID string, productID uint, qty int) (models.Cart, error) {
	if qty < 1 {
		return models.Cart{}, apperr.Validation("Quantity must be a positive integer")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return models.Cart{}, err
	}
	if product.Stock < qty {
		return models.Cart{}, apperr.InsufficientStock("Insufficient stock")
	}

	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	existing := findItem(cart.Items, productID)
	if existing != nil {
		newQty := existing.Quantity + qty
		if newQty > product.Stock {
			return models.Cart{}, apperr.InsufficientStock("Quantity exceeds available stock")
		}
		if err := s.carts.UpdateItemQuantity(ctx, existing.ID, newQty); err != nil {
			return models.Cart{}, err
		}
		existing.Quantity = newQty
	} else {
		item := models.CartItem{
			CartID:      cart.CartID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.EffectivePrice(),
			ImageURL:    product.ImageURL,
			Quantity:    qty,
			AddedAt:     time.Now(),
		}
		if err := s.carts.InsertItem(ctx, &item); err != nil {
			return models.Cart{}, err
		}
		cart.Items = append(cart.Items, item)
	}

	return s.saveTotal(ctx, cart)
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID uint, qty int) (models.Cart, error) {
	if qty < 1 {
		return models.Cart{}, apperr.Validation("Quantity must be at least 1")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	item := findItem(cart.Items, productID)
	if item == nil {
		return models.Cart{}, apperr.NotFound("Item not found in cart")
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return models.Cart{}, err
	}
	if qty > product.Stock {
		return models.Cart{}, apperr.InsufficientStock("Quantity exceeds available stock")
	}

	if err := s.carts.UpdateItemQuantity(ctx, item.ID, qty); err != nil {
		return models.Cart{}, err
	}
	item.Quantity = qty

	return s.saveTotal(ctx, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, userID string, productID uint) (models.Cart, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	deleted, err := s.carts.DeleteItem(ctx, cart.CartID, productID)
	if err != nil {
		return models.Cart{}, err
	}
	if !deleted {
		return models.Cart{}, apperr.NotFound("Item not found in cart")
	}

	remaining := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			remaining = append(remaining, item)
		}
	}
	cart.Items = remaining

	return s.saveTotal(ctx, cart)
}

// Clear empties the cart. Clearing a nonexistent cart is a no-op.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.clearLocked(ctx, userID)
}

func (s *CartService) clearLocked(ctx context.Context, userID string) error {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil
		}
		return err
	}
	if err := s.carts.ClearItems(ctx, cart.CartID); err != nil {
		return err
	}
	return s.carts.SaveTotal(ctx, cart.CartID, 0)
}

// ValidateStock re-checks every line against current live stock, not the
// snapshot taken when the line was added.
func (s *CartService) ValidateStock(ctx context.Context, userID string) error {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return apperr.EmptyCart("Cart is empty")
		}
		return err
	}
	if len(cart.Items) == 0 {
		return apperr.EmptyCart("Cart is empty")
	}

	for _, item := range cart.Items {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product.Stock < item.Quantity {
			return apperr.Newf(apperr.KindInsufficientStock,
				"Insufficient stock for %s", item.ProductName)
		}
	}
	return nil
}

func (s *CartService) saveTotal(ctx context.Context, cart models.Cart) (models.Cart, error) {
	cart.ComputeTotal()
	if err := s.carts.SaveTotal(ctx, cart.CartID, cart.Total); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func findItem(items []models.CartItem, productID uint) *models.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			return &items[i]
		}
	}
	return nil
}
