package services

import (
	"context"

	"ecommerce-backend/apperr"
	"ecommerce-backend/gateway"
	"ecommerce-backend/models"
)

// In-memory store fakes backing the service tests.

type fakeProductStore struct {
	products   map[uint]*models.Product
	decrements []decrement
}

type decrement struct {
	ProductID uint
	Qty       int
}

func newFakeProductStore(products ...models.Product) *fakeProductStore {
	s := &fakeProductStore{products: make(map[uint]*models.Product)}
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
	}
	return s
}

func (s *fakeProductStore) List(ctx context.Context, category, search string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) ListAll(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeProductStore) Get(ctx context.Context, id uint) (models.Product, error) {
	p, ok := s.products[id]
	if !ok || !p.IsActive {
		return models.Product{}, apperr.NotFound("Product not found")
	}
	return *p, nil
}

func (s *fakeProductStore) Create(ctx context.Context, product *models.Product) error {
	if product.ID == 0 {
		product.ID = uint(len(s.products) + 1)
	}
	p := *product
	s.products[p.ID] = &p
	return nil
}

func (s *fakeProductStore) Update(ctx context.Context, id uint, updates map[string]any) (models.Product, error) {
	p, ok := s.products[id]
	if !ok || !p.IsActive {
		return models.Product{}, apperr.NotFound("Product not found")
	}
	if v, ok := updates["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := updates["price"]; ok {
		p.Price = v.(float64)
	}
	if v, ok := updates["promo_price"]; ok {
		p.PromoPrice = v.(float64)
	}
	if v, ok := updates["stock"]; ok {
		p.Stock = v.(int)
	}
	return *p, nil
}

func (s *fakeProductStore) SoftDelete(ctx context.Context, id uint) error {
	p, ok := s.products[id]
	if !ok || !p.IsActive {
		return apperr.NotFound("Product not found")
	}
	p.IsActive = false
	return nil
}

func (s *fakeProductStore) DecrementStock(ctx context.Context, id uint, qty int) error {
	p, ok := s.products[id]
	if !ok || p.Stock < qty {
		return apperr.InsufficientStock("Insufficient stock")
	}
	p.Stock -= qty
	s.decrements = append(s.decrements, decrement{ProductID: id, Qty: qty})
	return nil
}

type fakeCartStore struct {
	carts      map[string]*models.Cart
	nextCartID uint
	nextItemID uint
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]*models.Cart)}
}

func (s *fakeCartStore) seed(userID string, items ...models.CartItem) *models.Cart {
	s.nextCartID++
	cart := &models.Cart{CartID: s.nextCartID, UserID: userID}
	for _, item := range items {
		s.nextItemID++
		item.ID = s.nextItemID
		item.CartID = cart.CartID
		cart.Items = append(cart.Items, item)
	}
	cart.ComputeTotal()
	s.carts[userID] = cart
	return cart
}

func (s *fakeCartStore) GetByUser(ctx context.Context, userID string) (models.Cart, error) {
	cart, ok := s.carts[userID]
	if !ok {
		return models.Cart{}, apperr.NotFound("Cart not found")
	}
	copied := *cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return copied, nil
}

func (s *fakeCartStore) GetOrCreate(ctx context.Context, userID string) (models.Cart, error) {
	if _, ok := s.carts[userID]; !ok {
		s.seed(userID)
	}
	return s.GetByUser(ctx, userID)
}

func (s *fakeCartStore) InsertItem(ctx context.Context, item *models.CartItem) error {
	for _, cart := range s.carts {
		if cart.CartID == item.CartID {
			s.nextItemID++
			item.ID = s.nextItemID
			cart.Items = append(cart.Items, *item)
			return nil
		}
	}
	return apperr.NotFound("Cart not found")
}

func (s *fakeCartStore) UpdateItemQuantity(ctx context.Context, itemID uint, qty int) error {
	for _, cart := range s.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items[i].Quantity = qty
				return nil
			}
		}
	}
	return apperr.NotFound("Cart item not found")
}

func (s *fakeCartStore) DeleteItem(ctx context.Context, cartID, productID uint) (bool, error) {
	for _, cart := range s.carts {
		if cart.CartID != cartID {
			continue
		}
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *fakeCartStore) ClearItems(ctx context.Context, cartID uint) error {
	for _, cart := range s.carts {
		if cart.CartID == cartID {
			cart.Items = nil
		}
	}
	return nil
}

func (s *fakeCartStore) SaveTotal(ctx context.Context, cartID uint, total float64) error {
	for _, cart := range s.carts {
		if cart.CartID == cartID {
			cart.Total = total
		}
	}
	return nil
}

type fakeOrderStore struct {
	orders map[string]*models.Order
}

func newFakeOrderStore(orders ...models.Order) *fakeOrderStore {
	s := &fakeOrderStore{orders: make(map[string]*models.Order)}
	for i := range orders {
		o := orders[i]
		s.orders[o.OrderID] = &o
	}
	return s
}

func (s *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	if _, exists := s.orders[order.OrderID]; exists {
		return apperr.Conflict("duplicate order reference")
	}
	o := *order
	s.orders[o.OrderID] = &o
	return nil
}

func (s *fakeOrderStore) GetByOrderID(ctx context.Context, orderID string) (models.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return models.Order{}, apperr.NotFound("Order not found")
	}
	return *o, nil
}

func (s *fakeOrderStore) GetForUser(ctx context.Context, orderID, userID string) (models.Order, error) {
	o, ok := s.orders[orderID]
	if !ok || o.UserID != userID {
		return models.Order{}, apperr.NotFound("Order not found")
	}
	return *o, nil
}

func (s *fakeOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *fakeOrderStore) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	o, ok := s.orders[orderID]
	if !ok {
		return apperr.NotFound("Order not found")
	}
	o.Status = status
	return nil
}

func (s *fakeOrderStore) AttachPayment(ctx context.Context, orderID, token, url string) error {
	o, ok := s.orders[orderID]
	if !ok {
		return apperr.NotFound("Order not found")
	}
	o.PaymentToken = token
	o.PaymentURL = url
	return nil
}

type fakeUserStore struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if _, exists := s.byEmail[user.Email]; exists {
		return apperr.Conflict("Email already registered")
	}
	u := *user
	s.byEmail[u.Email] = &u
	s.byID[u.ID] = &u
	return nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return models.User{}, apperr.NotFound("User not found")
	}
	return *u, nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return models.User{}, apperr.NotFound("User not found")
	}
	return *u, nil
}

// fakeGateway scripts the three remote capabilities.
type fakeGateway struct {
	session    gateway.Session
	sessionErr error
	lastParams gateway.SessionParams
	calls      int

	notification gateway.Notification
	parseErr     error

	status    gateway.TransactionStatus
	statusErr error
}

func (g *fakeGateway) CreateSession(ctx context.Context, params gateway.SessionParams) (gateway.Session, error) {
	g.calls++
	g.lastParams = params
	if g.sessionErr != nil {
		return gateway.Session{}, g.sessionErr
	}
	return g.session, nil
}

func (g *fakeGateway) ParseNotification(payload []byte) (gateway.Notification, error) {
	if g.parseErr != nil {
		return gateway.Notification{}, g.parseErr
	}
	return g.notification, nil
}

func (g *fakeGateway) Status(ctx context.Context, orderID string) (gateway.TransactionStatus, error) {
	if g.statusErr != nil {
		return gateway.TransactionStatus{}, g.statusErr
	}
	if g.status.OrderID == "" {
		g.status.OrderID = orderID
	}
	return g.status, nil
}
