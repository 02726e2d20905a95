package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecommerce-backend/apperr"
	"ecommerce-backend/models"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// List returns active products, newest first, optionally filtered by exact
// category and a name/description search.
func (s *ProductStore) List(ctx context.Context, category, search string) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to fetch products", err)
	}
	return products, nil
}

// ListAll returns every product including soft-deleted ones, for admin export.
func (s *ProductStore) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to fetch products", err)
	}
	return products, nil
}

// Get returns an active product; soft-deleted products read as missing.
func (s *ProductStore) Get(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, apperr.NotFound("Product not found")
		}
		return models.Product{}, apperr.Wrap(apperr.KindInternal, "failed to fetch product", err)
	}
	return product, nil
}

func (s *ProductStore) Create(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to create product", err)
	}
	return nil
}

// Update applies a partial update and returns the fresh row.
func (s *ProductStore) Update(ctx context.Context, id uint, updates map[string]any) (models.Product, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(updates)
	if result.Error != nil {
		return models.Product{}, apperr.Wrap(apperr.KindInternal, "failed to update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.Product{}, apperr.NotFound("Product not found")
	}
	return s.Get(ctx, id)
}

func (s *ProductStore) SoftDelete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Product not found")
	}
	return nil
}

// DecrementStock atomically takes qty units off the shelf, refusing to go
// negative. A zero-row update means a concurrent checkout got there first.
func (s *ProductStore) DecrementStock(ctx context.Context, id uint, qty int) error {
	result := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to decrement stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.InsufficientStock("Insufficient stock")
	}
	return nil
}
