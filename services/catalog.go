package services

import (
	"context"
	"strings"

	"ecommerce-backend/apperr"
	"ecommerce-backend/models"
)

type CatalogService struct {
	products ProductStore
}

func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PromoPrice  float64 `json:"promo_price"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	Vendor      string  `json:"vendor"`
	Category    string  `json:"category"`
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	PromoPrice  *float64 `json:"promo_price"`
	ImageURL    *string  `json:"image_url"`
	Stock       *int     `json:"stock"`
	Vendor      *string  `json:"vendor"`
	Category    *string  `json:"category"`
}

func (s *CatalogService) List(ctx context.Context, category, search string) ([]models.Product, error) {
	return s.products.List(ctx, category, search)
}

func (s *CatalogService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.products.ListAll(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id uint) (models.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, input ProductInput) (models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Product{}, apperr.Validation("Product name is required")
	}
	if input.Price < 0 || input.PromoPrice < 0 {
		return models.Product{}, apperr.Validation("Price cannot be negative")
	}
	if input.Stock < 0 {
		return models.Product{}, apperr.Validation("Stock must be a non-negative integer")
	}

	product := models.Product{
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		PromoPrice:  input.PromoPrice,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		Vendor:      strings.TrimSpace(input.Vendor),
		Category:    strings.TrimSpace(input.Category),
		IsActive:    true,
	}
	if err := s.products.Create(ctx, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, id uint, input ProductUpdate) (models.Product, error) {
	updates := make(map[string]any)
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return models.Product{}, apperr.Validation("Product name is required")
		}
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return models.Product{}, apperr.Validation("Price cannot be negative")
		}
		updates["price"] = *input.Price
	}
	if input.PromoPrice != nil {
		if *input.PromoPrice < 0 {
			return models.Product{}, apperr.Validation("Promo price cannot be negative")
		}
		updates["promo_price"] = *input.PromoPrice
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return models.Product{}, apperr.Validation("Stock must be a non-negative integer")
		}
		updates["stock"] = *input.Stock
	}
	if input.Vendor != nil {
		updates["vendor"] = strings.TrimSpace(*input.Vendor)
	}
	if input.Category != nil {
		updates["category"] = strings.TrimSpace(*input.Category)
	}

	if len(updates) == 0 {
		return s.products.Get(ctx, id)
	}
	return s.products.Update(ctx, id, updates)
}

// Delete soft-deletes: the product stays on disk for orders that reference it.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	return s.products.SoftDelete(ctx, id)
}
