package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// CreateProductInput carries the data needed to add a catalog entry.
type CreateProductInput struct {
	Name        string
	Price       float64
	Image       string
	Description string
}

// CatalogService defines the product use cases.
type CatalogService interface {
	// List returns all products, newest first.
	List(ctx context.Context) ([]domain.Product, error)

	// Create validates and persists a product, failing with
	// domain.ErrInvalidProduct on bad input.
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
}
