package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// ProductRepository is the durable catalog store.
type ProductRepository interface {
	// ListNewestFirst returns all products sorted by creation time descending.
	ListNewestFirst(ctx context.Context) ([]domain.Product, error)

	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
}
