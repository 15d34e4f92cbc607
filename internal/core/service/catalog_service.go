package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
	"github.com/shoply/storefront-api/internal/pkg/metrics"
)

// ListCache abstracts the catalog listing cache (Redis). A nil cache disables
// caching entirely.
type ListCache interface {
	// Get returns the cached listing, or ok=false on a miss.
	Get(ctx context.Context) ([]domain.Product, bool, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// CatalogService implements product listing and creation with a cache-aside
// listing cache.
type CatalogService struct {
	repo   ports.ProductRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, cache ListCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

// List returns all products, newest first. Cache failures are logged and fall
// through to the repository; the cache is never load-bearing.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache read failed, serving from store")
		} else if ok {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	products, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache fill failed")
		}
	}
	return products, nil
}

// Create validates and persists a product, then invalidates the listing cache
// so the next List reflects it.
func (s *CatalogService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Price < 0 {
		return nil, domain.ErrInvalidProduct
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
		}
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}
