package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

type stubProductRepo struct {
	products []domain.Product
	nextID   int
	listErr  error
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	// prepend: newest first
	r.products = append([]domain.Product{clone}, r.products...)
	return &clone, nil
}

func (r *stubProductRepo) ListNewestFirst(_ context.Context) ([]domain.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.products, nil
}

type stubCache struct {
	entry      []domain.Product
	populated  bool
	getErr     error
	gets, sets int
}

func (c *stubCache) Get(_ context.Context) ([]domain.Product, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.entry, c.populated, nil
}

func (c *stubCache) Set(_ context.Context, products []domain.Product) error {
	c.sets++
	c.entry = products
	c.populated = true
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.entry = nil
	c.populated = false
	return nil
}

func TestCatalogService_Create_Validation(t *testing.T) {
	svc := NewCatalogService(&stubProductRepo{}, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "", Price: 10}); !errors.Is(err, domain.ErrInvalidProduct) {
		t.Fatalf("empty name: expected ErrInvalidProduct, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Mug", Price: -1}); !errors.Is(err, domain.ErrInvalidProduct) {
		t.Fatalf("negative price: expected ErrInvalidProduct, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Mug", Price: 0}); err != nil {
		t.Fatalf("zero price should be valid, got %v", err)
	}
}

func TestCatalogService_ListNewestFirst(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "First", Price: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Second", Price: 2}); err != nil {
		t.Fatalf("create: %v", err)
	}

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 || products[0].Name != "Second" || products[1].Name != "First" {
		t.Fatalf("expected newest first, got %+v", products)
	}
}

func TestCatalogService_ListUsesCache(t *testing.T) {
	repo := &stubProductRepo{listErr: errors.New("store down")}
	cache := &stubCache{entry: []domain.Product{{ID: "p1", Name: "Cached"}}, populated: true}
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list should be served from cache: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Cached" {
		t.Fatalf("unexpected listing: %+v", products)
	}
}

func TestCatalogService_ListFillsCacheOnMiss(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{{ID: "p1", Name: "Mug", Price: 9}}}
	cache := &stubCache{}
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if cache.sets != 1 || !cache.populated {
		t.Fatalf("cache not filled after miss (sets=%d)", cache.sets)
	}
}

func TestCatalogService_CreateInvalidatesCache(t *testing.T) {
	repo := &stubProductRepo{}
	cache := &stubCache{entry: []domain.Product{{ID: "stale"}}, populated: true}
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Mug", Price: 9}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if cache.populated {
		t.Fatalf("cache not invalidated after create")
	}

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Mug" {
		t.Fatalf("listing stale after create: %+v", products)
	}
}

func TestCatalogService_CacheErrorFallsThrough(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{{ID: "p1", Name: "Mug"}}}
	cache := &stubCache{getErr: errors.New("redis down")}
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the listing: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("unexpected listing: %+v", products)
	}
}
