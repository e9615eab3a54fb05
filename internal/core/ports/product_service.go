package ports

import (
	"context"

	"github.com/restshop/commerce-api/internal/core/domain"
)

// CreateProductInput carries the data needed to add a catalogue item.
type CreateProductInput struct {
	Name     string
	Price    float64
	ImageURL string
}

// UpdateProductInput carries a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name     *string
	Price    *float64
	ImageURL *string
}

// ProductService defines use-case operations for the product catalogue.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
