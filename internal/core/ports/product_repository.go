package ports

import (
	"context"

	"github.com/restshop/commerce-api/internal/core/domain"
)

// ProductRepository defines the persistence contract for catalogue items.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Product, error)
	DeleteByID(ctx context.Context, id string) error
}
