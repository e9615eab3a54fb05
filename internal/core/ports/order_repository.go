package ports

import (
	"context"

	"github.com/restshop/commerce-api/internal/core/domain"
)

// OrderRepository defines the persistence contract for orders.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	DeleteByID(ctx context.Context, id string) error
}
