package ports

import (
	"context"
	"time"
)

// PlaceOrderInput carries the data needed to place an order.
type PlaceOrderInput struct {
	ProductID string
	Quantity  int
	// IdempotencyKey, when non-empty, makes the placement replay-safe:
	// a repeated submission with the same key returns the original order.
	IdempotencyKey string
}

// OrderProduct is the product view embedded in order responses.
type OrderProduct struct {
	ID    string
	Name  string
	Price float64
}

// OrderDetail is an order joined with its product.
type OrderDetail struct {
	ID        string
	Product   OrderProduct
	Quantity  int
	CreatedAt time.Time
	// AlreadyExisted is true when the Idempotency-Key matched an existing order.
	AlreadyExisted bool
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	ListOrders(ctx context.Context) ([]OrderDetail, error)
	GetOrder(ctx context.Context, id string) (*OrderDetail, error)
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderDetail, error)
	DeleteOrder(ctx context.Context, id string) error
}
