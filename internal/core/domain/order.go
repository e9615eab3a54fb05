package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// Order records a purchase of a single product.
type Order struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	Quantity       int       `json:"quantity"`
	CreatedAt      time.Time `json:"created_at"`
	IdempotencyKey string    `json:"-"`
}
