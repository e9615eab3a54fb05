package ports

import (
	"context"

	"github.com/restshop/commerce-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// The store enforces email uniqueness with a unique index; Create must
// surface a store-level duplicate as domain.ErrUserExists.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
}
