package ports

import (
	"context"

	"github.com/restshop/commerce-api/internal/core/domain"
)

// AuthService defines the account lifecycle use-cases.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	DeleteAccount(ctx context.Context, targetID, authUserID string) (*domain.User, error)
}
