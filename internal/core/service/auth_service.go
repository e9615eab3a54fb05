package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/restshop/commerce-api/internal/core/domain"
	"github.com/restshop/commerce-api/internal/core/ports"
)

// AuthService implements signup, login, and account deletion.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// SignUp creates an account and returns a bearer token for it.
//
// The email pre-check gives fast feedback but is not race-safe; the unique
// index on the users collection is. A duplicate-key error on Create is
// therefore reported identically to a failed pre-check.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")

	return token, created, nil
}

// Login verifies credentials and returns a fresh token. An unknown email and
// a wrong password are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// DeleteAccount removes the target account if and only if it is the
// authenticated caller's own. The existence check runs first, so an owner
// probing a stale id gets NotFound rather than Forbidden.
func (s *AuthService) DeleteAccount(ctx context.Context, targetID, authUserID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if user.ID != authUserID {
		return nil, domain.ErrForbidden
	}

	if err := s.repo.DeleteByID(ctx, targetID); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", targetID).Msg("account deleted")

	return user, nil
}
