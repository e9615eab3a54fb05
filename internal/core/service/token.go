package service

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/restshop/commerce-api/internal/core/domain"
)

// TokenIssuer creates and verifies the stateless bearer tokens used by the
// API. Tokens carry a single identity claim shaped as {"user":{"id":...}} and
// are signed with HS256 using the secret injected at construction. Tokens do
// not expire; they only stop verifying when the secret changes.
type TokenIssuer struct {
	secret string
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: secret}
}

// Issue signs an identity claim for the given user id.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]any{"id": userID},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.secret))
}

// Verify checks the signature and claim shape of a token and returns the
// embedded user id. Every failure mode (malformed token, forged signature,
// unexpected signing method, missing claim) collapses into ErrInvalidToken so
// callers cannot distinguish why verification failed.
func (t *TokenIssuer) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tkn *jwt.Token) (interface{}, error) {
		if tkn.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(t.secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}

	user, ok := claims["user"].(map[string]any)
	if !ok {
		return "", domain.ErrInvalidToken
	}
	id, ok := user["id"].(string)
	if !ok || id == "" {
		return "", domain.ErrInvalidToken
	}
	return id, nil
}
