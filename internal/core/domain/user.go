package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user with this email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidToken = errors.New("invalid auth token")

// User models a registered account. PasswordHash holds the bcrypt digest,
// never the plaintext, and is excluded from every JSON rendering.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
