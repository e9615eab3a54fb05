package handler

import "github.com/restshop/commerce-api/internal/core/domain"

type signUpRequest struct {
	Name     string `json:"name"     validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse carries the bearer token issued on signup and login.
type authResponse struct {
	Message   string `json:"message"`
	AuthToken string `json:"authToken"`
}

// deleteUserResponse returns the removed record as confirmation. The user's
// password hash is never serialized (json:"-" on the domain type).
type deleteUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
