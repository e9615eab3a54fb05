package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/restshop/commerce-api/internal/api/metrics"
	"github.com/restshop/commerce-api/internal/core/domain"
	"github.com/restshop/commerce-api/internal/core/ports"
)

// AuthHandler handles account lifecycle requests.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp creates a new account and returns its auth token.
//
// @Summary      Create a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signUp [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, _, err := h.authService.SignUp(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{Message: "success", AuthToken: token})
}

// Login authenticates an account and returns a fresh auth token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Message: "success", AuthToken: token})
}

// DeleteUser removes the authenticated caller's own account.
//
// @Summary      Delete own account
// @Tags         auth
// @Produce      json
// @Security     TokenAuth
// @Param        id  path      string  true  "User id"
// @Success      200 {object}  deleteUserResponse
// @Failure      401 {object}  map[string]string
// @Failure      403 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Failure      500 {object}  map[string]string
// @Router       /auth/deleteUser/{id} [delete]
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	authUserID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.DeleteAccount(c.Request().Context(), c.Param("id"), authUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "account not found"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "not allowed"})
		}
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteUserResponse{
		Message: "account has been deleted",
		User:    user,
	})
}
