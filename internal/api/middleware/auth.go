package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/restshop/commerce-api/internal/api/metrics"
)

// TokenHeader is the request header carrying the bearer token.
const TokenHeader = "auth-token"

// ContextUserID is the echo context key the middleware stores the
// authenticated user id under.
const ContextUserID = "user_id"

// TokenVerifier checks a token string and returns the user id it encodes.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth validates the auth-token header and injects the resolved user id into
// the request context. The check is purely structural: it does not confirm
// the user still exists, and every failure mode is answered with the same 401
// so callers learn nothing about why a token was rejected.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				metrics.AuthRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "please authenticate with a valid token")
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				metrics.AuthRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "please authenticate with a valid token")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
