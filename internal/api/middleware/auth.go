package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

// identityKey is the echo context key the verified identity is stored under.
const identityKey = "identity"

// guardMessage is the single message returned for every guard failure.
// Missing header, wrong scheme, bad signature, and expiry are deliberately
// indistinguishable to callers.
const guardMessage = "invalid or missing credentials"

// Auth extracts the Bearer credential, verifies it, and injects the
// resulting identity into the request context.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, guardMessage)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, guardMessage)
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, guardMessage)
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}
