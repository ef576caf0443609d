package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
)

// ctxIdentity extracts the verified identity injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// routing mistake and is rejected with 401.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get("identity").(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
