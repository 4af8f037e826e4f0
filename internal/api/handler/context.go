package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monoshop/storefront-gateway/internal/api/middleware"
)

// ctxSessionID extracts the session id injected by the Session middleware.
// Its absence means the middleware did not run for this route, which is a
// wiring bug, not a client error — but the client still gets a clean 401.
func ctxSessionID(c echo.Context) (string, error) {
	sid, _ := c.Get(middleware.ContextSessionID).(string)
	if sid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sid, nil
}
