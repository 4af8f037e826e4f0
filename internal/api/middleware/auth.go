package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

const (
	// ContextAuth is the echo context key holding the session's auth record.
	ContextAuth = "auth"
	// ContextRole is the echo context key holding the cached user's role.
	ContextRole = "role"
)

// RequireAuth loads the session's cached login and rejects the request when
// there is none. The 401 body carries the login path (with a redirect back to
// the requested page) so clients can forward the user there.
func RequireAuth(store ports.AuthStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, _ := c.Get(ContextSessionID).(string)

			auth, err := store.Get(c.Request().Context(), sid)
			if err != nil {
				return err
			}
			if !auth.Valid() {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":    "login required",
					"redirect": "/login?redirect=" + c.Request().URL.Path,
				})
			}

			c.Set(ContextAuth, auth)
			c.Set(ContextRole, auth.User.Role)

			return next(c)
		}
	}
}
