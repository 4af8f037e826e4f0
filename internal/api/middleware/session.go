package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionHeader carries the signed session token on every request; the
	// gateway echoes it back so clients can persist it.
	SessionHeader = "X-Session-Token"
	// SessionCookie is the fallback transport for browser clients.
	SessionCookie = "storefront_session"

	// ContextSessionID is the echo context key holding the session id.
	ContextSessionID = "session_id"

	sessionTTL = 30 * 24 * time.Hour
)

// Session resolves the caller's session id from a signed token, minting a
// fresh one when the request carries none (or a tampered one). Carts and
// cached logins are keyed by this id, so an invalid token silently becomes a
// new, empty session rather than an error.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c)

			sid, ok := parseSessionID(token, secret)
			if !ok {
				sid = uuid.NewString()
				signed, err := signSessionID(sid, secret)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "session setup failed")
				}
				token = signed
			}

			c.Set(ContextSessionID, sid)
			c.Response().Header().Set(SessionHeader, token)
			c.SetCookie(&http.Cookie{
				Name:     SessionCookie,
				Value:    token,
				Path:     "/",
				MaxAge:   int(sessionTTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			return next(c)
		}
	}
}

func sessionToken(c echo.Context) string {
	if tok := strings.TrimSpace(c.Request().Header.Get(SessionHeader)); tok != "" {
		return tok
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func signSessionID(sid, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseSessionID(token, secret string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}
