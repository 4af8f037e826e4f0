package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// AuthHandler exposes the session auth endpoints: login, signup, logout and
// the current-session probe.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates against the commerce backend and caches the
// token+user pair under the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	auth, err := h.authService.Login(c.Request().Context(), sid, ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: &auth.User})
}

// Signup registers a new customer account and logs it in.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	auth, err := h.authService.Signup(c.Request().Context(), sid, ports.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: &auth.User})
}

// Logout drops the session's cached login. Idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204  "No Content"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Me reports the session's cached login, or user: null when anonymous.
//
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	auth, err := h.authService.Current(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	if !auth.Valid() {
		return c.JSON(http.StatusOK, authResponse{})
	}

	return c.JSON(http.StatusOK, authResponse{User: &auth.User})
}
