package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// CartHandler exposes the session cart. Every mutation responds with the
// resulting cart snapshot so clients never need a follow-up read.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Get returns the session's cart.
//
// @Summary      Get the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	view, err := h.cart.Get(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// AddItem merges a product line into the cart. A missing quantity defaults
// to one; an existing line has its quantity incremented.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Item to add"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.cart.Add(c.Request().Context(), sid, ports.AddCartItemInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// SetQuantity replaces a line's quantity. Zero or below removes the line.
//
// @Summary      Set a line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        productId  path      int                 true  "Product ID"
// @Param        body       body      setQuantityRequest  true  "New quantity"
// @Success      200        {object}  cartResponse
// @Failure      400        {object}  errorResponse
// @Router       /cart/items/{productId} [patch]
func (h *CartHandler) SetQuantity(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.cart.SetQuantity(c.Request().Context(), sid, productID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// RemoveItem drops a line from the cart. Removing an absent line is a no-op.
//
// @Summary      Remove an item from the cart
// @Tags         cart
// @Produce      json
// @Param        productId  path      int  true  "Product ID"
// @Success      200        {object}  cartResponse
// @Failure      400        {object}  errorResponse
// @Router       /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	view, err := h.cart.Remove(c.Request().Context(), sid, productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// Clear empties the cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Success      204  "No Content"
// @Router       /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	if err := h.cart.Clear(c.Request().Context(), sid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
