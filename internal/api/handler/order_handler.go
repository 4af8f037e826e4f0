package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// OrderHandler exposes the session user's order history. Routes are mounted
// behind RequireAuth; the service re-checks ownership on single-order reads.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List returns the session user's orders.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListOrders(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get returns one of the session user's orders. Another user's order answers
// 404, not 403, so order ids stay unguessable.
//
// @Summary      Get one of my orders
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.GetOrder(c.Request().Context(), sid, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
