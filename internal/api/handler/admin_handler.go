package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// AdminHandler exposes the minimal product CRUD for store operators. Routes
// are mounted behind RequireAuth + RBAC(ADMIN); the service re-checks the
// role so the gate holds even without the middleware.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListProducts returns the full catalog in its raw backend shape.
//
// @Summary      List products (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/products [get]
func (h *AdminHandler) ListProducts(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	products, err := h.admin.ListProducts(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct registers a new product.
//
// @Summary      Create a product (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/products [post]
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.admin.CreateProduct(c.Request().Context(), sid, ports.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// DeleteProduct removes a product.
//
// @Summary      Delete a product (admin)
// @Tags         admin
// @Param        id  path  int  true  "Product ID"
// @Success      204  "No Content"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.admin.DeleteProduct(c.Request().Context(), sid, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
