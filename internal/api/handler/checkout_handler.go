package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// CheckoutHandler drives the payment handshake: start, success return and
// fail return. The provider-specific shape of the response (redirect URL vs
// widget token) is decided by the configured payment provider.
type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Start creates the order and opens a payment session for the current cart.
//
// @Summary      Start checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      startCheckoutRequest  false  "Optional shipping details"
// @Success      201   {object}  startCheckoutResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /checkout [post]
func (h *CheckoutHandler) Start(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req startCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.checkout.Start(c.Request().Context(), sid, ports.StartCheckoutInput{
		ShippingAddress: req.ShippingAddress,
		CustomerPhone:   req.CustomerPhone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, startCheckoutResponse{
		OrderNumber: result.OrderNumber,
		OrderName:   result.OrderName,
		Amount:      result.Amount,
		Provider:    result.Provider,
		RedirectURL: result.RedirectURL,
		WidgetToken: result.WidgetToken,
	})
}

// Success is the provider's success-return endpoint. It confirms the payment
// and, only on a confirmed payment, clears the cart.
//
// @Summary      Payment success return
// @Tags         checkout
// @Produce      json
// @Param        orderId     query     string  true  "Order number"
// @Param        paymentKey  query     string  true  "Provider payment key"
// @Param        amount      query     number  true  "Paid amount"
// @Success      200         {object}  confirmCheckoutResponse
// @Failure      400         {object}  errorResponse
// @Failure      402         {object}  errorResponse
// @Failure      502         {object}  errorResponse
// @Router       /checkout/success [get]
func (h *CheckoutHandler) Success(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil {
		return domain.ErrInvalidPaymentParams
	}

	// Forward every query parameter so provider-specific callback fields
	// (signatures, status codes) reach the provider's verification.
	params := make(map[string]string)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	result, err := h.checkout.Confirm(c.Request().Context(), sid, ports.ConfirmCheckoutInput{
		PaymentKey:  c.QueryParam("paymentKey"),
		OrderNumber: c.QueryParam("orderId"),
		Amount:      amount,
		Params:      params,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, confirmCheckoutResponse{
		OrderNumber: result.OrderNumber,
		Amount:      result.Amount,
		Status:      string(domain.OrderPaid),
	})
}

// Fail is the provider's fail-return endpoint. The attempt is journaled and
// the cart left intact; the message falls back to a generic one so the page
// never renders empty.
//
// @Summary      Payment fail return
// @Tags         checkout
// @Produce      json
// @Param        orderId  query     string  false  "Order number"
// @Param        code     query     string  false  "Provider error code"
// @Param        message  query     string  false  "Provider error message"
// @Success      200      {object}  checkoutFailResponse
// @Router       /checkout/fail [get]
func (h *CheckoutHandler) Fail(c echo.Context) error {
	orderNumber := c.QueryParam("orderId")
	code := c.QueryParam("code")
	message := c.QueryParam("message")

	h.checkout.RecordFailure(c.Request().Context(), orderNumber, code, message)

	if message == "" {
		message = "payment failed"
	}

	return c.JSON(http.StatusOK, checkoutFailResponse{
		OrderNumber: orderNumber,
		Code:        code,
		Message:     message,
	})
}
