package ports

import "context"

// StartCheckoutInput carries the optional shipping/contact fields the
// checkout form may supply. Empty fields fall back to the session user's
// details and the storefront placeholders.
type StartCheckoutInput struct {
	ShippingAddress string
	CustomerPhone   string
}

// CheckoutResult is returned when an order has been created and a payment
// session prepared. The caller either follows RedirectURL or mounts the
// embedded widget with WidgetToken, depending on the configured provider.
type CheckoutResult struct {
	OrderNumber string
	OrderName   string
	Amount      float64
	Provider    string
	RedirectURL string
	WidgetToken string
}

// ConfirmCheckoutInput carries the parameters extracted from the success
// return URL.
type ConfirmCheckoutInput struct {
	PaymentKey  string
	OrderNumber string
	Amount      float64
	Params      map[string]string
}

// ConfirmCheckoutResult reports a confirmed payment.
type ConfirmCheckoutResult struct {
	OrderNumber string
	Amount      float64
}

// CheckoutService orchestrates the two-step checkout handshake: order
// creation plus payment preparation, then confirmation on return. The cart
// is cleared only after Confirm succeeds; a failed or abandoned payment
// leaves it intact for a retry.
type CheckoutService interface {
	Start(ctx context.Context, sessionID string, input StartCheckoutInput) (*CheckoutResult, error)
	Confirm(ctx context.Context, sessionID string, input ConfirmCheckoutInput) (*ConfirmCheckoutResult, error)
	// RecordFailure journals a failed return (fail URL) for reconciliation.
	RecordFailure(ctx context.Context, orderNumber, code, message string)
}
