package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired means the session carries no usable auth record.
	ErrAuthRequired = errors.New("authentication required")
	// ErrForbidden means the backend rejected the caller's role (403).
	ErrForbidden = errors.New("access forbidden")
	// ErrCartEmpty blocks checkout before any order request is issued.
	ErrCartEmpty = errors.New("cart is empty")

	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")

	// ErrBackendUnavailable wraps transport-level failures talking to the
	// commerce backend. The caller retries manually; we never do.
	ErrBackendUnavailable = errors.New("backend unreachable")

	// ErrPaymentRejected means the provider declined or could not verify the
	// payment. The cart must stay intact when this is returned.
	ErrPaymentRejected = errors.New("payment rejected")
	// ErrInvalidPaymentParams means the return URL was missing confirmation
	// parameters (paymentKey, orderId, amount).
	ErrInvalidPaymentParams = errors.New("invalid payment parameters")
)

// APIError carries a backend HTTP status and its normalized message through
// the service layer so the gateway can relay it faithfully.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}
