package ports

import (
	"context"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
)

// PreparePaymentInput carries everything a provider needs to open a payment
// session for an order.
type PreparePaymentInput struct {
	OrderNumber string
	// Amount is the cart total rounded to two decimals.
	Amount    float64
	OrderName string
	// Token is the session's backend bearer token; the redirect provider
	// forwards it, the widget provider ignores it.
	Token      string
	SuccessURL string
	FailURL    string
}

// PaymentSession is the provider's answer to Prepare. Exactly one rendering
// applies: the redirect variant fills RedirectURL only, the widget variant
// fills WidgetToken (plus the provider-hosted RedirectURL fallback).
type PaymentSession struct {
	Provider    string
	RedirectURL string
	WidgetToken string
	ExternalRef string
}

// ConfirmPaymentInput carries the parameters extracted from the success
// return URL, plus any provider-specific callback fields.
type ConfirmPaymentInput struct {
	PaymentKey  string
	OrderNumber string
	Amount      float64
	// Params holds raw provider callback fields (signature, status codes)
	// used by the widget provider's verification.
	Params map[string]string
}

// PaymentConfirmation is returned by a successful Confirm.
type PaymentConfirmation struct {
	OrderNumber string
	Amount      float64
}

// PaymentProvider abstracts the two mutually exclusive payment integrations
// (redirect-based and embedded widget). One implementation is selected by
// configuration at startup; the checkout flow never composes them.
type PaymentProvider interface {
	Name() string
	Prepare(ctx context.Context, input PreparePaymentInput) (*PaymentSession, error)
	Confirm(ctx context.Context, input ConfirmPaymentInput) (*PaymentConfirmation, error)
}

// PaymentJournal records every prepare/confirm attempt locally for
// reconciliation. Journal failures must never fail the payment flow.
type PaymentJournal interface {
	RecordPending(ctx context.Context, rec *domain.PaymentRecord) error
	MarkPaid(ctx context.Context, orderNumber string, payload []byte) error
	MarkFailed(ctx context.Context, orderNumber string, payload []byte) error
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.PaymentRecord, error)
}
