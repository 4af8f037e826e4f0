// Package payment implements the two payment-provider variants behind
// ports.PaymentProvider: a redirect-based flow delegated to the backend's
// payment endpoints, and an embedded-widget flow built on the Midtrans Snap
// SDK. Exactly one is active per deployment, selected by configuration.
package payment

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// ProviderRedirect names the redirect-based variant: the backend prepares a
// hosted payment page and the shopper's browser is sent to it.
const ProviderRedirect = "redirect"

// RedirectProvider fronts the backend's /payments/prepare and
// /payments/confirm/<channel> endpoints.
type RedirectProvider struct {
	backend ports.BackendClient
	// channel is the confirmation path segment the backend expects
	// (e.g. "test" in development).
	channel string
	log     zerolog.Logger
}

func NewRedirectProvider(backend ports.BackendClient, channel string, log zerolog.Logger) *RedirectProvider {
	if channel == "" {
		channel = "test"
	}
	return &RedirectProvider{backend: backend, channel: channel, log: log}
}

func (p *RedirectProvider) Name() string { return ProviderRedirect }

// Prepare asks the backend for a hosted payment URL for the order.
func (p *RedirectProvider) Prepare(ctx context.Context, input ports.PreparePaymentInput) (*ports.PaymentSession, error) {
	prepared, err := p.backend.PreparePayment(ctx, input.Token, ports.PreparePaymentRequest{
		OrderID:    input.OrderNumber,
		Amount:     input.Amount,
		OrderName:  input.OrderName,
		SuccessURL: input.SuccessURL,
		FailURL:    input.FailURL,
	})
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("order_number", input.OrderNumber).
		Float64("amount", input.Amount).
		Msg("payment session prepared")

	return &ports.PaymentSession{
		Provider:    ProviderRedirect,
		RedirectURL: prepared.PaymentURL,
		ExternalRef: input.OrderNumber,
	}, nil
}

// Confirm posts the return-URL parameters to the backend's confirmation
// endpoint. Any backend rejection surfaces unchanged; the caller decides
// what that means for the cart.
func (p *RedirectProvider) Confirm(ctx context.Context, input ports.ConfirmPaymentInput) (*ports.PaymentConfirmation, error) {
	err := p.backend.ConfirmPayment(ctx, p.channel, ports.ConfirmPaymentRequest{
		PaymentKey: input.PaymentKey,
		OrderID:    input.OrderNumber,
		Amount:     input.Amount,
	})
	if err != nil {
		return nil, err
	}
	return &ports.PaymentConfirmation{
		OrderNumber: input.OrderNumber,
		Amount:      input.Amount,
	}, nil
}
