package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/monoshop/storefront-gateway/internal/api/metrics"
	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
	"github.com/monoshop/storefront-gateway/internal/pkg/bus"
)

// defaultShippingAddress stands in until the checkout form grows an address
// step, mirroring the storefront's placeholder behaviour.
const (
	defaultShippingAddress = "Seoul, Gangnam-gu"
	defaultCustomerPhone   = "010-0000-0000"
)

// CheckoutService orchestrates the two-step handshake: create the order at
// the backend, open a payment session with the configured provider, and on
// return confirm the payment. The cart is cleared only after a successful
// confirmation; every other outcome leaves it intact for a retry.
type CheckoutService struct {
	carts    ports.CartStore
	auth     ports.AuthStore
	backend  ports.BackendClient
	provider ports.PaymentProvider
	journal  ports.PaymentJournal
	events   *bus.Bus

	successURL string
	failURL    string
	logger     zerolog.Logger
}

func NewCheckoutService(
	carts ports.CartStore,
	auth ports.AuthStore,
	backend ports.BackendClient,
	provider ports.PaymentProvider,
	journal ports.PaymentJournal,
	events *bus.Bus,
	publicBaseURL string,
	logger zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		auth:       auth,
		backend:    backend,
		provider:   provider,
		journal:    journal,
		events:     events,
		successURL: publicBaseURL + "/checkout/success",
		failURL:    publicBaseURL + "/checkout/fail",
		logger:     logger,
	}
}

// Start runs steps 1-3 of the flow: gate on auth and a non-empty cart,
// create the order, prepare the payment session. No order-creation request
// is ever issued for an empty cart.
func (s *CheckoutService) Start(ctx context.Context, sessionID string, input ports.StartCheckoutInput) (*ports.CheckoutResult, error) {
	auth, err := s.auth.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !auth.Valid() {
		return nil, domain.ErrAuthRequired
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, domain.ErrCartEmpty
	}

	shippingAddress := input.ShippingAddress
	if shippingAddress == "" {
		shippingAddress = defaultShippingAddress
	}
	phone := input.CustomerPhone
	if phone == "" {
		phone = defaultCustomerPhone
	}

	items := make([]ports.CreateOrderItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, ports.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	created, err := s.backend.CreateOrder(ctx, auth.Token, ports.CreateOrderInput{
		UserID:          auth.User.ID,
		Items:           items,
		ShippingAddress: shippingAddress,
		CustomerName:    auth.User.Name,
		CustomerEmail:   auth.User.Email,
		CustomerPhone:   phone,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("order creation failed")
		return nil, err
	}
	metrics.OrdersCreatedTotal.Inc()

	orderName := cart.OrderName()
	amount := cart.RoundedTotal()

	session, err := s.provider.Prepare(ctx, ports.PreparePaymentInput{
		OrderNumber: created.OrderNumber,
		Amount:      amount,
		OrderName:   orderName,
		Token:       auth.Token,
		SuccessURL:  s.successURL,
		FailURL:     s.failURL,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("order_number", created.OrderNumber).Msg("payment preparation failed")
		return nil, err
	}
	metrics.PaymentsPreparedTotal.WithLabelValues(session.Provider).Inc()

	// Journal failures must not lose the shopper's payment session.
	if err := s.journal.RecordPending(ctx, &domain.PaymentRecord{
		OrderNumber: created.OrderNumber,
		Provider:    session.Provider,
		ExternalRef: session.ExternalRef,
		Amount:      amount,
		OrderName:   orderName,
	}); err != nil {
		s.logger.Warn().Err(err).Str("order_number", created.OrderNumber).Msg("payment journal write failed")
	}

	s.logger.Info().
		Str("order_number", created.OrderNumber).
		Str("provider", session.Provider).
		Float64("amount", amount).
		Msg("checkout started")

	return &ports.CheckoutResult{
		OrderNumber: created.OrderNumber,
		OrderName:   orderName,
		Amount:      amount,
		Provider:    session.Provider,
		RedirectURL: session.RedirectURL,
		WidgetToken: session.WidgetToken,
	}, nil
}

// Confirm runs step 5: validate the return parameters, confirm with the
// provider, then — and only then — clear the cart. A confirmation failure
// journals the attempt and leaves the cart untouched.
func (s *CheckoutService) Confirm(ctx context.Context, sessionID string, input ports.ConfirmCheckoutInput) (*ports.ConfirmCheckoutResult, error) {
	if input.OrderNumber == "" || input.PaymentKey == "" || input.Amount <= 0 {
		return nil, domain.ErrInvalidPaymentParams
	}

	start := time.Now()
	confirmation, err := s.provider.Confirm(ctx, ports.ConfirmPaymentInput{
		PaymentKey:  input.PaymentKey,
		OrderNumber: input.OrderNumber,
		Amount:      input.Amount,
		Params:      input.Params,
	})
	metrics.PaymentConfirmDuration.WithLabelValues(s.provider.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.PaymentsConfirmedTotal.WithLabelValues(s.provider.Name(), "failure").Inc()
		s.journalFailure(ctx, input.OrderNumber, map[string]any{
			"payment_key": input.PaymentKey,
			"error":       err.Error(),
		})
		s.logger.Warn().Err(err).Str("order_number", input.OrderNumber).Msg("payment confirmation failed")
		return nil, err
	}
	metrics.PaymentsConfirmedTotal.WithLabelValues(s.provider.Name(), "success").Inc()

	payload, _ := json.Marshal(map[string]any{
		"payment_key": input.PaymentKey,
		"amount":      input.Amount,
	})
	if err := s.journal.MarkPaid(ctx, input.OrderNumber, payload); err != nil {
		s.logger.Warn().Err(err).Str("order_number", input.OrderNumber).Msg("payment journal update failed")
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// The payment is confirmed; a stale cart is recoverable, losing the
		// confirmation is not.
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("cart clear after confirmation failed")
	} else {
		s.events.PublishCartChanged(sessionID)
	}

	s.logger.Info().
		Str("order_number", confirmation.OrderNumber).
		Float64("amount", confirmation.Amount).
		Msg("payment confirmed")

	return &ports.ConfirmCheckoutResult{
		OrderNumber: confirmation.OrderNumber,
		Amount:      confirmation.Amount,
	}, nil
}

// RecordFailure journals a fail-URL return. Purely auditive; the cart and
// the order are left as they are.
func (s *CheckoutService) RecordFailure(ctx context.Context, orderNumber, code, message string) {
	if orderNumber == "" {
		return
	}
	s.journalFailure(ctx, orderNumber, map[string]any{
		"code":    code,
		"message": message,
	})
}

func (s *CheckoutService) journalFailure(ctx context.Context, orderNumber string, detail map[string]any) {
	payload, _ := json.Marshal(detail)
	if err := s.journal.MarkFailed(ctx, orderNumber, payload); err != nil {
		s.logger.Warn().Err(err).Str("order_number", orderNumber).Msg("payment journal update failed")
	}
}
