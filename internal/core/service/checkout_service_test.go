package service

import (
	"context"
	"errors"
	"testing"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

const publicURL = "http://localhost:3000"

func seedCart(t *testing.T, store *memCartStore, sessionID string, items ...domain.CartItem) {
	t.Helper()
	if err := store.Save(context.Background(), sessionID, domain.Cart(items)); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
}

func seedLogin(t *testing.T, store *memAuthStore, sessionID string) {
	t.Helper()
	err := store.Save(context.Background(), sessionID, &domain.Auth{
		Token: "backend-token",
		User:  domain.User{ID: 42, Email: "alice@example.com", Name: "Alice", Role: domain.RoleCustomer},
	})
	if err != nil {
		t.Fatalf("seed login: %v", err)
	}
}

func TestCheckoutStart_AnonymousSession(t *testing.T) {
	carts := newMemCartStore()
	auth := newMemAuthStore()
	svc := NewCheckoutService(carts, auth, &stubBackend{}, &stubProvider{}, newMemJournal(), testBus(), publicURL, testLogger())

	_, err := svc.Start(context.Background(), "s1", ports.StartCheckoutInput{})
	if !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}

func TestCheckoutStart_EmptyCartIssuesNoOrder(t *testing.T) {
	carts := newMemCartStore()
	auth := newMemAuthStore()
	seedLogin(t, auth, "s1")

	backend := &stubBackend{
		createOrderFn: func(ctx context.Context, token string, input ports.CreateOrderInput) (*ports.OrderCreated, error) {
			t.Fatalf("order creation must not be attempted for an empty cart")
			return nil, nil
		},
	}
	svc := NewCheckoutService(carts, auth, backend, &stubProvider{}, newMemJournal(), testBus(), publicURL, testLogger())

	_, err := svc.Start(context.Background(), "s1", ports.StartCheckoutInput{})
	if !errors.Is(err, domain.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutStart_Success(t *testing.T) {
	carts := newMemCartStore()
	auth := newMemAuthStore()
	journal := newMemJournal()
	seedLogin(t, auth, "s1")
	seedCart(t, carts, "s1",
		domain.CartItem{ProductID: 1, Name: "Keyboard", Price: 49.995, Quantity: 2},
		domain.CartItem{ProductID: 2, Name: "Mouse", Price: 19.99, Quantity: 1},
	)

	backend := &stubBackend{
		createOrderFn: func(ctx context.Context, token string, input ports.CreateOrderInput) (*ports.OrderCreated, error) {
			if token != "backend-token" {
				t.Fatalf("unexpected token %q", token)
			}
			if input.UserID != 42 || len(input.Items) != 2 {
				t.Fatalf("unexpected order input: %+v", input)
			}
			if input.CustomerName != "Alice" || input.CustomerEmail != "alice@example.com" {
				t.Fatalf("order must carry the session user's details: %+v", input)
			}
			return &ports.OrderCreated{ID: 9, OrderNumber: "ORD-9"}, nil
		},
	}
	provider := &stubProvider{
		name: "redirect",
		prepareFn: func(ctx context.Context, input ports.PreparePaymentInput) (*ports.PaymentSession, error) {
			// 49.995*2 + 19.99 = 119.98
			if input.Amount != 119.98 {
				t.Fatalf("amount must be rounded to 2 decimals, got %v", input.Amount)
			}
			if input.OrderName != "Keyboard and 1 more" {
				t.Fatalf("unexpected order name %q", input.OrderName)
			}
			if input.SuccessURL != publicURL+"/checkout/success" || input.FailURL != publicURL+"/checkout/fail" {
				t.Fatalf("unexpected return URLs: %q %q", input.SuccessURL, input.FailURL)
			}
			return &ports.PaymentSession{Provider: "redirect", RedirectURL: "https://pay.example/ORD-9"}, nil
		},
	}

	svc := NewCheckoutService(carts, auth, backend, provider, journal, testBus(), publicURL, testLogger())

	result, err := svc.Start(context.Background(), "s1", ports.StartCheckoutInput{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if result.OrderNumber != "ORD-9" || result.RedirectURL == "" {
		t.Fatalf("unexpected result: %+v", result)
	}

	if len(journal.pending) != 1 || journal.pending[0].OrderNumber != "ORD-9" {
		t.Fatalf("expected a pending journal row for ORD-9")
	}

	// The cart survives until the payment is confirmed.
	cart, _ := carts.Get(context.Background(), "s1")
	if len(cart) != 2 {
		t.Fatalf("cart must stay intact after start, got %d items", len(cart))
	}
}

func TestCheckoutStart_JournalFailureDoesNotFailCheckout(t *testing.T) {
	carts := newMemCartStore()
	auth := newMemAuthStore()
	seedLogin(t, auth, "s1")
	seedCart(t, carts, "s1", domain.CartItem{ProductID: 1, Name: "Keyboard", Price: 10, Quantity: 1})

	journal := newMemJournal()
	journal.recordFn = func(ctx context.Context, rec *domain.PaymentRecord) error {
		return errors.New("mongo down")
	}

	backend := &stubBackend{
		createOrderFn: func(ctx context.Context, token string, input ports.CreateOrderInput) (*ports.OrderCreated, error) {
			return &ports.OrderCreated{OrderNumber: "ORD-1"}, nil
		},
	}
	provider := &stubProvider{
		prepareFn: func(ctx context.Context, input ports.PreparePaymentInput) (*ports.PaymentSession, error) {
			return &ports.PaymentSession{Provider: "redirect", RedirectURL: "https://pay.example/1"}, nil
		},
	}

	svc := NewCheckoutService(carts, auth, backend, provider, journal, testBus(), publicURL, testLogger())

	if _, err := svc.Start(context.Background(), "s1", ports.StartCheckoutInput{}); err != nil {
		t.Fatalf("a journal outage must not block checkout: %v", err)
	}
}

func TestCheckoutConfirm_SuccessClearsCart(t *testing.T) {
	carts := newMemCartStore()
	auth := newMemAuthStore()
	journal := newMemJournal()
	seedLogin(t, auth, "s1")
	seedCart(t, carts, "s1", domain.CartItem{ProductID: 1, Name: "Keyboard", Price: 10, Quantity: 1})

	provider := &stubProvider{
		confirmFn: func(ctx context.Context, input ports.ConfirmPaymentInput) (*ports.PaymentConfirmation, error) {
			return &ports.PaymentConfirmation{OrderNumber: input.OrderNumber, Amount: input.Amount}, nil
		},
	}
	events := testBus()
	svc := NewCheckoutService(carts, auth, &stubBackend{}, provider, journal, events, publicURL, testLogger())

	result, err := svc.Confirm(context.Background(), "s1", ports.ConfirmCheckoutInput{
		PaymentKey:  "pk-1",
		OrderNumber: "ORD-1",
		Amount:      10,
	})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if result.OrderNumber != "ORD-1" || result.Amount != 10 {
		t.Fatalf("unexpected result: %+v", result)
	}

	events.WaitAsync()

	cart, _ := carts.Get(context.Background(), "s1")
	if len(cart) != 0 {
		t.Fatalf("cart must be cleared after a confirmed payment")
	}
	if len(journal.paid) != 1 || journal.paid[0] != "ORD-1" {
		t.Fatalf("journal row must be marked paid")
	}
}

func TestCheckoutConfirm_FailureKeepsCart(t *testing.T) {
	carts := newMemCartStore()
	auth := newMemAuthStore()
	journal := newMemJournal()
	seedLogin(t, auth, "s1")
	seedCart(t, carts, "s1", domain.CartItem{ProductID: 1, Name: "Keyboard", Price: 10, Quantity: 1})

	provider := &stubProvider{
		confirmFn: func(ctx context.Context, input ports.ConfirmPaymentInput) (*ports.PaymentConfirmation, error) {
			return nil, domain.ErrPaymentRejected
		},
	}
	svc := NewCheckoutService(carts, auth, &stubBackend{}, provider, journal, testBus(), publicURL, testLogger())

	_, err := svc.Confirm(context.Background(), "s1", ports.ConfirmCheckoutInput{
		PaymentKey:  "pk-1",
		OrderNumber: "ORD-1",
		Amount:      10,
	})
	if !errors.Is(err, domain.ErrPaymentRejected) {
		t.Fatalf("expected ErrPaymentRejected, got %v", err)
	}

	cart, _ := carts.Get(context.Background(), "s1")
	if len(cart) != 1 {
		t.Fatalf("cart must survive a failed confirmation")
	}
	if len(journal.failed) != 1 {
		t.Fatalf("failed confirmation must be journaled")
	}
	if len(journal.paid) != 0 {
		t.Fatalf("nothing may be marked paid on failure")
	}
}

func TestCheckoutConfirm_MissingParams(t *testing.T) {
	svc := NewCheckoutService(newMemCartStore(), newMemAuthStore(), &stubBackend{}, &stubProvider{}, newMemJournal(), testBus(), publicURL, testLogger())

	cases := []ports.ConfirmCheckoutInput{
		{OrderNumber: "", PaymentKey: "pk", Amount: 10},
		{OrderNumber: "ORD-1", PaymentKey: "", Amount: 10},
		{OrderNumber: "ORD-1", PaymentKey: "pk", Amount: 0},
	}
	for _, input := range cases {
		if _, err := svc.Confirm(context.Background(), "s1", input); !errors.Is(err, domain.ErrInvalidPaymentParams) {
			t.Fatalf("expected ErrInvalidPaymentParams for %+v, got %v", input, err)
		}
	}
}

func TestCheckoutRecordFailure_NoOrderNumberIsNoop(t *testing.T) {
	journal := newMemJournal()
	svc := NewCheckoutService(newMemCartStore(), newMemAuthStore(), &stubBackend{}, &stubProvider{}, journal, testBus(), publicURL, testLogger())

	svc.RecordFailure(context.Background(), "", "PAY_CANCEL", "user cancelled")
	if len(journal.failed) != 0 {
		t.Fatalf("a fail return without an order number must not journal")
	}

	svc.RecordFailure(context.Background(), "ORD-1", "PAY_CANCEL", "user cancelled")
	if len(journal.failed) != 1 {
		t.Fatalf("fail return must journal when an order number is present")
	}
}
