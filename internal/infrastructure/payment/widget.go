package payment

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// ProviderWidget names the embedded-widget variant built on Midtrans Snap.
const ProviderWidget = "widget"

// WidgetProvider creates Snap transactions and verifies their signed
// confirmation callbacks. The widget itself renders client-side from the
// returned token; this provider never redirects on its own.
type WidgetProvider struct {
	client    *snap.Client
	serverKey string
	log       zerolog.Logger
}

// NewWidgetProvider builds a Snap client against the sandbox or production
// environment.
func NewWidgetProvider(serverKey string, production bool, log zerolog.Logger) *WidgetProvider {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(serverKey, env)

	return &WidgetProvider{client: &client, serverKey: serverKey, log: log}
}

func (p *WidgetProvider) Name() string { return ProviderWidget }

// Prepare opens a Snap transaction for the rounded order total. The order
// number doubles as the provider-side transaction ID so confirmation
// callbacks map straight back.
func (p *WidgetProvider) Prepare(ctx context.Context, input ports.PreparePaymentInput) (*ports.PaymentSession, error) {
	_ = ctx // the Snap SDK does not take a context

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  input.OrderNumber,
			GrossAmt: int64(math.Round(input.Amount)),
		},
	}

	resp, snapErr := p.client.CreateTransaction(req)
	if snapErr != nil {
		return nil, fmt.Errorf("snap transaction: %w", snapErr)
	}

	p.log.Info().
		Str("order_number", input.OrderNumber).
		Float64("amount", input.Amount).
		Msg("snap transaction created")

	return &ports.PaymentSession{
		Provider:    ProviderWidget,
		RedirectURL: resp.RedirectURL,
		WidgetToken: resp.Token,
		ExternalRef: input.OrderNumber,
	}, nil
}

// Confirm verifies the callback signature and maps the transaction status.
// Anything other than a settled or accepted capture is a rejection.
func (p *WidgetProvider) Confirm(ctx context.Context, input ports.ConfirmPaymentInput) (*ports.PaymentConfirmation, error) {
	_ = ctx

	statusCode := input.Params["status_code"]
	grossAmount := input.Params["gross_amount"]
	signature := input.Params["signature_key"]
	if statusCode == "" || grossAmount == "" || signature == "" {
		return nil, domain.ErrInvalidPaymentParams
	}

	if !VerifySignature(input.OrderNumber, statusCode, grossAmount, signature, p.serverKey) {
		return nil, fmt.Errorf("%w: invalid signature", domain.ErrPaymentRejected)
	}

	status := input.Params["transaction_status"]
	fraud := input.Params["fraud_status"]
	switch status {
	case "settlement":
		// fall through to success
	case "capture":
		if fraud != "accept" {
			return nil, fmt.Errorf("%w: capture flagged (%s)", domain.ErrPaymentRejected, fraud)
		}
	default: // expire, cancel, deny, pending, ...
		return nil, fmt.Errorf("%w: transaction %s", domain.ErrPaymentRejected, status)
	}

	// The confirmed amount comes from the signed gross_amount field, not the
	// caller's query parameter.
	amount, err := cast.ToFloat64E(grossAmount)
	if err != nil {
		return nil, domain.ErrInvalidPaymentParams
	}

	return &ports.PaymentConfirmation{
		OrderNumber: input.OrderNumber,
		Amount:      amount,
	}, nil
}

// VerifySignature checks the SHA-512 signature Midtrans attaches to status
// callbacks: hex(sha512(orderID + statusCode + grossAmount + serverKey)).
func VerifySignature(orderID, statusCode, grossAmount, signature, serverKey string) bool {
	raw := orderID + statusCode + grossAmount + serverKey
	sum := sha512.Sum512([]byte(raw))
	return hex.EncodeToString(sum[:]) == signature
}
