package domain

import "time"

// PaymentStatus is the local journal state of a payment attempt.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentRecord is one row of the local payment journal. The journal is the
// gateway's own audit trail of prepare/confirm attempts; the backend remains
// the source of truth for order state.
type PaymentRecord struct {
	OrderNumber string        `bson:"order_number"`
	Provider    string        `bson:"provider"`
	ExternalRef string        `bson:"external_ref,omitempty"`
	Amount      float64       `bson:"amount"`
	OrderName   string        `bson:"order_name"`
	Status      PaymentStatus `bson:"status"`
	Payload     []byte        `bson:"payload,omitempty"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}
