package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
)

const collectionPayments = "payments"

// opTimeout bounds individual journal reads and writes, independently of
// the connection timeout.
const opTimeout = 5 * time.Second

// PaymentJournal stores one document per payment attempt, keyed by order
// number. It is an audit trail, not a source of truth: the backend owns
// order state.
type PaymentJournal struct {
	col *mongo.Collection
}

func NewPaymentJournal(db *mongo.Database) *PaymentJournal {
	return &PaymentJournal{col: db.Collection(collectionPayments)}
}

// RecordPending inserts the journal row for a freshly prepared payment.
func (j *PaymentJournal) RecordPending(ctx context.Context, rec *domain.PaymentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	stampPending(rec, time.Now().UTC())

	_, err := j.col.InsertOne(ctx, rec)
	return err
}

// stampPending normalizes a record before insertion: a missing CreatedAt is
// filled in, UpdatedAt always advances, and the status starts at pending.
func stampPending(rec *domain.PaymentRecord, now time.Time) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	rec.Status = domain.PaymentPending
}

// MarkPaid transitions the newest journal row for the order to paid.
func (j *PaymentJournal) MarkPaid(ctx context.Context, orderNumber string, payload []byte) error {
	return j.setStatus(ctx, orderNumber, domain.PaymentPaid, payload)
}

// MarkFailed transitions the newest journal row for the order to failed.
func (j *PaymentJournal) MarkFailed(ctx context.Context, orderNumber string, payload []byte) error {
	return j.setStatus(ctx, orderNumber, domain.PaymentFailed, payload)
}

func (j *PaymentJournal) setStatus(ctx context.Context, orderNumber string, status domain.PaymentStatus, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := j.col.UpdateOne(ctx,
		bson.M{"order_number": orderNumber},
		bson.M{"$set": statusUpdate(status, payload, time.Now().UTC())},
	)
	return err
}

// statusUpdate builds the $set document for a status transition. An empty
// payload is omitted so a bare failure note never blanks a stored callback.
func statusUpdate(status domain.PaymentStatus, payload []byte, now time.Time) bson.M {
	update := bson.M{
		"status":     status,
		"updated_at": now,
	}
	if len(payload) > 0 {
		update["payload"] = payload
	}
	return update
}

// FindByOrderNumber retrieves the journal row for an order.
func (j *PaymentJournal) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.PaymentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var rec domain.PaymentRecord
	err := j.col.FindOne(ctx, bson.M{"order_number": orderNumber}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// EnsureIndexes creates the indexes the journal queries depend on.
func (j *PaymentJournal) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "order_number", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := j.col.Indexes().CreateMany(ctx, indexes)
	return err
}
