package domain

import "testing"

func TestCartAdd_MergesSameProduct(t *testing.T) {
	cart := Cart{}.
		Add(CartItem{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 1}).
		Add(CartItem{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 2})

	if len(cart) != 1 {
		t.Fatalf("expected one line, got %d", len(cart))
	}
	if cart[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", cart[0].Quantity)
	}
}

func TestCartAdd_IgnoresNonPositiveQuantity(t *testing.T) {
	cart := Cart{}.
		Add(CartItem{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 0}).
		Add(CartItem{ProductID: 2, Name: "Mouse", Price: 19.99, Quantity: -1})

	if len(cart) != 0 {
		t.Fatalf("non-positive quantities must never be stored, got %d lines", len(cart))
	}
}

func TestCartAdd_DoesNotMutateReceiver(t *testing.T) {
	original := Cart{{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 1}}
	_ = original.Add(CartItem{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 5})

	if original[0].Quantity != 1 {
		t.Fatalf("Add must not mutate the receiver, quantity became %d", original[0].Quantity)
	}
}

func TestCartSetQuantity(t *testing.T) {
	cart := Cart{
		{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 1},
		{ProductID: 2, Name: "Mouse", Price: 19.99, Quantity: 2},
	}

	updated := cart.SetQuantity(2, 5)
	if updated[1].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", updated[1].Quantity)
	}

	// Zero or below removes the line.
	removed := cart.SetQuantity(2, 0)
	if len(removed) != 1 || removed[0].ProductID != 1 {
		t.Fatalf("quantity 0 must remove the line: %+v", removed)
	}

	negative := cart.SetQuantity(1, -3)
	if len(negative) != 1 || negative[0].ProductID != 2 {
		t.Fatalf("negative quantity must remove the line: %+v", negative)
	}

	// Unknown products are left alone.
	unknown := cart.SetQuantity(99, 4)
	if len(unknown) != 2 {
		t.Fatalf("unknown product must not change the cart: %+v", unknown)
	}
}

func TestCartRemove(t *testing.T) {
	cart := Cart{
		{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 1},
		{ProductID: 2, Name: "Mouse", Price: 19.99, Quantity: 2},
	}

	updated := cart.Remove(1)
	if len(updated) != 1 || updated[0].ProductID != 2 {
		t.Fatalf("unexpected cart after remove: %+v", updated)
	}

	// Removing an absent product is a no-op.
	same := cart.Remove(99)
	if len(same) != 2 {
		t.Fatalf("removing absent product must be a no-op: %+v", same)
	}
}

func TestCartAggregates(t *testing.T) {
	cart := Cart{
		{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 2},
		{ProductID: 2, Name: "Mouse", Price: 19.99, Quantity: 1},
	}

	if got := cart.ItemCount(); got != 3 {
		t.Fatalf("expected item count 3, got %d", got)
	}
	if got, want := cart.Total(), 49.99*2+19.99; got != want {
		t.Fatalf("expected total %v, got %v", want, got)
	}
}

func TestCartRoundedTotal(t *testing.T) {
	cart := Cart{
		{ProductID: 1, Name: "Widget", Price: 0.1, Quantity: 3},
	}

	// 0.1*3 accumulates float error; the payment amount must not.
	if got := cart.RoundedTotal(); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
}

func TestCartOrderName(t *testing.T) {
	empty := Cart{}
	if got := empty.OrderName(); got != "" {
		t.Fatalf("empty cart order name must be empty, got %q", got)
	}

	single := Cart{{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 2}}
	if got := single.OrderName(); got != "Keyboard" {
		t.Fatalf("expected %q, got %q", "Keyboard", got)
	}

	many := Cart{
		{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 1},
		{ProductID: 2, Name: "Mouse", Price: 19.99, Quantity: 1},
		{ProductID: 3, Name: "Monitor", Price: 199.99, Quantity: 1},
	}
	if got := many.OrderName(); got != "Keyboard and 2 more" {
		t.Fatalf("expected %q, got %q", "Keyboard and 2 more", got)
	}
}
