package redis

import "testing"

func TestDecodeCart_MalformedReadsAsEmpty(t *testing.T) {
	cases := [][]byte{
		[]byte(`not json`),
		[]byte(`{"items":"wrong shape"}`),
		[]byte(``),
	}
	for _, raw := range cases {
		if cart := decodeCart(raw); len(cart) != 0 {
			t.Fatalf("malformed payload %q must read as empty, got %+v", raw, cart)
		}
	}
}

func TestDecodeCart_DropsNonPositiveQuantities(t *testing.T) {
	raw := []byte(`[
		{"productId":1,"name":"Keyboard","price":49.99,"quantity":2},
		{"productId":2,"name":"Mouse","price":19.99,"quantity":0},
		{"productId":3,"name":"Monitor","price":199.99,"quantity":-1}
	]`)

	cart := decodeCart(raw)
	if len(cart) != 1 {
		t.Fatalf("expected 1 valid line, got %d", len(cart))
	}
	if cart[0].ProductID != 1 || cart[0].Quantity != 2 {
		t.Fatalf("unexpected line: %+v", cart[0])
	}
}

func TestDecodeAuth_BothOrNeither(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"malformed", `not json`},
		{"token only", `{"token":"t-1"}`},
		{"user only", `{"user":{"id":42,"email":"a@b.c"}}`},
		{"empty object", `{}`},
	}
	for _, tc := range cases {
		if auth := decodeAuth([]byte(tc.raw)); auth != nil {
			t.Fatalf("%s: expected nil, got %+v", tc.name, auth)
		}
	}
}

func TestDecodeAuth_CompleteRecord(t *testing.T) {
	raw := []byte(`{"token":"t-1","user":{"id":42,"email":"alice@example.com","name":"Alice","role":"CUSTOMER"}}`)

	auth := decodeAuth(raw)
	if auth == nil {
		t.Fatalf("expected a valid record")
	}
	if auth.Token != "t-1" || auth.User.ID != 42 {
		t.Fatalf("unexpected record: %+v", auth)
	}
}

func TestStoreKeys_AreSessionScoped(t *testing.T) {
	cs := &CartStore{}
	as := &AuthStore{}

	if got := cs.key("s1"); got != "cart:s1" {
		t.Fatalf("unexpected cart key %q", got)
	}
	if got := as.key("s1"); got != "auth:s1" {
		t.Fatalf("unexpected auth key %q", got)
	}
}
