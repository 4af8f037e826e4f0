package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

type stubCartService struct {
	getFn    func(ctx context.Context, sessionID string) (*ports.CartView, error)
	addFn    func(ctx context.Context, sessionID string, input ports.AddCartItemInput) (*ports.CartView, error)
	setQtyFn func(ctx context.Context, sessionID string, productID int64, quantity int) (*ports.CartView, error)
	removeFn func(ctx context.Context, sessionID string, productID int64) (*ports.CartView, error)
	clearFn  func(ctx context.Context, sessionID string) error
}

func (s *stubCartService) Get(ctx context.Context, sessionID string) (*ports.CartView, error) {
	return s.getFn(ctx, sessionID)
}

func (s *stubCartService) Add(ctx context.Context, sessionID string, input ports.AddCartItemInput) (*ports.CartView, error) {
	return s.addFn(ctx, sessionID, input)
}

func (s *stubCartService) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*ports.CartView, error) {
	return s.setQtyFn(ctx, sessionID, productID, quantity)
}

func (s *stubCartService) Remove(ctx context.Context, sessionID string, productID int64) (*ports.CartView, error) {
	return s.removeFn(ctx, sessionID, productID)
}

func (s *stubCartService) Clear(ctx context.Context, sessionID string) error {
	return s.clearFn(ctx, sessionID)
}

func TestCartHandler_Get(t *testing.T) {
	stub := &stubCartService{
		getFn: func(ctx context.Context, sessionID string) (*ports.CartView, error) {
			return &ports.CartView{
				Items: []domain.CartItem{
					{ProductID: 1, Name: "Keyboard", Price: 49.99, Quantity: 2},
				},
				ItemCount: 2,
				Total:     99.98,
			}, nil
		},
	}
	h := NewCartHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/cart", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ItemCount != 2 || resp.Total != 99.98 || len(resp.Items) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCartHandler_AddItem(t *testing.T) {
	stub := &stubCartService{
		addFn: func(ctx context.Context, sessionID string, input ports.AddCartItemInput) (*ports.CartView, error) {
			if input.ProductID != 1 || input.Quantity != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.CartView{ItemCount: 2, Total: 99.98}, nil
		},
	}
	h := NewCartHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/cart/items",
		`{"productId":1,"name":"Keyboard","price":49.99,"quantity":2}`)
	if err := h.AddItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_AddItem_MissingProduct(t *testing.T) {
	h := NewCartHandler(&stubCartService{})

	c, _ := newTestContext(t, http.MethodPost, "/cart/items", `{"name":"Keyboard","price":49.99}`)
	err := h.AddItem(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCartHandler_SetQuantity(t *testing.T) {
	stub := &stubCartService{
		setQtyFn: func(ctx context.Context, sessionID string, productID int64, quantity int) (*ports.CartView, error) {
			if productID != 7 || quantity != 0 {
				t.Fatalf("unexpected args: %d %d", productID, quantity)
			}
			return &ports.CartView{}, nil
		},
	}
	h := NewCartHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/cart/items/7", `{"quantity":0}`)
	c.SetParamNames("productId")
	c.SetParamValues("7")
	if err := h.SetQuantity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_RemoveItem_BadID(t *testing.T) {
	h := NewCartHandler(&stubCartService{})

	c, _ := newTestContext(t, http.MethodDelete, "/cart/items/abc", "")
	c.SetParamNames("productId")
	c.SetParamValues("abc")
	err := h.RemoveItem(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCartHandler_Clear(t *testing.T) {
	cleared := false
	stub := &stubCartService{
		clearFn: func(ctx context.Context, sessionID string) error {
			cleared = true
			return nil
		},
	}
	h := NewCartHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/cart", "")
	if err := h.Clear(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || !cleared {
		t.Fatalf("expected 204 with cleared cart, got %d (cleared=%v)", rec.Code, cleared)
	}
}
