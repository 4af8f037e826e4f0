// Package backend implements the HTTP client for the remote commerce API.
// It owns the three cross-cutting contracts of that boundary: base-URL
// resolution (exactly one /api suffix), uniform JSON + bearer headers, and
// normalization of non-success responses into *domain.APIError values.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	"github.com/rs/zerolog"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// DefaultBaseURL is used when no backend URL is configured.
const DefaultBaseURL = "http://localhost:8080/api"

const defaultTimeout = 10 * time.Second

// Client talks to the commerce backend. Safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	log     zerolog.Logger
}

// NewClient builds a Client for the given base URL. The URL may be supplied
// with or without the /api suffix; it is normalized to carry it exactly once.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: NormalizeBaseURL(baseURL),
		timeout: timeout,
		log:     log,
	}
}

// NormalizeBaseURL trims trailing slashes and appends /api unless the
// configured value already ends with it.
func NormalizeBaseURL(raw string) string {
	if raw == "" {
		return DefaultBaseURL
	}
	raw = strings.TrimRight(raw, "/")
	if !strings.HasSuffix(raw, "/api") {
		raw += "/api"
	}
	return raw
}

var _ ports.BackendClient = (*Client)(nil)

// errorBody is the shape probed for a human-readable message on non-success
// responses. Backends are inconsistent about the field name.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one request and decodes the response into out (when non-nil).
// Non-2xx statuses become *domain.APIError; transport failures wrap
// domain.ErrBackendUnavailable.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	url := c.baseURL + path

	var df *dataflow.DataFlow
	switch method {
	case http.MethodGet:
		df = gout.GET(url)
	case http.MethodPost:
		df = gout.POST(url)
	case http.MethodDelete:
		df = gout.DELETE(url)
	default:
		return fmt.Errorf("backend: unsupported method %s", method)
	}

	headers := gout.H{"Content-Type": "application/json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	var (
		code int
		raw  []byte
	)
	df = df.WithContext(ctx).
		SetTimeout(c.timeout).
		SetHeader(headers).
		BindBody(&raw).
		Code(&code)
	if body != nil {
		df = df.SetJSON(body)
	}

	if err := df.Do(); err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	if code >= http.StatusBadRequest {
		return c.apiError(code, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("backend: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// apiError extracts a message field from a JSON error body, falling back to
// a generic message carrying the numeric status.
func (c *Client) apiError(status int, body []byte) error {
	var eb errorBody
	msg := ""
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			msg = eb.Message
		} else if eb.Error != "" {
			msg = eb.Error
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed (%d)", status)
	}
	return &domain.APIError{Status: status, Message: msg}
}

// --- Catalog ---

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &p)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// --- Auth ---

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Auth, error) {
	req := map[string]string{"email": email, "password": password}
	var auth domain.Auth
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *Client) Signup(ctx context.Context, input ports.SignupInput) (*domain.Auth, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	req := map[string]string{
		"email":    input.Email,
		"password": input.Password,
		"name":     input.Name,
		"role":     role,
	}
	var auth domain.Auth
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// --- Orders ---

func (c *Client) CreateOrder(ctx context.Context, token string, input ports.CreateOrderInput) (*ports.OrderCreated, error) {
	var created ports.OrderCreated
	if err := c.do(ctx, http.MethodPost, "/orders", token, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error) {
	var o domain.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), token, nil, &o)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (c *Client) ListUserOrders(ctx context.Context, token string, userID int64) ([]domain.Order, error) {
	var orders []domain.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/user/%d", userID), token, nil, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// --- Payments (redirect variant) ---

func (c *Client) PreparePayment(ctx context.Context, token string, req ports.PreparePaymentRequest) (*ports.PreparedPayment, error) {
	var prepared ports.PreparedPayment
	if err := c.do(ctx, http.MethodPost, "/payments/prepare", token, req, &prepared); err != nil {
		return nil, err
	}
	return &prepared, nil
}

func (c *Client) ConfirmPayment(ctx context.Context, channel string, req ports.ConfirmPaymentRequest) error {
	return c.do(ctx, http.MethodPost, "/payments/confirm/"+channel, "", req, nil)
}

// --- Admin ---

func (c *Client) AdminListProducts(ctx context.Context, token string) ([]domain.Product, error) {
	var products []domain.Product
	err := c.do(ctx, http.MethodGet, "/admin/products", token, nil, &products)
	if err != nil {
		if isStatus(err, http.StatusForbidden) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	return products, nil
}

func (c *Client) AdminCreateProduct(ctx context.Context, token string, input ports.CreateProductInput) (*domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, http.MethodPost, "/admin/products", token, input, &p)
	if err != nil {
		if isStatus(err, http.StatusForbidden) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	return &p, nil
}

func (c *Client) AdminDeleteProduct(ctx context.Context, token string, id int64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/products/%d", id), token, nil, nil)
	if err != nil {
		if isStatus(err, http.StatusForbidden) {
			return domain.ErrForbidden
		}
		return err
	}
	return nil
}

func isStatus(err error, status int) bool {
	var apiErr *domain.APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
