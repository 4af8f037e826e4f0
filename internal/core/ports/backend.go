package ports

import (
	"context"

	"github.com/monoshop/storefront-gateway/internal/core/domain"
)

// SignupInput carries a new account registration to the backend.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// CreateOrderItem is one cart line submitted at order creation.
type CreateOrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderInput is the order-creation payload posted to the backend.
type CreateOrderInput struct {
	UserID          int64             `json:"userId"`
	Items           []CreateOrderItem `json:"items"`
	ShippingAddress string            `json:"shippingAddress"`
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerPhone   string            `json:"customerPhone"`
}

// OrderCreated is the subset of the backend's order-creation response the
// checkout flow needs.
type OrderCreated struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`
}

// PreparePaymentRequest is posted to the backend's payment-preparation
// endpoint (redirect provider variant).
type PreparePaymentRequest struct {
	OrderID    string  `json:"orderId"`
	Amount     float64 `json:"amount"`
	OrderName  string  `json:"orderName"`
	SuccessURL string  `json:"successUrl"`
	FailURL    string  `json:"failUrl"`
}

// PreparedPayment is the backend's payment-preparation response.
type PreparedPayment struct {
	PaymentURL string `json:"paymentUrl"`
}

// ConfirmPaymentRequest is posted to the backend's confirmation endpoint
// after the provider redirects back to the success URL.
type ConfirmPaymentRequest struct {
	PaymentKey string  `json:"paymentKey"`
	OrderID    string  `json:"orderId"`
	Amount     float64 `json:"amount"`
}

// CreateProductInput is the admin product-creation payload.
type CreateProductInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	ImageURL      string  `json:"imageUrl,omitempty"`
}

// BackendClient is the gateway's view of the remote commerce API. Every call
// is context-bound and returns either a decoded result, a *domain.APIError
// relaying the backend's status and message, or a transport error wrapping
// domain.ErrBackendUnavailable.
type BackendClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)

	Login(ctx context.Context, email, password string) (*domain.Auth, error)
	Signup(ctx context.Context, input SignupInput) (*domain.Auth, error)

	CreateOrder(ctx context.Context, token string, input CreateOrderInput) (*OrderCreated, error)
	GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error)
	ListUserOrders(ctx context.Context, token string, userID int64) ([]domain.Order, error)

	PreparePayment(ctx context.Context, token string, req PreparePaymentRequest) (*PreparedPayment, error)
	ConfirmPayment(ctx context.Context, channel string, req ConfirmPaymentRequest) error

	AdminListProducts(ctx context.Context, token string) ([]domain.Product, error)
	AdminCreateProduct(ctx context.Context, token string, input CreateProductInput) (*domain.Product, error)
	AdminDeleteProduct(ctx context.Context, token string, id int64) error
}
