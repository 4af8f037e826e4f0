package domain

import "time"

// OrderStatus is the backend-driven lifecycle state of an order. Orders are
// read-only from the gateway's perspective once created; status changes come
// from the backend and its payment provider.
type OrderStatus string

const (
	OrderPending       OrderStatus = "PENDING"
	OrderPaymentFailed OrderStatus = "PAYMENT_FAILED"
	OrderPaid          OrderStatus = "PAID"
	OrderPreparing     OrderStatus = "PREPARING"
	OrderShipped       OrderStatus = "SHIPPED"
	OrderDelivered     OrderStatus = "DELIVERED"
	OrderCancelled     OrderStatus = "CANCELLED"
	OrderRefunded      OrderStatus = "REFUNDED"
)

// OrderItem is one line of an order as returned by the backend.
type OrderItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is the backend's order record.
type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"orderNumber,omitempty"`
	UserID          int64       `json:"userId"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"totalAmount"`
	ShippingAddress string      `json:"shippingAddress"`
	CreatedAt       *time.Time  `json:"createdAt,omitempty"`
	Items           []OrderItem `json:"items"`
}
