package handler

import (
	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Name            string `json:"name"            validate:"required"`
}

type authResponse struct {
	User *domain.User `json:"user"`
}

// --- Cart ---

type addCartItemRequest struct {
	ProductID int64   `json:"productId" validate:"required,gt=0"`
	Name      string  `json:"name"      validate:"required"`
	Price     float64 `json:"price"     validate:"gte=0"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartItemResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

type cartResponse struct {
	Items     []cartItemResponse `json:"items"`
	ItemCount int                `json:"itemCount"`
	Total     float64            `json:"total"`
}

func toCartResponse(view *ports.CartView) cartResponse {
	items := make([]cartItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, cartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}
	return cartResponse{
		Items:     items,
		ItemCount: view.ItemCount,
		Total:     view.Total,
	}
}

// --- Catalog ---

type productResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	StockStatus   string  `json:"stockStatus"`
	ImageURL      string  `json:"imageUrl,omitempty"`
}

func toProductResponse(p *ports.ProductView) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		StockStatus:   p.StockStatus,
		ImageURL:      p.ImageURL,
	}
}

// --- Checkout ---

type startCheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	CustomerPhone   string `json:"customerPhone"`
}

type startCheckoutResponse struct {
	OrderNumber string  `json:"orderNumber"`
	OrderName   string  `json:"orderName"`
	Amount      float64 `json:"amount"`
	Provider    string  `json:"provider"`
	RedirectURL string  `json:"redirectUrl,omitempty"`
	WidgetToken string  `json:"widgetToken,omitempty"`
}

type confirmCheckoutResponse struct {
	OrderNumber string  `json:"orderNumber"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

type checkoutFailResponse struct {
	OrderNumber string `json:"orderNumber,omitempty"`
	Code        string `json:"code,omitempty"`
	Message     string `json:"message"`
}

// --- Admin ---

type createProductRequest struct {
	Name          string  `json:"name"          validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"         validate:"required,gt=0"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	ImageURL      string  `json:"imageUrl"`
}
