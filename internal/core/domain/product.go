package domain

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// Price is a monetary amount that arrives as either a JSON number or a
// decimal string (the backend serializes BigDecimal both ways). It is
// normalized to a float64 once, at the deserialization boundary.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// Product is a catalog entry as served by the backend.
type Product struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         Price  `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// Stock status thresholds mirror the storefront's badge rules.
const (
	StockSoldOut = "SOLD_OUT"
	StockLow     = "LOW_STOCK"
	StockIn      = "IN_STOCK"

	lowStockThreshold = 10
)

// StockStatus classifies the product's availability for display.
func (p Product) StockStatus() string {
	switch {
	case p.StockQuantity <= 0:
		return StockSoldOut
	case p.StockQuantity < lowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}
