package domain

import (
	"fmt"
	"math"
)

// CartItem is one product-quantity line in a cart. The cart holds at most
// one item per ProductID and never an item with Quantity < 1.
type CartItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// Cart is an ordered collection of line items keyed by product ID. All
// mutations are value-semantic: they return the resulting cart and leave the
// receiver's backing array untouched, so callers persist exactly what they
// get back.
type Cart []CartItem

// Add merges the item into the cart. An existing product has its quantity
// incremented; a new product is appended. Items with a non-positive quantity
// are never stored.
func (c Cart) Add(item CartItem) Cart {
	if item.Quantity <= 0 {
		return c
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ProductID == item.ProductID {
			out[i].Quantity += item.Quantity
			return out
		}
	}
	return append(out, item)
}

// Remove drops the line for the given product, if present.
func (c Cart) Remove(productID int64) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// SetQuantity replaces the quantity for a product. A quantity of zero or
// below removes the line entirely. Unknown products are left alone.
func (c Cart) SetQuantity(productID int64, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
		}
	}
	return out
}

// ItemCount is the sum of all line quantities.
func (c Cart) ItemCount() int {
	n := 0
	for _, item := range c {
		n += item.Quantity
	}
	return n
}

// Total is the sum of price x quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// RoundedTotal is the cart total rounded to two decimals, the amount sent to
// the payment provider.
func (c Cart) RoundedTotal() float64 {
	return math.Round(c.Total()*100) / 100
}

// OrderName derives the display name an order is created under: the sole
// item's name, or the first item's name plus a count of the rest.
func (c Cart) OrderName() string {
	switch len(c) {
	case 0:
		return ""
	case 1:
		return c[0].Name
	default:
		return fmt.Sprintf("%s and %d more", c[0].Name, len(c)-1)
	}
}
