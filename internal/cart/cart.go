// Package cart holds the products a session has picked for purchase.
package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"MiniShop/internal/catalog"
)

// Cart is an ordered list of products. The same product may appear more
// than once. It is not safe for concurrent use.
type Cart struct {
	products []catalog.Product
}

func New() *Cart {
	return &Cart{products: []catalog.Product{}}
}

// Add appends p to the end of the cart.
func (c *Cart) Add(p catalog.Product) {
	c.products = append(c.products, p)
}

// Remove drops the first entry equal to p and reports whether one was found.
func (c *Cart) Remove(p catalog.Product) bool {
	for i, it := range c.products {
		if it.Equal(p) {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// Total is the sum of all entry prices, zero for an empty cart.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.products {
		total = total.Add(p.Price)
	}
	return total
}

func (c *Cart) Clear() {
	c.products = c.products[:0]
}

func (c *Cart) Len() int { return len(c.products) }

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []catalog.Product {
	out := make([]catalog.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Cart) String() string {
	var b strings.Builder
	b.WriteString("Cart{products=[")
	for i, p := range c.products {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("]}")
	return b.String()
}
