// Package platform binds the catalog, cart and order store to the four
// storefront operations and runs the interactive command loop.
package platform

import (
	"context"
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"MiniShop/internal/cart"
	"MiniShop/internal/catalog"
	"MiniShop/internal/order"
)

const (
	msgNotFound    = "Product not found."
	msgEmptyCart   = "Your cart is empty."
	msgPurchasedFn = "Purchased products for a total of $%s"
	msgAddedFn     = "%s added to cart."
)

// Session is the state of one shopper from startup to exit. It is driven by
// a single goroutine; only Catalog and Orders may be read concurrently.
type Session struct {
	Catalog catalog.Store
	Cart    *cart.Cart
	Orders  order.Store
	Log     *zap.Logger
	Metrics *Metrics
	Out     io.Writer
}

// NewSession returns a session over a freshly seeded catalog and an empty cart.
func NewSession(out io.Writer) *Session {
	return &Session{
		Catalog: catalog.NewStore(),
		Cart:    cart.New(),
		Orders:  order.NewStore(),
		Out:     out,
	}
}

// Search prints every product whose name contains keyword, one per line.
func (s *Session) Search(ctx context.Context, keyword string) ([]catalog.Product, error) {
	products, err := s.Catalog.Search(ctx, keyword)
	if err != nil {
		return nil, errors.Wrap(err, "search catalog")
	}
	for _, p := range products {
		s.println(p.String())
	}
	s.logger().Debug("search", zap.String("keyword", keyword), zap.Int("matches", len(products)))
	return products, nil
}

// AddToCart appends the product with id to the cart. A missing id is
// reported to the shopper and leaves the cart unchanged.
func (s *Session) AddToCart(ctx context.Context, id string) (catalog.Product, bool, error) {
	p, ok, err := s.Catalog.Get(ctx, id)
	if err != nil {
		return catalog.Product{}, false, errors.Wrap(err, "lookup product")
	}
	if !ok {
		s.println(msgNotFound)
		s.logger().Info("add to cart: unknown product", zap.String("product_id", id))
		return catalog.Product{}, false, nil
	}

	s.Cart.Add(p)
	s.Metrics.cartSize(s.Cart.Len())
	s.println(fmt.Sprintf(msgAddedFn, p.Name))
	s.logger().Info("add to cart", zap.String("product_id", id), zap.Int("cart_items", s.Cart.Len()))
	return p, true, nil
}

// Checkout records the cart as an order and empties it. With nothing to pay
// for it only reports the empty cart.
func (s *Session) Checkout(ctx context.Context) (order.Order, bool, error) {
	total := s.Cart.Total()
	if !total.IsPositive() {
		s.println(msgEmptyCart)
		return order.Order{}, false, nil
	}

	o := order.New(s.Cart.Items(), total)
	if err := s.Orders.Create(ctx, o); err != nil {
		return order.Order{}, false, errors.Wrap(err, "record order")
	}

	s.println(fmt.Sprintf(msgPurchasedFn, total.StringFixed(2)))
	s.Cart.Clear()
	s.Metrics.checkout(total)
	s.Metrics.cartSize(0)
	s.logger().Info("checkout",
		zap.String("order_id", o.ID),
		zap.Int("items", len(o.Items)),
		zap.String("total", total.StringFixed(2)),
	)
	return o, true, nil
}

// ViewCart prints the cart listing, including an empty one.
func (s *Session) ViewCart() {
	s.println(s.Cart.String())
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.Out, line)
}

func (s *Session) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
