package catalog

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

func (p Product) Equal(o Product) bool {
	return p.ID == o.ID &&
		p.Name == o.Name &&
		p.Category == o.Category &&
		p.Price.Equal(o.Price)
}

func (p Product) String() string {
	return fmt.Sprintf("Product{id='%s', name='%s', category='%s', price=%s}",
		p.ID, p.Name, p.Category, p.Price.String())
}

type Store interface {
	Ping(ctx context.Context) error
	ListSortedByID(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, bool, error)
	Search(ctx context.Context, keyword string) ([]Product, error)
}

// Seed returns the fixed product set every new store starts with.
func Seed() []Product {
	return []Product{
		{ID: "1", Name: "Running Shoes", Category: "Shoes", Price: decimal.RequireFromString("59.99")},
		{ID: "2", Name: "Jeans", Category: "Trousers", Price: decimal.RequireFromString("39.99")},
		{ID: "3", Name: "Summer Dress", Category: "Dresses", Price: decimal.RequireFromString("49.99")},
		{ID: "4", Name: "Baseball Cap", Category: "Caps and Hats", Price: decimal.RequireFromString("14.99")},
		{ID: "5", Name: "Leather Bag", Category: "Bags", Price: decimal.RequireFromString("79.99")},
	}
}

func NewStore() Store {
	return NewMemStore()
}

// GetOrNotFound is Get with a missing id reported as ErrNotFound.
func GetOrNotFound(ctx context.Context, s Store, id string) (Product, error) {
	p, ok, err := s.Get(ctx, id)
	if err != nil {
		return Product{}, errors.Wrap(err, "get product")
	}
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}
