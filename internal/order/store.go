package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"MiniShop/internal/catalog"
)

const StatusCompleted = "COMPLETED"

var ErrDuplicateID = errors.New("order id already exists")

type Order struct {
	ID        string            `json:"id"`
	Items     []catalog.Product `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// New builds a completed order for items with a fresh id.
func New(items []catalog.Product, total decimal.Decimal) Order {
	return Order{
		ID:        "o_" + uuid.NewString(),
		Items:     items,
		Total:     total,
		Status:    StatusCompleted,
		CreatedAt: time.Now().UTC(),
	}
}

type Store interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, bool, error)
}
