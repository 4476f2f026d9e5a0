package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
)

// Order is immutable once placed. Total is computed exactly once at placement
// and never recomputed, so later catalog price edits cannot rewrite history.
type Order struct {
	ID        uint
	UserID    uint
	Total     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}

// OrderItem captures the unit price at purchase time as a snapshot,
// independent of any later Book price change.
type OrderItem struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Quantity int
	Price    decimal.Decimal
}
