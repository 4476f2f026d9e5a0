package cart

import (
	"time"

	"bookshelf-be/internal/book"

	"github.com/shopspring/decimal"
)

// CartItem is a stored cart line. There is at most one line per (user, book)
// pair; repeated adds merge into it.
type CartItem struct {
	ID       uint
	UserID   uint
	BookID   uint
	Quantity int
	AddedAt  time.Time
}

// Line is a cart item resolved against the live catalog.
type Line struct {
	CartItem
	Book book.Book
}

type AddToCartParams struct {
	UserID   uint
	BookID   uint
	Quantity int
}

type UpdateQuantityParams struct {
	UserID   uint
	LineID   uint
	Quantity int
}

// Subtotal sums current catalog price times quantity over the lines. Prices
// are looked up live, so a price edit shows up on the very next read.
func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Book.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Count sums quantities, i.e. total units rather than line count.
func Count(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
