package order

import (
	"context"
	"sort"
	"time"

	"bookshelf-be/internal/book"
	"bookshelf-be/internal/cart"
	"bookshelf-be/internal/store"

	"github.com/shopspring/decimal"
)

const (
	BucketOrders     = "orders"
	BucketOrderItems = "order_items"
)

type Repository interface {
	// PlaceOrder runs the whole placement for the user's cart as one write
	// transaction: total from live prices, order + item snapshots, clamped
	// stock decrements, cart cleared. It validates every book reference
	// before touching anything, so a failure commits nothing.
	PlaceOrder(ctx context.Context, userID uint) (*Order, []OrderItem, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByUser(ctx context.Context, userID uint) ([]Order, error)
	GetItems(ctx context.Context, orderID uint) ([]OrderItem, error)
}

type repository struct {
	store *store.Store
}

func NewRepository(st *store.Store) Repository {
	return &repository{store: st}
}

func (r *repository) PlaceOrder(ctx context.Context, userID uint) (*Order, []OrderItem, error) {
	var (
		placed Order
		items  []OrderItem
	)

	err := r.store.Update(func(tx *store.Tx) error {
		cartItems := store.Bucket[cart.CartItem](tx, cart.BucketCartItems)
		books := store.Bucket[book.Book](tx, book.BucketBooks)
		orders := store.Bucket[Order](tx, BucketOrders)
		orderItems := store.Bucket[OrderItem](tx, BucketOrderItems)

		lines := cartItems.Find(func(i cart.CartItem) bool { return i.UserID == userID })
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		// Resolve every reference up front. Nothing is mutated until all
		// lines are known to be placeable, which is what makes a failed
		// placement commit nothing at all.
		resolved := make([]book.Book, len(lines))
		for i, line := range lines {
			b, ok := books.Get(line.BookID)
			if !ok {
				return ErrBookNotFound
			}
			resolved[i] = b
		}

		total := decimal.Zero
		for i, line := range lines {
			total = total.Add(resolved[i].Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		orderID, err := orders.Insert(func(id uint) Order {
			placed = Order{
				ID:        id,
				UserID:    userID,
				Total:     total,
				Status:    StatusPending,
				CreatedAt: time.Now(),
			}
			return placed
		})
		if err != nil {
			return err
		}

		for i, line := range lines {
			var item OrderItem
			if _, err := orderItems.Insert(func(id uint) OrderItem {
				item = OrderItem{
					ID:       id,
					OrderID:  orderID,
					BookID:   line.BookID,
					Quantity: line.Quantity,
					Price:    resolved[i].Price,
				}
				return item
			}); err != nil {
				return err
			}
			items = append(items, item)

			// Floor-clamp rather than reject: over-ordering drains the stock
			// to zero but the order still goes through.
			b := resolved[i]
			b.Stock -= line.Quantity
			if b.Stock < 0 {
				b.Stock = 0
			}
			if err := books.Put(b.ID, b); err != nil {
				return err
			}
		}

		for _, line := range lines {
			if err := cartItems.Delete(line.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &placed, items, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	var found *Order
	err := r.store.View(func(tx *store.Tx) error {
		o, ok := store.Bucket[Order](tx, BucketOrders).Get(id)
		if !ok {
			return ErrOrderNotFound
		}
		found = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// GetByUser returns the user's orders newest first.
func (r *repository) GetByUser(ctx context.Context, userID uint) ([]Order, error) {
	var out []Order
	err := r.store.View(func(tx *store.Tx) error {
		out = store.Bucket[Order](tx, BucketOrders).Find(func(o Order) bool {
			return o.UserID == userID
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *repository) GetItems(ctx context.Context, orderID uint) ([]OrderItem, error) {
	var out []OrderItem
	err := r.store.View(func(tx *store.Tx) error {
		out = store.Bucket[OrderItem](tx, BucketOrderItems).Find(func(i OrderItem) bool {
			return i.OrderID == orderID
		})
		return nil
	})
	return out, err
}
