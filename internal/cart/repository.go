package cart

import (
	"context"
	"time"

	"bookshelf-be/internal/book"
	"bookshelf-be/internal/store"
)

// BucketCartItems names the cart collection. The order repository clears it
// inside its placement transaction.
const BucketCartItems = "cart_items"

type Repository interface {
	GetByUser(ctx context.Context, userID uint) ([]CartItem, error)
	GetByID(ctx context.Context, id uint) (*CartItem, error)
	// AddItem merges into an existing (user, book) line or creates one. The
	// merge runs inside a single write transaction.
	AddItem(ctx context.Context, params AddToCartParams) (*CartItem, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) (*CartItem, error)
	Remove(ctx context.Context, id uint) error
	Clear(ctx context.Context, userID uint) error
	ResolveLines(ctx context.Context, userID uint) ([]Line, error)
}

type repository struct {
	store *store.Store
}

func NewRepository(st *store.Store) Repository {
	return &repository{store: st}
}

func (r *repository) GetByUser(ctx context.Context, userID uint) ([]CartItem, error) {
	var items []CartItem
	err := r.store.View(func(tx *store.Tx) error {
		items = store.Bucket[CartItem](tx, BucketCartItems).Find(func(i CartItem) bool {
			return i.UserID == userID
		})
		return nil
	})
	return items, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*CartItem, error) {
	var found *CartItem
	err := r.store.View(func(tx *store.Tx) error {
		item, ok := store.Bucket[CartItem](tx, BucketCartItems).Get(id)
		if !ok {
			return ErrCartItemNotFound
		}
		found = &item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *repository) AddItem(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	var result CartItem
	err := r.store.Update(func(tx *store.Tx) error {
		items := store.Bucket[CartItem](tx, BucketCartItems)

		existing, ok := items.First(func(i CartItem) bool {
			return i.UserID == params.UserID && i.BookID == params.BookID
		})
		if ok {
			existing.Quantity += params.Quantity
			result = existing
			return items.Put(existing.ID, existing)
		}

		_, err := items.Insert(func(id uint) CartItem {
			result = CartItem{
				ID:       id,
				UserID:   params.UserID,
				BookID:   params.BookID,
				Quantity: params.Quantity,
				AddedAt:  time.Now(),
			}
			return result
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, id uint, quantity int) (*CartItem, error) {
	var result CartItem
	err := r.store.Update(func(tx *store.Tx) error {
		items := store.Bucket[CartItem](tx, BucketCartItems)
		item, ok := items.Get(id)
		if !ok {
			return ErrCartItemNotFound
		}
		item.Quantity = quantity
		result = item
		return items.Put(id, item)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) Remove(ctx context.Context, id uint) error {
	return r.store.Update(func(tx *store.Tx) error {
		items := store.Bucket[CartItem](tx, BucketCartItems)
		if _, ok := items.Get(id); !ok {
			return ErrCartItemNotFound
		}
		return items.Delete(id)
	})
}

func (r *repository) Clear(ctx context.Context, userID uint) error {
	return r.store.Update(func(tx *store.Tx) error {
		items := store.Bucket[CartItem](tx, BucketCartItems)
		for _, i := range items.Find(func(i CartItem) bool { return i.UserID == userID }) {
			if err := items.Delete(i.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResolveLines joins the user's cart items with the live catalog inside one
// read transaction, so prices and the lines they belong to come from the same
// snapshot. A dangling book reference fails the whole read.
func (r *repository) ResolveLines(ctx context.Context, userID uint) ([]Line, error) {
	var lines []Line
	err := r.store.View(func(tx *store.Tx) error {
		items := store.Bucket[CartItem](tx, BucketCartItems)
		books := store.Bucket[book.Book](tx, book.BucketBooks)

		for _, i := range items.Find(func(i CartItem) bool { return i.UserID == userID }) {
			b, ok := books.Get(i.BookID)
			if !ok {
				return ErrBookNotFound
			}
			lines = append(lines, Line{CartItem: i, Book: b})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
