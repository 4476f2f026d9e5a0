package book

import (
	"context"
	"strings"

	"bookshelf-be/internal/store"
)

// BucketBooks names the catalog collection. The order repository reaches into
// the same bucket inside its placement transaction.
const BucketBooks = "books"

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	GetByCategory(ctx context.Context, category string) ([]Book, error)
	GetFeatured(ctx context.Context) ([]Book, error)
	GetNewReleases(ctx context.Context) ([]Book, error)
	Search(ctx context.Context, query string) ([]Book, error)
	Create(ctx context.Context, input BookInput) (*Book, error)
	Update(ctx context.Context, b Book) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	store *store.Store
}

func NewRepository(st *store.Store) Repository {
	return &repository{store: st}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Book, error) {
	var found *Book
	err := r.store.View(func(tx *store.Tx) error {
		b, ok := store.Bucket[Book](tx, BucketBooks).Get(id)
		if !ok {
			return ErrBookNotFound
		}
		found = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Book, error) {
	return r.filter(func(Book) bool { return true })
}

func (r *repository) GetByCategory(ctx context.Context, category string) ([]Book, error) {
	return r.filter(func(b Book) bool {
		return strings.EqualFold(b.Category, category)
	})
}

func (r *repository) GetFeatured(ctx context.Context) ([]Book, error) {
	return r.filter(func(b Book) bool { return b.Featured })
}

func (r *repository) GetNewReleases(ctx context.Context) ([]Book, error) {
	return r.filter(func(b Book) bool { return b.NewRelease })
}

// Search matches case-insensitively against title or author substrings. No
// match is an empty slice, not an error.
func (r *repository) Search(ctx context.Context, query string) ([]Book, error) {
	q := strings.ToLower(query)
	return r.filter(func(b Book) bool {
		return strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q)
	})
}

func (r *repository) Create(ctx context.Context, input BookInput) (*Book, error) {
	var created Book
	err := r.store.Update(func(tx *store.Tx) error {
		_, err := store.Bucket[Book](tx, BucketBooks).Insert(func(id uint) Book {
			created = Book{
				ID:          id,
				Title:       input.Title,
				Author:      input.Author,
				Description: input.Description,
				Price:       input.Price,
				ImageURL:    input.ImageURL,
				Category:    input.Category,
				Stock:       input.Stock,
				Rating:      input.Rating,
				ReviewCount: input.ReviewCount,
				Featured:    input.Featured,
				NewRelease:  input.NewRelease,
			}
			return created
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the stored record wholesale. The id must already exist.
func (r *repository) Update(ctx context.Context, b Book) error {
	return r.store.Update(func(tx *store.Tx) error {
		books := store.Bucket[Book](tx, BucketBooks)
		if _, ok := books.Get(b.ID); !ok {
			return ErrBookNotFound
		}
		return books.Put(b.ID, b)
	})
}

// Delete is idempotent: removing an absent id leaves the catalog unchanged
// and reports no error.
func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.store.Update(func(tx *store.Tx) error {
		return store.Bucket[Book](tx, BucketBooks).Delete(id)
	})
}

func (r *repository) filter(pred func(Book) bool) ([]Book, error) {
	var out []Book
	err := r.store.View(func(tx *store.Tx) error {
		out = store.Bucket[Book](tx, BucketBooks).Find(pred)
		return nil
	})
	return out, err
}
