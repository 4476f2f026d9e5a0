package cart

import (
	"context"
	"testing"

	"bookshelf-be/internal/book"
	"bookshelf-be/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (Repository, book.Repository) {
	t.Helper()
	st := store.New()
	return NewRepository(st), book.NewRepository(st)
}

func addBook(t *testing.T, books book.Repository, title, price string, stock int) *book.Book {
	t.Helper()
	b, err := books.Create(context.Background(), book.BookInput{
		Title:    title,
		Author:   "author",
		Price:    decimal.RequireFromString(price),
		Category: "fiction",
		Stock:    stock,
	})
	require.NoError(t, err)
	return b
}

func TestRepository_AddItemMergesPerUserAndBook(t *testing.T) {
	repo, books := setupRepos(t)
	ctx := context.Background()
	b := addBook(t, books, "Dune", "11.99", 10)

	first, err := repo.AddItem(ctx, AddToCartParams{UserID: 1, BookID: b.ID, Quantity: 2})
	require.NoError(t, err)

	second, err := repo.AddItem(ctx, AddToCartParams{UserID: 1, BookID: b.ID, Quantity: 3})
	require.NoError(t, err)

	// Same line, summed quantity.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	items, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestRepository_AddItemSeparatesUsers(t *testing.T) {
	repo, books := setupRepos(t)
	ctx := context.Background()
	b := addBook(t, books, "Dune", "11.99", 10)

	_, err := repo.AddItem(ctx, AddToCartParams{UserID: 1, BookID: b.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, AddToCartParams{UserID: 2, BookID: b.ID, Quantity: 4})
	require.NoError(t, err)

	mine, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 1, mine[0].Quantity)

	theirs, err := repo.GetByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, 4, theirs[0].Quantity)
}

func TestRepository_ClearOnlyTouchesOwnLines(t *testing.T) {
	repo, books := setupRepos(t)
	ctx := context.Background()
	b := addBook(t, books, "Dune", "11.99", 10)

	_, err := repo.AddItem(ctx, AddToCartParams{UserID: 1, BookID: b.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, AddToCartParams{UserID: 2, BookID: b.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx, 1))

	mine, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := repo.GetByUser(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestRepository_ResolveLinesFailsOnDanglingReference(t *testing.T) {
	repo, books := setupRepos(t)
	ctx := context.Background()
	b := addBook(t, books, "Dune", "11.99", 10)

	_, err := repo.AddItem(ctx, AddToCartParams{UserID: 1, BookID: b.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, books.Delete(ctx, b.ID))

	_, err = repo.ResolveLines(ctx, 1)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestSubtotalReflectsLivePrices(t *testing.T) {
	repo, books := setupRepos(t)
	ctx := context.Background()
	b := addBook(t, books, "Dune", "10.00", 5)

	_, err := repo.AddItem(ctx, AddToCartParams{UserID: 1, BookID: b.ID, Quantity: 3})
	require.NoError(t, err)

	lines, err := repo.ResolveLines(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "30.00", Subtotal(lines).StringFixed(2))
	assert.Equal(t, 3, Count(lines))

	// Price edit with no cart mutation shows up on the next read.
	updated := *b
	updated.Price = decimal.RequireFromString("12.00")
	require.NoError(t, books.Update(ctx, updated))

	lines, err = repo.ResolveLines(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "36.00", Subtotal(lines).StringFixed(2))
}
