package book

import (
	"context"
	"testing"

	"bookshelf-be/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	return NewRepository(store.New())
}

func mustAdd(t *testing.T, repo Repository, input BookInput) *Book {
	t.Helper()
	b, err := repo.Create(context.Background(), input)
	require.NoError(t, err)
	return b
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRepository_Search(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustAdd(t, repo, BookInput{Title: "The Go Programming Language", Author: "Donovan", Price: price("30.00"), Category: "tech"})
	mustAdd(t, repo, BookInput{Title: "Dune", Author: "Frank Herbert", Price: price("11.99"), Category: "sci-fi"})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got, err := repo.Search(ctx, "gO proGRAM")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "The Go Programming Language", got[0].Title)
	})

	t.Run("matches author substring", func(t *testing.T) {
		got, err := repo.Search(ctx, "herbert")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Dune", got[0].Title)
	})

	t.Run("no match returns empty slice, not error", func(t *testing.T) {
		got, err := repo.Search(ctx, "nonexistent")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestRepository_CreateCarriesDisplayFields(t *testing.T) {
	repo := newTestRepo(t)

	b := mustAdd(t, repo, BookInput{
		Title:       "Sapiens",
		Author:      "Yuval Noah Harari",
		Price:       price("19.99"),
		Category:    "history",
		Rating:      4.6,
		ReviewCount: 1780,
	})

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.6, got.Rating)
	assert.Equal(t, 1780, got.ReviewCount)
}

func TestRepository_Filters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustAdd(t, repo, BookInput{Title: "A", Author: "X", Price: price("10.00"), Category: "fiction", Featured: true})
	mustAdd(t, repo, BookInput{Title: "B", Author: "Y", Price: price("10.00"), Category: "Fiction", NewRelease: true})
	mustAdd(t, repo, BookInput{Title: "C", Author: "Z", Price: price("10.00"), Category: "history"})

	byCat, err := repo.GetByCategory(ctx, "FICTION")
	require.NoError(t, err)
	assert.Len(t, byCat, 2)

	featured, err := repo.GetFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "A", featured[0].Title)

	newReleases, err := repo.GetNewReleases(ctx)
	require.NoError(t, err)
	require.Len(t, newReleases, 1)
	assert.Equal(t, "B", newReleases[0].Title)
}

func TestRepository_UpdateReplacesRecord(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b := mustAdd(t, repo, BookInput{Title: "Old", Author: "X", Price: price("10.00"), Category: "fiction", Stock: 5})

	updated := *b
	updated.Title = "New"
	updated.Price = price("12.00")
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.True(t, got.Price.Equal(price("12.00")))
}

func TestRepository_UpdateUnknownIDFails(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update(context.Background(), Book{ID: 99, Title: "Ghost", Author: "X", Price: price("1.00"), Category: "fiction"})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b := mustAdd(t, repo, BookInput{Title: "A", Author: "X", Price: price("10.00"), Category: "fiction"})

	require.NoError(t, repo.Delete(ctx, b.ID))
	// Second delete of the same id and a delete of a never-existing id are
	// both no-ops.
	require.NoError(t, repo.Delete(ctx, b.ID))
	require.NoError(t, repo.Delete(ctx, 4242))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
