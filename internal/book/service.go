package book

import (
	"context"
	"strings"

	"bookshelf-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines the catalog operations, including the admin mutations.
type Service interface {
	GetBook(ctx context.Context, id uint) (*Book, error)
	ListBooks(ctx context.Context) ([]Book, error)
	ListByCategory(ctx context.Context, category string) ([]Book, error)
	ListFeatured(ctx context.Context) ([]Book, error)
	ListNewReleases(ctx context.Context) ([]Book, error)
	SearchBooks(ctx context.Context, query string) ([]Book, error)
	AddBook(ctx context.Context, input BookInput) (*Book, error)
	UpdateBook(ctx context.Context, b Book) (*Book, error)
	RemoveBook(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListBooks(ctx context.Context) ([]Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]Book, error) {
	return s.repo.GetByCategory(ctx, category)
}

func (s *service) ListFeatured(ctx context.Context) ([]Book, error) {
	return s.repo.GetFeatured(ctx)
}

func (s *service) ListNewReleases(ctx context.Context) ([]Book, error) {
	return s.repo.GetNewReleases(ctx)
}

func (s *service) SearchBooks(ctx context.Context, query string) ([]Book, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query))
}

func (s *service) AddBook(ctx context.Context, input BookInput) (*Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddBook"),
		zap.String("title", input.Title),
	)

	if err := validateInput(input); err != nil {
		log.Warn("invalid book input", zap.Error(err))
		return nil, err
	}

	b, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create book", zap.Error(err))
		return nil, err
	}

	log.Info("book created", zap.Uint("book_id", b.ID))
	return b, nil
}

func (s *service) UpdateBook(ctx context.Context, b Book) (*Book, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateBook"),
		zap.Uint("book_id", b.ID),
	)

	if err := validateInput(BookInput{
		Title:    b.Title,
		Author:   b.Author,
		Price:    b.Price,
		Category: b.Category,
		Stock:    b.Stock,
	}); err != nil {
		log.Warn("invalid book input", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		log.Error("failed to update book", zap.Error(err))
		return nil, err
	}

	log.Info("book updated")
	return &b, nil
}

func (s *service) RemoveBook(ctx context.Context, id uint) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RemoveBook"),
		zap.Uint("book_id", id),
	)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete book", zap.Error(err))
		return err
	}

	log.Info("book removed")
	return nil
}

// validateInput applies the admin upsert rules. All failing fields are
// collected so the caller can render them together.
func validateInput(input BookInput) error {
	fields := make(map[string]string)

	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(input.Author) == "" {
		fields["author"] = "author is required"
	}
	if strings.TrimSpace(input.Category) == "" {
		fields["category"] = "category is required"
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		fields["price"] = "price must be greater than zero"
	}
	if input.Stock < 0 {
		fields["stock"] = "stock cannot be negative"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
