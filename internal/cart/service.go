package cart

import (
	"context"
	"errors"

	"bookshelf-be/internal/book"
	"bookshelf-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for carts. Stock is deliberately NOT
// checked here: the cart may hold more units than are in stock, and the
// catalog only becomes authoritative at order placement.
type Service interface {
	AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error)
	UpdateQuantity(ctx context.Context, params UpdateQuantityParams) (*CartItem, error)
	RemoveFromCart(ctx context.Context, userID, lineID uint) error
	ClearCart(ctx context.Context, userID uint) error
	GetCart(ctx context.Context, userID uint) ([]Line, error)
}

type service struct {
	repo     Repository
	bookRepo book.Repository
}

func NewService(repo Repository, bookRepo book.Repository) Service {
	return &service{repo: repo, bookRepo: bookRepo}
}

func (s *service) AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.Uint("user_id", params.UserID),
		zap.Uint("book_id", params.BookID),
		zap.Int("quantity", params.Quantity),
	)

	if params.Quantity < 1 {
		log.Warn("rejected non-positive quantity")
		return nil, ErrInvalidQuantity
	}

	if _, err := s.bookRepo.GetByID(ctx, params.BookID); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			log.Warn("book does not exist")
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	item, err := s.repo.AddItem(ctx, params)
	if err != nil {
		log.Error("failed to add cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item added", zap.Uint("cart_item_id", item.ID), zap.Int("merged_quantity", item.Quantity))
	return item, nil
}

// UpdateQuantity sets an absolute quantity on an existing line. Values below
// one are rejected; a line is removed explicitly, never by zeroing it out.
func (s *service) UpdateQuantity(ctx context.Context, params UpdateQuantityParams) (*CartItem, error) {
	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if err := s.ownedBy(ctx, params.UserID, params.LineID); err != nil {
		return nil, err
	}

	return s.repo.UpdateQuantity(ctx, params.LineID, params.Quantity)
}

func (s *service) RemoveFromCart(ctx context.Context, userID, lineID uint) error {
	if err := s.ownedBy(ctx, userID, lineID); err != nil {
		return err
	}
	return s.repo.Remove(ctx, lineID)
}

func (s *service) ClearCart(ctx context.Context, userID uint) error {
	return s.repo.Clear(ctx, userID)
}

func (s *service) GetCart(ctx context.Context, userID uint) ([]Line, error) {
	return s.repo.ResolveLines(ctx, userID)
}

// ownedBy hides other users' lines behind a not-found error.
func (s *service) ownedBy(ctx context.Context, userID, lineID uint) error {
	item, err := s.repo.GetByID(ctx, lineID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return ErrCartItemNotFound
	}
	return nil
}
