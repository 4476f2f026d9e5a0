package order

import (
	"context"

	"bookshelf-be/internal/logger"
	"bookshelf-be/internal/metrics"

	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, userID uint) (*Order, []OrderItem, error)
	GetOrders(ctx context.Context, userID uint) ([]Order, error)
	GetOrderItems(ctx context.Context, userID, orderID uint) ([]OrderItem, error)
}

type service struct {
	repo  Repository
	stats *metrics.Stats
}

func NewService(repo Repository, stats *metrics.Stats) Service {
	return &service{repo: repo, stats: stats}
}

func (s *service) PlaceOrder(ctx context.Context, userID uint) (*Order, []OrderItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Uint("user_id", userID),
	)

	timer := metrics.StartTimer()
	o, items, err := s.repo.PlaceOrder(ctx, userID)
	if err != nil {
		log.Warn("placement failed", zap.Error(err))
		return nil, nil, err
	}

	units := 0
	for _, item := range items {
		units += item.Quantity
	}
	s.stats.OrdersPlaced.Inc()
	s.stats.UnitsSold.Add(uint64(units))

	log.Info("order placed",
		zap.Uint("order_id", o.ID),
		zap.String("total", o.Total.StringFixed(2)),
		zap.Int("lines", len(items)),
		zap.Int("units", units),
		zap.Duration("took", timer.Duration()),
	)
	return o, items, nil
}

func (s *service) GetOrders(ctx context.Context, userID uint) ([]Order, error) {
	return s.repo.GetByUser(ctx, userID)
}

// GetOrderItems only serves orders owned by the requesting user; anything
// else reads as not found.
func (s *service) GetOrderItems(ctx context.Context, userID, orderID uint) ([]OrderItem, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return s.repo.GetItems(ctx, orderID)
}
