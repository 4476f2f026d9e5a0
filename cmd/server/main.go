package main

import (
	"context"

	"bookshelf-be/internal/book"
	"bookshelf-be/internal/cart"
	"bookshelf-be/internal/config"
	"bookshelf-be/internal/httpapi"
	"bookshelf-be/internal/logger"
	"bookshelf-be/internal/metrics"
	"bookshelf-be/internal/order"
	"bookshelf-be/internal/seed"
	"bookshelf-be/internal/store"
	"bookshelf-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.New()
	stats := metrics.NewStats()

	bookRepo := book.NewRepository(st)
	bookSvc := book.NewService(bookRepo)

	userRepo := user.NewRepository(st)
	userSvc := user.NewService(userRepo)

	cartRepo := cart.NewRepository(st)
	cartSvc := cart.NewService(cartRepo, bookRepo)

	orderRepo := order.NewRepository(st)
	orderSvc := order.NewService(orderRepo, stats)

	if err := seed.Run(context.Background(), userRepo, bookRepo); err != nil {
		logger.L().Fatal("failed to seed demo data", zap.Error(err))
	}

	router := httpapi.NewRouter(httpapi.Services{
		Books:  bookSvc,
		Users:  userSvc,
		Carts:  cartSvc,
		Orders: orderSvc,
		Stats:  stats,
	})

	logger.L().Info("bookshelf server listening", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
