package user

import (
	"context"
	"errors"

	"bookshelf-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, username, email, password string) (string, *User, error)
	Login(ctx context.Context, username, password string) (string, *User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, username, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("username", username),
	)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, username, email, hashed, false)
	if err != nil {
		log.Warn("failed to create user", zap.Error(err))
		return "", nil, err
	}

	token, err := GenerateJWT(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		log.Error("failed to generate jwt", zap.Uint("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("user registered", zap.Uint("user_id", u.ID))
	return token, u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("username", username),
	)

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warn("login with unknown username")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("login with wrong password", zap.Uint("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		log.Error("failed to generate jwt", zap.Uint("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("user logged in", zap.Uint("user_id", u.ID))
	return token, u, nil
}

func (s *service) GetUser(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
