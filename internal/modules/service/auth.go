package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/repo"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/utils/secrets"
	"gorm.io/gorm"
)

type AuthService interface {
	AuthenticateToken(ctx context.Context, key string) (*model.User, error)
	AuthenticatePassword(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	r repo.UserRepo
}

func NewAuthService(r repo.UserRepo) AuthService {
	return &authService{r: r}
}

func (s *authService) AuthenticateToken(ctx context.Context, key string) (*model.User, error) {
	if key == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.r.GetByTokenKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup token: %w", err)
	}
	if !u.IsActive {
		return nil, ErrInactiveUser
	}
	return u, nil
}

func (s *authService) AuthenticatePassword(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.r.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	ok, err := secrets.VerifyPassword(password, u.Password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactiveUser
	}
	return u, nil
}
