package repo

import (
	"context"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"gorm.io/gorm"
)

// UserRepo reads the identity store for request authentication.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByTokenKey(ctx context.Context, key string) (*model.User, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByTokenKey(ctx context.Context, key string) (*model.User, error) {
	var t model.Token
	err := r.db.WithContext(ctx).Preload("User").Where("key = ?", key).First(&t).Error
	if err != nil {
		return nil, err
	}
	if t.User == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return t.User, nil
}
