package repo

import (
	"context"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"gorm.io/gorm"
)

type AdminLogFilter struct {
	UserID   *uint
	Action   *string
	Resource *string
}

// AdminLogRepo only appends and reads; audit rows are never updated or deleted.
type AdminLogRepo interface {
	Create(ctx context.Context, l *model.AdminLog) error
	List(ctx context.Context, f AdminLogFilter) ([]model.AdminLog, error)
	GetByID(ctx context.Context, id uint) (*model.AdminLog, error)
}

type adminLogRepo struct{ db *gorm.DB }

func NewAdminLogRepo(db *gorm.DB) AdminLogRepo {
	return &adminLogRepo{db: db}
}

func (r *adminLogRepo) Create(ctx context.Context, l *model.AdminLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *adminLogRepo) List(ctx context.Context, f AdminLogFilter) ([]model.AdminLog, error) {
	q := r.db.WithContext(ctx).Model(&model.AdminLog{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Action != nil {
		q = q.Where("action = ?", *f.Action)
	}
	if f.Resource != nil {
		q = q.Where("resource = ?", *f.Resource)
	}

	var items []model.AdminLog
	return items, q.Preload("User").Order("created_at DESC").Order("id DESC").Find(&items).Error
}

func (r *adminLogRepo) GetByID(ctx context.Context, id uint) (*model.AdminLog, error) {
	var l model.AdminLog
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}
