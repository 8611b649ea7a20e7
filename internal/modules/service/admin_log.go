package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/repo"
	"gorm.io/gorm"
)

type AdminLogService interface {
	List(ctx context.Context, in ListAdminLogsInput) ([]model.AdminLog, error)
	Get(ctx context.Context, id uint) (*model.AdminLog, error)
}

type adminLogService struct {
	r repo.AdminLogRepo
}

func NewAdminLogService(r repo.AdminLogRepo) AdminLogService {
	return &adminLogService{r: r}
}

type ListAdminLogsInput struct {
	User     *uint   `json:"user"`
	Action   *string `json:"action"`
	Resource *string `json:"resource"`
}

func (s *adminLogService) List(ctx context.Context, in ListAdminLogsInput) ([]model.AdminLog, error) {
	items, err := s.r.List(ctx, repo.AdminLogFilter{
		UserID:   in.User,
		Action:   in.Action,
		Resource: in.Resource,
	})
	if err != nil {
		return nil, fmt.Errorf("list admin logs: %w", err)
	}
	return items, nil
}

func (s *adminLogService) Get(ctx context.Context, id uint) (*model.AdminLog, error) {
	l, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin log: %w", err)
	}
	return l, nil
}
