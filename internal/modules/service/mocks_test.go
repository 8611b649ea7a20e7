package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/repo"
)

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) List(ctx context.Context, f repo.ProjectFilter) ([]model.Project, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) CountGeoData(ctx context.Context, mobileIDs []string) (map[string]int64, error) {
	args := m.Called(ctx, mobileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockProjectRepo) Statistics(ctx context.Context, f repo.ProjectFilter) (*repo.ProjectStatistics, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.ProjectStatistics), args.Error(1)
}

type MockGeoDataRepo struct {
	mock.Mock
}

func (m *MockGeoDataRepo) List(ctx context.Context, f repo.GeoDataFilter) ([]model.GeoData, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeoData), args.Error(1)
}

func (m *MockGeoDataRepo) GetByID(ctx context.Context, id uint) (*model.GeoData, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeoData), args.Error(1)
}

func (m *MockGeoDataRepo) ListByProject(ctx context.Context, projectMobileID string) ([]model.GeoData, error) {
	args := m.Called(ctx, projectMobileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeoData), args.Error(1)
}

func (m *MockGeoDataRepo) Count(ctx context.Context, f repo.GeoDataFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGeoDataRepo) TopProjects(ctx context.Context, f repo.GeoDataFilter) ([]repo.ProjectGeoDataCount, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.ProjectGeoDataCount), args.Error(1)
}

type MockAdminLogRepo struct {
	mock.Mock
}

func (m *MockAdminLogRepo) Create(ctx context.Context, l *model.AdminLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockAdminLogRepo) List(ctx context.Context, f repo.AdminLogFilter) ([]model.AdminLog, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdminLog), args.Error(1)
}

func (m *MockAdminLogRepo) GetByID(ctx context.Context, id uint) (*model.AdminLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminLog), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByTokenKey(ctx context.Context, key string) (*model.User, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error {
	args := m.Called(ctx, exchangeName, routingKey, body)
	return args.Error(0)
}
