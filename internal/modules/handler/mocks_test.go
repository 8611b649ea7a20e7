package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/middleware"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, in service.ListProjectsInput) (*service.ListProjectsOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListProjectsOutput), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Statistics(ctx context.Context, in service.ListProjectsInput) (*service.ProjectStatisticsOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectStatisticsOutput), args.Error(1)
}

func (m *MockProjectService) GetGeoData(ctx context.Context, id uint) (*service.ProjectGeoDataOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectGeoDataOutput), args.Error(1)
}

type MockGeoDataService struct {
	mock.Mock
}

func (m *MockGeoDataService) List(ctx context.Context, in service.ListGeoDataInput) ([]model.GeoData, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeoData), args.Error(1)
}

func (m *MockGeoDataService) Get(ctx context.Context, id uint) (*service.GetGeoDataOutput, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GetGeoDataOutput), args.Error(1)
}

func (m *MockGeoDataService) Statistics(ctx context.Context, in service.ListGeoDataInput) (*service.GeoDataStatisticsOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GeoDataStatisticsOutput), args.Error(1)
}

func (m *MockGeoDataService) Export(ctx context.Context, in service.ExportGeoDataInput) (*service.ExportGeoDataOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportGeoDataOutput), args.Error(1)
}

type MockAdminLogService struct {
	mock.Mock
}

func (m *MockAdminLogService) List(ctx context.Context, in service.ListAdminLogsInput) ([]model.AdminLog, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdminLog), args.Error(1)
}

func (m *MockAdminLogService) Get(ctx context.Context, id uint) (*model.AdminLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminLog), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, e service.AuditEntry) {
	m.Called(ctx, e)
}

var staffUser = &model.User{ID: 1, Username: "admin", IsStaff: true, IsActive: true}

// withUser stands in for the authentication middleware.
func withUser(u *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserKey, u)
		c.Next()
	}
}
