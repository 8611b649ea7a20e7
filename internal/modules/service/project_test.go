package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/repo"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/query"
)

func TestListProjectsInput_Filter(t *testing.T) {
	polygon := model.GeometryPolygon
	active := true
	in := ListProjectsInput{
		GeometryType: &polygon,
		IsActive:     &active,
		Search:       "river, north",
		Ordering:     "name,-bogus",
	}

	f := in.filter()
	assert.Equal(t, &polygon, f.GeometryType)
	assert.Equal(t, &active, f.IsActive)
	assert.Nil(t, f.CreatedByID)
	assert.Equal(t, []string{"river", "north"}, f.Search)
	assert.Equal(t, []query.OrderField{{Column: "geoform_projects.name"}}, f.Ordering)

	assert.Equal(t, projectDefaultOrdering, ListProjectsInput{}.filter().Ordering)
}

func TestProjectService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches geodata counts", func(t *testing.T) {
		pr := &MockProjectRepo{}
		projects := []model.Project{{ID: 1, MobileID: "P1"}, {ID: 2, MobileID: "P2"}}
		pr.On("List", ctx, mock.Anything).Return(projects, nil)
		pr.On("CountGeoData", ctx, []string{"P1", "P2"}).Return(map[string]int64{"P1": 2}, nil)

		out, err := NewProjectService(pr, &MockGeoDataRepo{}).List(ctx, ListProjectsInput{})
		require.NoError(t, err)
		assert.Len(t, out.Items, 2)
		assert.Equal(t, int64(2), out.GeoDataCounts["P1"])
		assert.Equal(t, int64(0), out.GeoDataCounts["P2"])
		pr.AssertExpectations(t)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		pr := &MockProjectRepo{}
		pr.On("List", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := NewProjectService(pr, &MockGeoDataRepo{}).List(ctx, ListProjectsInput{})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		pr.AssertNotCalled(t, "CountGeoData", mock.Anything, mock.Anything)
	})
}

func TestProjectService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "found"},
		{name: "missing or soft-deleted", repoErr: gorm.ErrRecordNotFound, wantErr: ErrNotFound},
		{name: "store failure", repoErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := &MockProjectRepo{}
			if tt.repoErr != nil {
				pr.On("GetByID", ctx, uint(7)).Return(nil, tt.repoErr)
			} else {
				pr.On("GetByID", ctx, uint(7)).Return(&model.Project{ID: 7, MobileID: "P7"}, nil)
			}

			p, err := NewProjectService(pr, &MockGeoDataRepo{}).Get(ctx, 7)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.repoErr != nil:
				assert.ErrorIs(t, err, tt.repoErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, "P7", p.MobileID)
			}
		})
	}
}

func TestProjectService_Statistics(t *testing.T) {
	ctx := context.Background()
	pr := &MockProjectRepo{}
	pr.On("Statistics", ctx, mock.Anything).Return(&repo.ProjectStatistics{
		Total:          3,
		ByGeometryType: []repo.GeometryTypeCount{{GeometryType: "line", Count: 1}, {GeometryType: "point", Count: 2}},
		ByActiveStatus: []repo.ActiveStatusCount{{IsActive: true, Count: 3}},
	}, nil)

	out, err := NewProjectService(pr, &MockGeoDataRepo{}).Statistics(ctx, ListProjectsInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.TotalProjects)
	assert.Len(t, out.ByGeometryType, 2)
	assert.Equal(t, int64(3), out.ByActiveStatus[0].Count)
}

func TestProjectService_GetGeoData(t *testing.T) {
	ctx := context.Background()

	t.Run("counts the returned rows", func(t *testing.T) {
		pr := &MockProjectRepo{}
		gr := &MockGeoDataRepo{}
		pr.On("GetByID", ctx, uint(1)).Return(&model.Project{ID: 1, MobileID: "P1"}, nil)
		gr.On("ListByProject", ctx, "P1").Return([]model.GeoData{{ID: 10}, {ID: 11}}, nil)

		out, err := NewProjectService(pr, gr).GetGeoData(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "P1", out.Project.MobileID)
		assert.Equal(t, int64(2), out.ProjectGeoDataCount)
		assert.Len(t, out.GeoData, 2)
	})

	t.Run("missing project", func(t *testing.T) {
		pr := &MockProjectRepo{}
		gr := &MockGeoDataRepo{}
		pr.On("GetByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewProjectService(pr, gr).GetGeoData(ctx, 9)
		assert.ErrorIs(t, err, ErrNotFound)
		gr.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
	})
}
