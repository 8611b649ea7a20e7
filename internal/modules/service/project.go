package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/repo"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/query"
	"gorm.io/gorm"
)

var projectOrderingFields = map[string]string{
	"created_at": "geoform_projects.created_at",
	"updated_at": "geoform_projects.updated_at",
	"name":       "geoform_projects.name",
}

var projectDefaultOrdering = []query.OrderField{{Column: "geoform_projects.created_at", Desc: true}}

type ProjectService interface {
	List(ctx context.Context, in ListProjectsInput) (*ListProjectsOutput, error)
	Get(ctx context.Context, id uint) (*model.Project, error)
	Statistics(ctx context.Context, in ListProjectsInput) (*ProjectStatisticsOutput, error)
	GetGeoData(ctx context.Context, id uint) (*ProjectGeoDataOutput, error)
}

type projectService struct {
	r  repo.ProjectRepo
	gr repo.GeoDataRepo
}

func NewProjectService(r repo.ProjectRepo, gr repo.GeoDataRepo) ProjectService {
	return &projectService{r: r, gr: gr}
}

type ListProjectsInput struct {
	GeometryType *string `json:"geometry_type"`
	IsActive     *bool   `json:"is_active"`
	CreatedBy    *uint   `json:"created_by"`
	Search       string  `json:"search"`
	Ordering     string  `json:"ordering"`
}

func (in ListProjectsInput) filter() repo.ProjectFilter {
	return repo.ProjectFilter{
		GeometryType: in.GeometryType,
		IsActive:     in.IsActive,
		CreatedByID:  in.CreatedBy,
		Search:       query.SearchTerms(in.Search),
		Ordering:     query.Ordering(in.Ordering, projectOrderingFields, projectDefaultOrdering),
	}
}

type ListProjectsOutput struct {
	Items []model.Project
	// GeoDataCounts maps project mobile_id to its non-deleted GeoData count.
	GeoDataCounts map[string]int64
}

type ProjectStatisticsOutput struct {
	TotalProjects  int64                    `json:"total_projects"`
	ByGeometryType []repo.GeometryTypeCount `json:"by_geometry_type"`
	ByActiveStatus []repo.ActiveStatusCount `json:"by_active_status"`
}

type ProjectGeoDataOutput struct {
	Project             *model.Project
	ProjectGeoDataCount int64
	GeoData             []model.GeoData
}

func (s *projectService) List(ctx context.Context, in ListProjectsInput) (*ListProjectsOutput, error) {
	items, err := s.r.List(ctx, in.filter())
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].MobileID
	}
	counts, err := s.r.CountGeoData(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count project geodata: %w", err)
	}

	return &ListProjectsOutput{Items: items, GeoDataCounts: counts}, nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	p, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (s *projectService) Statistics(ctx context.Context, in ListProjectsInput) (*ProjectStatisticsOutput, error) {
	stats, err := s.r.Statistics(ctx, in.filter())
	if err != nil {
		return nil, fmt.Errorf("project statistics: %w", err)
	}
	return &ProjectStatisticsOutput{
		TotalProjects:  stats.Total,
		ByGeometryType: stats.ByGeometryType,
		ByActiveStatus: stats.ByActiveStatus,
	}, nil
}

func (s *projectService) GetGeoData(ctx context.Context, id uint) (*ProjectGeoDataOutput, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.gr.ListByProject(ctx, p.MobileID)
	if err != nil {
		return nil, fmt.Errorf("list project geodata: %w", err)
	}

	return &ProjectGeoDataOutput{
		Project:             p,
		ProjectGeoDataCount: int64(len(items)),
		GeoData:             items,
	}, nil
}
