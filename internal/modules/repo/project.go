package repo

import (
	"context"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/query"
	"gorm.io/gorm"
)

// ProjectFilter narrows the non-deleted projects. Nil fields are not applied.
type ProjectFilter struct {
	GeometryType *string
	IsActive     *bool
	CreatedByID  *uint
	Search       []string
	Ordering     []query.OrderField
}

type GeometryTypeCount struct {
	GeometryType string `json:"geometry_type"`
	Count        int64  `json:"count"`
}

type ActiveStatusCount struct {
	IsActive bool  `json:"is_active"`
	Count    int64 `json:"count"`
}

type ProjectStatistics struct {
	Total          int64
	ByGeometryType []GeometryTypeCount
	ByActiveStatus []ActiveStatusCount
}

var projectSearchColumns = []string{
	"geoform_projects.name",
	"geoform_projects.description",
	"geoform_projects.mobile_id",
}

type ProjectRepo interface {
	List(ctx context.Context, f ProjectFilter) ([]model.Project, error)
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	CountGeoData(ctx context.Context, mobileIDs []string) (map[string]int64, error)
	Statistics(ctx context.Context, f ProjectFilter) (*ProjectStatistics, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

// filtered returns a fresh query over non-deleted projects matching f.
func (r *projectRepo) filtered(ctx context.Context, f ProjectFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Project{}).Where("geoform_projects.is_deleted = ?", false)
	if f.GeometryType != nil {
		q = q.Where("geoform_projects.geometry_type = ?", *f.GeometryType)
	}
	if f.IsActive != nil {
		q = q.Where("geoform_projects.is_active = ?", *f.IsActive)
	}
	if f.CreatedByID != nil {
		q = q.Where("geoform_projects.created_by_id = ?", *f.CreatedByID)
	}
	return applySearch(q, f.Search, projectSearchColumns)
}

func (r *projectRepo) List(ctx context.Context, f ProjectFilter) ([]model.Project, error) {
	var items []model.Project
	q := applyOrdering(r.filtered(ctx, f), f.Ordering, "geoform_projects.id DESC")
	return items, q.Preload("CreatedBy").Find(&items).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CountGeoData counts the non-deleted GeoData of each project. Projects with
// no GeoData are absent from the result.
func (r *projectRepo) CountGeoData(ctx context.Context, mobileIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(mobileIDs))
	if len(mobileIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProjectMobileID string
		Count           int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.GeoData{}).
		Select("project_mobile_id, COUNT(*) AS count").
		Where("is_deleted = ? AND project_mobile_id IN ?", false, mobileIDs).
		Group("project_mobile_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProjectMobileID] = row.Count
	}
	return out, nil
}

func (r *projectRepo) Statistics(ctx context.Context, f ProjectFilter) (*ProjectStatistics, error) {
	stats := &ProjectStatistics{
		ByGeometryType: []GeometryTypeCount{},
		ByActiveStatus: []ActiveStatusCount{},
	}

	if err := r.filtered(ctx, f).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	err := r.filtered(ctx, f).
		Select("geoform_projects.geometry_type AS geometry_type, COUNT(*) AS count").
		Group("geoform_projects.geometry_type").
		Order("geoform_projects.geometry_type ASC").
		Scan(&stats.ByGeometryType).Error
	if err != nil {
		return nil, err
	}

	err = r.filtered(ctx, f).
		Select("geoform_projects.is_active AS is_active, COUNT(*) AS count").
		Group("geoform_projects.is_active").
		Order("geoform_projects.is_active ASC").
		Scan(&stats.ByActiveStatus).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
