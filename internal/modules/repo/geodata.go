package repo

import (
	"context"
	"time"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/query"
	"gorm.io/gorm"
)

// GeoDataFilter narrows the visible GeoData: not deleted and belonging to a
// project that is not deleted. Nil fields are not applied.
type GeoDataFilter struct {
	ProjectMobileID *string
	CollectedByID   *uint
	CreatedAt       *time.Time
	Search          []string
	Ordering        []query.OrderField
}

type ProjectGeoDataCount struct {
	ProjectMobileID   string `json:"project_mobile_id"`
	ProjectName       string `json:"project_name"`
	// LegacyProjectName repeats ProjectName under the key older clients read.
	LegacyProjectName string `gorm:"-" json:"project__name"`
	Count             int64  `json:"count"`
}

const topProjectsLimit = 10

var geoDataSearchColumns = []string{
	"geoform_geodata.mobile_id",
	"geoform_projects.name",
}

type GeoDataRepo interface {
	List(ctx context.Context, f GeoDataFilter) ([]model.GeoData, error)
	GetByID(ctx context.Context, id uint) (*model.GeoData, error)
	ListByProject(ctx context.Context, projectMobileID string) ([]model.GeoData, error)
	Count(ctx context.Context, f GeoDataFilter) (int64, error)
	TopProjects(ctx context.Context, f GeoDataFilter) ([]ProjectGeoDataCount, error)
}

type geoDataRepo struct{ db *gorm.DB }

func NewGeoDataRepo(db *gorm.DB) GeoDataRepo {
	return &geoDataRepo{db: db}
}

func (r *geoDataRepo) visible(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.GeoData{}).
		Joins("JOIN geoform_projects ON geoform_projects.mobile_id = geoform_geodata.project_mobile_id").
		Where("geoform_geodata.is_deleted = ? AND geoform_projects.is_deleted = ?", false, false)
}

func (r *geoDataRepo) filtered(ctx context.Context, f GeoDataFilter) *gorm.DB {
	q := r.visible(ctx)
	if f.ProjectMobileID != nil {
		q = q.Where("geoform_geodata.project_mobile_id = ?", *f.ProjectMobileID)
	}
	if f.CollectedByID != nil {
		q = q.Where("geoform_geodata.collected_by_id = ?", *f.CollectedByID)
	}
	if f.CreatedAt != nil {
		q = q.Where("geoform_geodata.created_at = ?", *f.CreatedAt)
	}
	return applySearch(q, f.Search, geoDataSearchColumns)
}

func (r *geoDataRepo) List(ctx context.Context, f GeoDataFilter) ([]model.GeoData, error) {
	var items []model.GeoData
	q := applyOrdering(r.filtered(ctx, f), f.Ordering, "geoform_geodata.id DESC")
	return items, q.
		Select("geoform_geodata.*").
		Preload("Project").
		Preload("CollectedBy").
		Find(&items).Error
}

func (r *geoDataRepo) GetByID(ctx context.Context, id uint) (*model.GeoData, error) {
	var g model.GeoData
	err := r.visible(ctx).
		Select("geoform_geodata.*").
		Preload("Project.CreatedBy").
		Preload("CollectedBy").
		Where("geoform_geodata.id = ?", id).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *geoDataRepo) ListByProject(ctx context.Context, projectMobileID string) ([]model.GeoData, error) {
	var items []model.GeoData
	return items, r.db.WithContext(ctx).
		Preload("Project").
		Preload("CollectedBy").
		Where("project_mobile_id = ? AND is_deleted = ?", projectMobileID, false).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
}

func (r *geoDataRepo) Count(ctx context.Context, f GeoDataFilter) (int64, error) {
	var n int64
	return n, r.filtered(ctx, f).Count(&n).Error
}

// TopProjects ranks projects by matching GeoData, highest first, ties broken
// by project name and then mobile_id.
func (r *geoDataRepo) TopProjects(ctx context.Context, f GeoDataFilter) ([]ProjectGeoDataCount, error) {
	rows := []ProjectGeoDataCount{}
	return rows, r.topProjects(ctx, f).Scan(&rows).Error
}

func (r *geoDataRepo) topProjects(ctx context.Context, f GeoDataFilter) *gorm.DB {
	return r.filtered(ctx, f).
		Select("geoform_geodata.project_mobile_id AS project_mobile_id, geoform_projects.name AS project_name, COUNT(geoform_geodata.id) AS count").
		Group("geoform_geodata.project_mobile_id, geoform_projects.name").
		Order("count DESC").
		Order("project_name ASC").
		Order("project_mobile_id ASC").
		Limit(topProjectsLimit)
}
