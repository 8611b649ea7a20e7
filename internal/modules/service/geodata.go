package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/repo"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/query"
	"gorm.io/gorm"
)

const (
	DefaultExportFormat = "csv"
	ExportPendingMsg    = "Export feature - coming soon"
)

var geoDataOrderingFields = map[string]string{
	"created_at": "geoform_geodata.created_at",
	"updated_at": "geoform_geodata.updated_at",
}

var geoDataDefaultOrdering = []query.OrderField{{Column: "geoform_geodata.created_at", Desc: true}}

type GeoDataService interface {
	List(ctx context.Context, in ListGeoDataInput) ([]model.GeoData, error)
	Get(ctx context.Context, id uint) (*GetGeoDataOutput, error)
	Statistics(ctx context.Context, in ListGeoDataInput) (*GeoDataStatisticsOutput, error)
	Export(ctx context.Context, in ExportGeoDataInput) (*ExportGeoDataOutput, error)
}

type geoDataService struct {
	r  repo.GeoDataRepo
	pr repo.ProjectRepo
}

func NewGeoDataService(r repo.GeoDataRepo, pr repo.ProjectRepo) GeoDataService {
	return &geoDataService{r: r, pr: pr}
}

type ListGeoDataInput struct {
	Project     *string    `json:"project"`
	CollectedBy *uint      `json:"collected_by"`
	CreatedAt   *time.Time `json:"created_at"`
	Search      string     `json:"search"`
	Ordering    string     `json:"ordering"`
}

func (in ListGeoDataInput) filter() repo.GeoDataFilter {
	return repo.GeoDataFilter{
		ProjectMobileID: in.Project,
		CollectedByID:   in.CollectedBy,
		CreatedAt:       in.CreatedAt,
		Search:          query.SearchTerms(in.Search),
		Ordering:        query.Ordering(in.Ordering, geoDataOrderingFields, geoDataDefaultOrdering),
	}
}

type GetGeoDataOutput struct {
	GeoData *model.GeoData
	// ProjectGeoDataCount is the parent project's non-deleted GeoData count.
	ProjectGeoDataCount int64
}

type GeoDataStatisticsOutput struct {
	TotalGeoData  int64                      `json:"total_geodata"`
	Top10Projects []repo.ProjectGeoDataCount `json:"top_10_projects"`
}

type ExportGeoDataInput struct {
	Format string `json:"format"`
}

type ExportGeoDataOutput struct {
	Message string `json:"message"`
	Format  string `json:"format"`
}

func (s *geoDataService) List(ctx context.Context, in ListGeoDataInput) ([]model.GeoData, error) {
	items, err := s.r.List(ctx, in.filter())
	if err != nil {
		return nil, fmt.Errorf("list geodata: %w", err)
	}
	return items, nil
}

func (s *geoDataService) Get(ctx context.Context, id uint) (*GetGeoDataOutput, error) {
	g, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get geodata: %w", err)
	}
	counts, err := s.pr.CountGeoData(ctx, []string{g.ProjectMobileID})
	if err != nil {
		return nil, fmt.Errorf("count project geodata: %w", err)
	}
	return &GetGeoDataOutput{GeoData: g, ProjectGeoDataCount: counts[g.ProjectMobileID]}, nil
}

func (s *geoDataService) Statistics(ctx context.Context, in ListGeoDataInput) (*GeoDataStatisticsOutput, error) {
	f := in.filter()
	total, err := s.r.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count geodata: %w", err)
	}
	top, err := s.r.TopProjects(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("rank projects: %w", err)
	}
	if top == nil {
		top = []repo.ProjectGeoDataCount{}
	}
	for i := range top {
		top[i].LegacyProjectName = top[i].ProjectName
	}
	return &GeoDataStatisticsOutput{TotalGeoData: total, Top10Projects: top}, nil
}

// Export does not produce a file yet; it echoes the requested format.
// TODO: stream CSV rows for the filtered GeoData once the column layout for form_data is agreed.
func (s *geoDataService) Export(_ context.Context, in ExportGeoDataInput) (*ExportGeoDataOutput, error) {
	format := in.Format
	if format == "" {
		format = DefaultExportFormat
	}
	return &ExportGeoDataOutput{Message: ExportPendingMsg, Format: format}, nil
}
