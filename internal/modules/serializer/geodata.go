package serializer

import (
	"time"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"gorm.io/datatypes"
)

type GeoDataListItem struct {
	ID                  uint      `json:"id"`
	MobileID            string    `json:"mobile_id"`
	Project             string    `json:"project"`
	ProjectName         *string   `json:"project_name,omitempty"`
	CollectedByUsername *string   `json:"collected_by_username,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type GeoDataDetail struct {
	ID          uint             `json:"id"`
	MobileID    string           `json:"mobile_id"`
	Project     *ProjectListItem `json:"project"`
	FormData    datatypes.JSON   `json:"form_data" swaggertype:"object"`
	Points      datatypes.JSON   `json:"points" swaggertype:"array,object"`
	CollectedBy *User            `json:"collected_by"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	SyncedAt    time.Time        `json:"synced_at"`
	IsDeleted   bool             `json:"is_deleted"`
}

func NewGeoDataListItem(g *model.GeoData) GeoDataListItem {
	item := GeoDataListItem{
		ID:                  g.ID,
		MobileID:            g.MobileID,
		Project:             g.ProjectMobileID,
		CollectedByUsername: username(g.CollectedBy),
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
	if g.Project != nil {
		name := g.Project.Name
		item.ProjectName = &name
	}
	return item
}

func NewGeoDataList(items []model.GeoData) []GeoDataListItem {
	out := make([]GeoDataListItem, len(items))
	for i := range items {
		out[i] = NewGeoDataListItem(&items[i])
	}
	return out
}

// NewGeoDataDetail nests the parent project in its list shape, which needs
// the project's own GeoData count.
func NewGeoDataDetail(g *model.GeoData, projectGeoDataCount int64) GeoDataDetail {
	d := GeoDataDetail{
		ID:          g.ID,
		MobileID:    g.MobileID,
		FormData:    jsonOr(g.FormData, "{}"),
		Points:      jsonOr(g.Points, "[]"),
		CollectedBy: NewUser(g.CollectedBy),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
		SyncedAt:    g.SyncedAt,
		IsDeleted:   g.IsDeleted,
	}
	if g.Project != nil {
		p := NewProjectListItem(g.Project, projectGeoDataCount)
		d.Project = &p
	}
	return d
}
