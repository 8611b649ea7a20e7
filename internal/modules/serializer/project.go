package serializer

import (
	"time"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"gorm.io/datatypes"
)

// ProjectListItem is the compact project shape used by lists and as the
// nested project inside GeoData detail.
type ProjectListItem struct {
	ID                uint      `json:"id"`
	MobileID          string    `json:"mobile_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	GeometryType      string    `json:"geometry_type"`
	CreatedByUsername *string   `json:"created_by_username,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	IsActive          bool      `json:"is_active"`
	GeoDataCount      int64     `json:"geodata_count"`
}

type ProjectDetail struct {
	ID           uint           `json:"id"`
	MobileID     string         `json:"mobile_id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	GeometryType string         `json:"geometry_type"`
	FormFields   datatypes.JSON `json:"form_fields" swaggertype:"array,object"`
	CreatedBy    *User          `json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	IsActive     bool           `json:"is_active"`
	IsDeleted    bool           `json:"is_deleted"`
}

func NewProjectListItem(p *model.Project, geoDataCount int64) ProjectListItem {
	return ProjectListItem{
		ID:                p.ID,
		MobileID:          p.MobileID,
		Name:              p.Name,
		Description:       p.Description,
		GeometryType:      p.GeometryType,
		CreatedByUsername: username(p.CreatedBy),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		IsActive:          p.IsActive,
		GeoDataCount:      geoDataCount,
	}
}

// NewProjectList renders projects with counts keyed by mobile_id; a missing
// key means zero.
func NewProjectList(items []model.Project, counts map[string]int64) []ProjectListItem {
	out := make([]ProjectListItem, len(items))
	for i := range items {
		out[i] = NewProjectListItem(&items[i], counts[items[i].MobileID])
	}
	return out
}

func NewProjectDetail(p *model.Project) ProjectDetail {
	return ProjectDetail{
		ID:           p.ID,
		MobileID:     p.MobileID,
		Name:         p.Name,
		Description:  p.Description,
		GeometryType: p.GeometryType,
		FormFields:   jsonOr(p.FormFields, "[]"),
		CreatedBy:    NewUser(p.CreatedBy),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		IsActive:     p.IsActive,
		IsDeleted:    p.IsDeleted,
	}
}

// jsonOr substitutes def for an empty column so payloads stay valid JSON.
func jsonOr(v datatypes.JSON, def string) datatypes.JSON {
	if len(v) == 0 {
		return datatypes.JSON(def)
	}
	return v
}
