package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	GeometryPoint   = "point"
	GeometryLine    = "line"
	GeometryPolygon = "polygon"
)

var GeometryTypes = []string{GeometryPoint, GeometryLine, GeometryPolygon}

func IsGeometryType(s string) bool {
	for _, g := range GeometryTypes {
		if g == s {
			return true
		}
	}
	return false
}

type Project struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	MobileID     string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"mobile_id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	GeometryType string         `gorm:"type:varchar(20);not null" json:"geometry_type"`
	FormFields   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,object" json:"form_fields"`

	CreatedByID *uint `gorm:"index" json:"created_by"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updated_at"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`

	// Project <-> User
	CreatedBy *User `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "geoform_projects" }
