package model

import (
	"time"

	"gorm.io/datatypes"
)

// GeoData is one record submitted by the mobile collector. CreatedAt and
// UpdatedAt come from the device; only SyncedAt is stamped by the server.
type GeoData struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	MobileID        string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"mobile_id"`
	ProjectMobileID string         `gorm:"column:project_mobile_id;type:varchar(100);not null;index" json:"project"`
	FormData        datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" swaggertype:"object" json:"form_data"`
	Points          datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,object" json:"points"`

	CollectedByID *uint `gorm:"index" json:"collected_by"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null" json:"updated_at"`
	SyncedAt  time.Time `gorm:"autoUpdateTime;not null" json:"synced_at"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`

	// GeoData <-> Project, keyed on the project's natural mobile_id
	Project *Project `gorm:"foreignKey:ProjectMobileID;references:MobileID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// GeoData <-> User
	CollectedBy *User `gorm:"foreignKey:CollectedByID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (GeoData) TableName() string { return "geoform_geodata" }
