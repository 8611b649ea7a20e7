package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionView   = "view"
	ActionExport = "export"
	ActionFilter = "filter"
	ActionSearch = "search"
)

var AdminLogActions = []string{ActionView, ActionExport, ActionFilter, ActionSearch}

func IsAdminLogAction(s string) bool {
	for _, a := range AdminLogActions {
		if a == s {
			return true
		}
	}
	return false
}

// AdminLog is an append-only record of one staff read. Rows are never updated.
type AdminLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     *uint          `gorm:"index" json:"user"`
	Action     string         `gorm:"type:varchar(50);not null;index" json:"action"`
	Resource   string         `gorm:"type:varchar(100);not null;index" json:"resource"`
	ResourceID *string        `gorm:"type:varchar(100)" json:"resource_id"`
	Details    datatypes.JSON `gorm:"type:jsonb" swaggertype:"object" json:"details"`
	IPAddress  *string        `gorm:"type:inet" json:"ip_address"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;not null;index" json:"created_at"`

	// AdminLog <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (AdminLog) TableName() string { return "admin_logs" }
