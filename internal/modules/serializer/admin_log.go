package serializer

import (
	"time"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"gorm.io/datatypes"
)

type AdminLog struct {
	ID           uint           `json:"id"`
	User         *uint          `json:"user"`
	UserUsername *string        `json:"user_username,omitempty"`
	Action       string         `json:"action"`
	Resource     string         `json:"resource"`
	ResourceID   *string        `json:"resource_id"`
	Details      datatypes.JSON `json:"details" swaggertype:"object"`
	IPAddress    *string        `json:"ip_address"`
	CreatedAt    time.Time      `json:"created_at"`
}

func NewAdminLog(l *model.AdminLog) AdminLog {
	return AdminLog{
		ID:           l.ID,
		User:         l.UserID,
		UserUsername: username(l.User),
		Action:       l.Action,
		Resource:     l.Resource,
		ResourceID:   l.ResourceID,
		Details:      jsonOr(l.Details, "null"),
		IPAddress:    l.IPAddress,
		CreatedAt:    l.CreatedAt,
	}
}

func NewAdminLogList(items []model.AdminLog) []AdminLog {
	out := make([]AdminLog, len(items))
	for i := range items {
		out[i] = NewAdminLog(&items[i])
	}
	return out
}
