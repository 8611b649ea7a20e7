package service

import (
	"context"
	"net"
	"time"

	"github.com/bytedance/sonic"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/repo"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// AuditPublisher fans stored audit rows out to a message broker.
type AuditPublisher interface {
	PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error
}

// AuditTarget names where audit events are published.
type AuditTarget struct {
	ExchangeName string
	RoutingKey   string
}

// AuditEntry describes one access. Actor is nil only for anonymous callers,
// which the staff-only routes never let through.
type AuditEntry struct {
	Actor      *model.User
	Action     string
	Resource   string
	ResourceID string
	Details    map[string]any
	IP         string
}

// AuditEvent is the broker payload for a stored AdminLog row.
type AuditEvent struct {
	ID         uint           `json:"id"`
	UserID     *uint          `json:"user_id"`
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	ResourceID *string        `json:"resource_id"`
	Details    map[string]any `json:"details,omitempty"`
	IPAddress  *string        `json:"ip_address"`
	CreatedAt  time.Time      `json:"created_at"`
}

type AuditService interface {
	// Record appends one AdminLog row. Failures are logged, never returned:
	// the access being audited has already succeeded.
	Record(ctx context.Context, e AuditEntry)
}

type auditService struct {
	r         repo.AdminLogRepo
	publisher AuditPublisher
	target    AuditTarget
	log       *zap.Logger
}

// NewAuditService builds the audit logger. publisher may be nil to disable
// the broker fan-out.
func NewAuditService(r repo.AdminLogRepo, publisher AuditPublisher, target AuditTarget, log *zap.Logger) AuditService {
	return &auditService{
		r:         r,
		publisher: publisher,
		target:    target,
		log:       log,
	}
}

func (s *auditService) Record(ctx context.Context, e AuditEntry) {
	if !model.IsAdminLogAction(e.Action) {
		s.log.Warn("dropping admin log with unknown action", zap.String("action", e.Action), zap.String("resource", e.Resource))
		return
	}

	row := &model.AdminLog{
		Action:   e.Action,
		Resource: e.Resource,
	}
	if e.Actor != nil {
		id := e.Actor.ID
		row.UserID = &id
	}
	if e.ResourceID != "" {
		rid := e.ResourceID
		row.ResourceID = &rid
	}
	if ip := net.ParseIP(e.IP); ip != nil {
		addr := ip.String()
		row.IPAddress = &addr
	}
	if e.Details != nil {
		b, err := sonic.Marshal(e.Details)
		if err != nil {
			s.log.Warn("failed to encode admin log details", zap.Error(err), zap.String("resource", e.Resource))
		} else {
			row.Details = datatypes.JSON(b)
		}
	}

	if err := s.r.Create(ctx, row); err != nil {
		s.log.Warn("failed to write admin log",
			zap.Error(err),
			zap.String("action", e.Action),
			zap.String("resource", e.Resource),
			zap.String("resource_id", e.ResourceID),
		)
		telemetry.RecordAudit(ctx, e.Action, e.Resource, err, "persist")
		return
	}
	telemetry.RecordAudit(ctx, e.Action, e.Resource, nil, "")

	if s.publisher == nil {
		return
	}
	event := AuditEvent{
		ID:         row.ID,
		UserID:     row.UserID,
		Action:     row.Action,
		Resource:   row.Resource,
		ResourceID: row.ResourceID,
		Details:    e.Details,
		IPAddress:  row.IPAddress,
		CreatedAt:  row.CreatedAt,
	}
	if err := s.publisher.PublishJSON(ctx, s.target.ExchangeName, s.target.RoutingKey, event); err != nil {
		s.log.Warn("failed to publish admin log", zap.Error(err), zap.Uint("admin_log_id", row.ID))
		telemetry.RecordAudit(ctx, e.Action, e.Resource, err, "publish")
	}
}
