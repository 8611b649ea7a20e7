package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/telemetry"
)

var testAuditTarget = AuditTarget{ExchangeName: "geoform.admin.audit", RoutingKey: "admin_log.created"}

func TestAuditService_Record(t *testing.T) {
	ctx := context.Background()
	staff := &model.User{ID: 3, Username: "admin", IsStaff: true}

	tests := []struct {
		name  string
		entry AuditEntry
		check func(*testing.T, *model.AdminLog)
	}{
		{
			name: "full entry",
			entry: AuditEntry{
				Actor:      staff,
				Action:     model.ActionView,
				Resource:   "project_geodata",
				ResourceID: "P1",
				Details:    map[string]any{"geodata_count": 2},
				IP:         "10.0.0.1",
			},
			check: func(t *testing.T, l *model.AdminLog) {
				assert.Equal(t, uint(3), *l.UserID)
				assert.Equal(t, "P1", *l.ResourceID)
				assert.Equal(t, "10.0.0.1", *l.IPAddress)
				assert.JSONEq(t, `{"geodata_count":2}`, string(l.Details))
			},
		},
		{
			name:  "list access has no resource id or details",
			entry: AuditEntry{Actor: staff, Action: model.ActionView, Resource: "project", IP: "::1"},
			check: func(t *testing.T, l *model.AdminLog) {
				assert.Nil(t, l.ResourceID)
				assert.Nil(t, l.Details)
				assert.Equal(t, "::1", *l.IPAddress)
			},
		},
		{
			name:  "unparseable address is stored as null",
			entry: AuditEntry{Actor: staff, Action: model.ActionView, Resource: "geodata", IP: "unknown"},
			check: func(t *testing.T, l *model.AdminLog) {
				assert.Nil(t, l.IPAddress)
			},
		},
		{
			name:  "anonymous actor",
			entry: AuditEntry{Action: model.ActionView, Resource: "geodata"},
			check: func(t *testing.T, l *model.AdminLog) {
				assert.Nil(t, l.UserID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockAdminLogRepo{}
			var stored *model.AdminLog
			r.On("Create", ctx, mock.AnythingOfType("*model.AdminLog")).
				Run(func(args mock.Arguments) { stored = args.Get(1).(*model.AdminLog) }).
				Return(nil).Once()

			NewAuditService(r, nil, testAuditTarget, zap.NewNop()).Record(ctx, tt.entry)

			r.AssertExpectations(t)
			assert.Equal(t, tt.entry.Action, stored.Action)
			assert.Equal(t, tt.entry.Resource, stored.Resource)
			tt.check(t, stored)
		})
	}
}

func TestAuditService_Record_StoreFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)

	r := &MockAdminLogRepo{}
	r.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))
	pub := &MockAuditPublisher{}

	assert.NotPanics(t, func() {
		NewAuditService(r, pub, testAuditTarget, zap.New(core)).Record(ctx, AuditEntry{
			Action:   model.ActionView,
			Resource: "project",
		})
	})

	assert.Equal(t, 1, logs.FilterMessage("failed to write admin log").Len())
	pub.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuditService_Record_Publishes(t *testing.T) {
	ctx := context.Background()

	r := &MockAdminLogRepo{}
	r.On("Create", ctx, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*model.AdminLog).ID = 42 }).
		Return(nil)

	pub := &MockAuditPublisher{}
	pub.On("PublishJSON", ctx, "geoform.admin.audit", "admin_log.created", mock.MatchedBy(func(e AuditEvent) bool {
		return e.ID == 42 && e.Action == model.ActionExport && e.Details["format"] == "csv"
	})).Return(nil).Once()

	NewAuditService(r, pub, testAuditTarget, zap.NewNop()).Record(ctx, AuditEntry{
		Action:   model.ActionExport,
		Resource: "geodata",
		Details:  map[string]any{"format": "csv"},
	})

	pub.AssertExpectations(t)
}

func TestAuditService_Record_PublishFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)

	r := &MockAdminLogRepo{}
	r.On("Create", ctx, mock.Anything).Return(nil)
	pub := &MockAuditPublisher{}
	pub.On("PublishJSON", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	NewAuditService(r, pub, testAuditTarget, zap.New(core)).Record(ctx, AuditEntry{
		Action:   model.ActionView,
		Resource: "geodata",
	})

	r.AssertNumberOfCalls(t, "Create", 1)
	assert.Equal(t, 1, logs.FilterMessage("failed to publish admin log").Len())
}

func TestAuditService_Record_UnknownAction(t *testing.T) {
	r := &MockAdminLogRepo{}

	NewAuditService(r, nil, testAuditTarget, zap.NewNop()).Record(context.Background(), AuditEntry{
		Action:   "delete",
		Resource: "project",
	})

	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuditService_Record_CountsEachRecord(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, telemetry.InitAuditMetrics())
	t.Cleanup(func() {
		otel.SetMeterProvider(noop.NewMeterProvider())
		require.NoError(t, telemetry.InitAuditMetrics())
	})

	ctx := context.Background()
	r := &MockAdminLogRepo{}
	r.On("Create", ctx, mock.Anything).Return(nil).Twice()
	svc := NewAuditService(r, nil, testAuditTarget, zap.NewNop())

	svc.Record(ctx, AuditEntry{Action: model.ActionView, Resource: "project"})
	svc.Record(ctx, AuditEntry{Action: model.ActionView, Resource: "geodata"})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	var records int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "admin_log.records" {
				for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
					records += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(2), records)
	r.AssertExpectations(t)
}
