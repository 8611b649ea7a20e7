package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	auditMeterName = "geoform.admin.audit"
	exportInterval = 10 * time.Second
)

var (
	meterProvider *sdkmetric.MeterProvider

	auditRecordCounter  metric.Int64Counter
	auditFailureCounter metric.Int64Counter
)

// SetupMetrics installs the global meter provider, exporting over OTLP gRPC
// to the same collector as traces. It returns nil when telemetry is disabled.
func SetupMetrics(cfg *config.Config) (*sdkmetric.MeterProvider, error) {
	if !enabled(cfg) {
		return nil, nil
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), exporterDialTimeout)
	defer cancel()

	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(collectorEndpoint(cfg)),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(exportInterval))),
	)
	otel.SetMeterProvider(meterProvider)

	return meterProvider, nil
}

// InitAuditMetrics registers the audit instruments against the global meter
// provider, so it must run after SetupMetrics. Without a provider the
// instruments are no-ops.
func InitAuditMetrics() error {
	meter := otel.Meter(auditMeterName)

	var err error
	auditRecordCounter, err = meter.Int64Counter(
		"admin_log.records",
		metric.WithDescription("Number of admin actions written to the audit log"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return err
	}

	auditFailureCounter, err = meter.Int64Counter(
		"admin_log.failures",
		metric.WithDescription("Number of admin actions that could not be audited"),
		metric.WithUnit("{record}"),
	)
	return err
}

// RecordAudit counts one audit attempt. stage names the step that failed
// ("persist" or "publish") and is ignored on success.
func RecordAudit(ctx context.Context, action, resource string, err error, stage string) {
	attrs := metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("resource", resource),
	)
	if err == nil {
		if auditRecordCounter != nil {
			auditRecordCounter.Add(ctx, 1, attrs)
		}
		return
	}
	if auditFailureCounter != nil {
		auditFailureCounter.Add(ctx, 1, attrs, metric.WithAttributes(attribute.String("stage", stage)))
	}
}
