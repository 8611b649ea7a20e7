package telemetry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Version is reported as service.version on spans and metrics.
var Version = "0.1.0"

// TraceIDHeader echoes the request's trace id back to the caller.
const TraceIDHeader = "X-Trace-Id"

const exporterDialTimeout = 5 * time.Second

var tracerProvider *sdktrace.TracerProvider

func enabled(cfg *config.Config) bool {
	return cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != ""
}

func newResource(cfg *config.Config) (*resource.Resource, error) {
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.App.Name),
			semconv.ServiceVersionKey.String(Version),
			attribute.String("environment", cfg.App.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}
	return res, nil
}

// collectorEndpoint strips the scheme; the gRPC exporters want host:port.
func collectorEndpoint(cfg *config.Config) string {
	endpoint := strings.TrimPrefix(cfg.Telemetry.OtlpEndpoint, "http://")
	return strings.TrimPrefix(endpoint, "https://")
}

// SetupTracing installs the global tracer provider and the W3C propagator.
// It returns nil when telemetry is disabled.
func SetupTracing(cfg *config.Config) (*sdktrace.TracerProvider, error) {
	if !enabled(cfg) {
		return nil, nil
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), exporterDialTimeout)
	defer cancel()

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(collectorEndpoint(cfg)),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(cfg.Telemetry.SampleRatio)),
	)
	otel.SetTracerProvider(tracerProvider)

	// also carries trace context into published audit events
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tracerProvider, nil
}

// newSampler clamps ratio to (0, 1]; anything out of range samples everything.
func newSampler(ratio float64) sdktrace.Sampler {
	if ratio <= 0 || ratio >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.TraceIDRatioBased(ratio)
}

// Shutdown flushes and stops the tracer and meter providers.
func Shutdown(ctx context.Context) error {
	var errs []error
	if tracerProvider != nil {
		errs = append(errs, tracerProvider.Shutdown(ctx))
	}
	if meterProvider != nil {
		errs = append(errs, meterProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// GinMiddleware instruments requests under apiPrefix. Health checks and
// swagger assets are left untraced.
func GinMiddleware(serviceName, apiPrefix string) gin.HandlerFunc {
	otelMiddleware := otelgin.Middleware(serviceName)
	prefix := strings.TrimSuffix(apiPrefix, "/") + "/"

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, prefix) {
			otelMiddleware(c)
			return
		}
		c.Next()
	}
}

// TraceIDMiddleware sets X-Trace-Id on sampled requests.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.IsValid() {
			c.Header(TraceIDHeader, sc.TraceID().String())
		}
		c.Next()
	}
}
