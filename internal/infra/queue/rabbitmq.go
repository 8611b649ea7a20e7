package mq

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/config"
)

// headerCarrier adapts amqp.Table to a TextMapCarrier so trace context rides
// along with each audit event.
type headerCarrier amqp.Table

func (c headerCarrier) Get(key string) string {
	v, ok := c[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func (c headerCarrier) Set(key, value string) { c[key] = value }

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// Dial opens the broker connection. amqps:// is forced when TLS is enabled.
func Dial(cfg *config.Config) (*amqp.Connection, error) {
	url := cfg.RabbitMQ.URL
	if !cfg.RabbitMQ.EnableTLS {
		return amqp.Dial(url)
	}
	if strings.HasPrefix(url, "amqp://") {
		url = "amqps://" + strings.TrimPrefix(url, "amqp://")
	}
	return amqp.DialTLS(url, &tls.Config{MinVersion: tls.VersionTLS12})
}

// Publisher sends JSON events to a topic exchange.
type Publisher struct {
	ch     *amqp.Channel
	log    *zap.Logger
	tracer trace.Tracer
}

// NewPublisher opens a channel and declares the audit exchange so publishing
// never targets a missing exchange.
func NewPublisher(conn *amqp.Connection, log *zap.Logger, cfg *config.Config) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(cfg.RabbitMQ.ExchangeName.Audit, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", cfg.RabbitMQ.ExchangeName.Audit, err)
	}
	return &Publisher{ch: ch, log: log, tracer: otel.Tracer(cfg.App.Name)}, nil
}

func (p *Publisher) Close() error { return p.ch.Close() }

func (p *Publisher) PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error {
	b, err := sonic.Marshal(body)
	if err != nil {
		return err
	}

	ctx, span := p.tracer.Start(ctx, "rabbitmq.publish",
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination", exchangeName),
			attribute.String("messaging.destination_kind", "exchange"),
			attribute.String("messaging.rabbitmq.routing_key", routingKey),
		))
	defer span.End()

	headers := amqp.Table{}
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier(headers))

	err = p.ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         b,
		Headers:      headers,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(attribute.Int("messaging.message.body.size", len(b)))
	p.log.Debug("published event", zap.String("exchange", exchangeName), zap.String("routing_key", routingKey))
	return nil
}
