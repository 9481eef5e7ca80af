package restoration

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/heartmarshall/restoration-backend/internal/domain"
	"github.com/heartmarshall/restoration-backend/internal/telemetry"
)

const meterName = "github.com/heartmarshall/restoration-backend/restoration"

type metrics struct {
	mutations      metric.Int64Counter
	conflicts      metric.Int64Counter
	rejections     metric.Int64Counter
	eventFailures  metric.Int64Counter
	notifyFailures metric.Int64Counter
}

// newMetrics registers the service counters on the global meter provider.
func newMetrics() *metrics {
	m := telemetry.Meter(meterName)
	return &metrics{
		mutations:      counter(m, "restoration.mutations", "Applied restoration mutations by event type"),
		conflicts:      counter(m, "restoration.conflicts", "Mutations lost to a concurrent status change"),
		rejections:     counter(m, "restoration.rejections", "Mutations rejected before any write"),
		eventFailures:  counter(m, "restoration.event_failures", "Audit events that could not be stored"),
		notifyFailures: counter(m, "restoration.notify_failures", "Notifications that could not be delivered"),
	}
}

func counter(m metric.Meter, name, desc string) metric.Int64Counter {
	c, err := m.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func (m *metrics) mutation(ctx context.Context, eventType domain.EventType) {
	m.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", string(eventType))))
}

func (m *metrics) rejection(ctx context.Context, reason string) {
	m.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
