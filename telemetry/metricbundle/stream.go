package metricbundle

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridpool/telemetry/semconv"
)

// StreamMetrics agrupa las métricas de los streams de mercado: aperturas,
// eventos entregados y terminaciones.
type StreamMetrics struct {
	*BaseMetrics
}

// NewStreamMetrics inicializa el bundle de métricas de streams.
func NewStreamMetrics(client MetricsClient) *StreamMetrics {
	return &StreamMetrics{
		BaseMetrics: NewBaseMetrics(client, "gridpool", "stream"),
	}
}

// RecordOpened registra la apertura de un stream upstream.
func (sm *StreamMetrics) RecordOpened(ctx context.Context, stream string, attrs ...attribute.KeyValue) {
	base := []attribute.KeyValue{semconv.Trading.Stream.String(stream)}
	sm.client.RecordCounter(ctx, MetricName(sm.namespace, sm.entity, "opened"), 1, append(base, attrs...)...)
}

// RecordEvents registra eventos entregados por un stream.
func (sm *StreamMetrics) RecordEvents(ctx context.Context, stream string, count int64, attrs ...attribute.KeyValue) {
	base := []attribute.KeyValue{semconv.Trading.Stream.String(stream)}
	sm.client.RecordCounter(ctx, MetricName(sm.namespace, sm.entity, "events"), count, append(base, attrs...)...)
}

// RecordTerminated registra la terminación de un stream, exitosa o no.
func (sm *StreamMetrics) RecordTerminated(ctx context.Context, stream string, graceful bool, attrs ...attribute.KeyValue) {
	status := "ok"
	if !graceful {
		status = "error"
	}
	base := []attribute.KeyValue{
		semconv.Trading.Stream.String(stream),
		semconv.Metrics.Status.String(status),
	}
	sm.client.RecordCounter(ctx, MetricName(sm.namespace, sm.entity, "terminated"), 1, append(base, attrs...)...)
}
