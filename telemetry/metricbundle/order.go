package metricbundle

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridpool/telemetry/semconv"
)

// OrderMetrics agrupa las métricas de operaciones sobre órdenes de gridpool:
// creación, actualización, cancelación y consultas.
type OrderMetrics struct {
	*BaseMetrics
}

// NewOrderMetrics inicializa el bundle de métricas de órdenes.
func NewOrderMetrics(client MetricsClient) *OrderMetrics {
	return &OrderMetrics{
		BaseMetrics: NewBaseMetrics(client, "gridpool", "order"),
	}
}

// RecordOperation registra el resultado de una operación sobre órdenes.
//
// action es la operación ejecutada ("create", "update", "cancel",
// "cancel_all", "get", "list").
func (om *OrderMetrics) RecordOperation(ctx context.Context, action string, gridpoolID int64, success bool, attrs ...attribute.KeyValue) {
	base := []attribute.KeyValue{
		semconv.Metrics.Action.String(action),
		semconv.Trading.GridpoolID.Int64(gridpoolID),
	}
	om.RecordResult(ctx, success, append(base, attrs...)...)
}
