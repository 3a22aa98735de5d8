package metricbundle

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridpool/telemetry/semconv"
)

// MetricsClient define las operaciones que un bundle necesita para registrar
// métricas. telemetry.Client la satisface.
type MetricsClient interface {
	// RecordCounter incrementa un contador con un valor específico.
	RecordCounter(ctx context.Context, name string, value int64, attrs ...attribute.KeyValue)

	// RecordHistogram registra un valor en un histograma.
	RecordHistogram(ctx context.Context, name string, value float64, attrs ...attribute.KeyValue)
}

// BaseMetrics contiene los instrumentos comunes a todos los bundles: un
// contador de resultados y un histograma de duraciones por entidad.
type BaseMetrics struct {
	client    MetricsClient
	entity    string
	namespace string
}

// NewBaseMetrics crea una base para un bundle de métricas.
//
// namespace agrupa las métricas del módulo (ej. "gridpool") y entity nombra
// el dominio que el bundle monitorea (ej. "order", "stream").
func NewBaseMetrics(client MetricsClient, namespace, entity string) *BaseMetrics {
	return &BaseMetrics{
		client:    client,
		entity:    entity,
		namespace: namespace,
	}
}

// RecordResult incrementa el contador de resultados de la entidad.
//
// Atributos comunes a incluir:
//   - semconv.Metrics.Action.String("create"/"cancel"/...)
//   - semconv.Trading.GridpoolID.Int64(id)
func (bm *BaseMetrics) RecordResult(ctx context.Context, success bool, attrs ...attribute.KeyValue) {
	status := "ok"
	if !success {
		status = "error"
	}
	attrs = append(attrs, semconv.Metrics.Status.String(status))
	bm.client.RecordCounter(ctx, MetricName(bm.namespace, bm.entity, "result"), 1, attrs...)
}

// StartDurationTimer mide la duración de una operación. Retorna la función
// que registra el tiempo transcurrido; debe llamarse al finalizar.
//
// Example:
//
//	done := metrics.StartDurationTimer(ctx,
//	    semconv.Metrics.Action.String("create"),
//	)
//	// Realizar operación...
//	done()
func (bm *BaseMetrics) StartDurationTimer(ctx context.Context, attrs ...attribute.KeyValue) func() {
	start := time.Now()
	return func() {
		duration := time.Since(start).Seconds()
		bm.client.RecordHistogram(ctx, MetricName(bm.namespace, bm.entity, "duration"), duration, attrs...)
	}
}

// MetricName genera un nombre de métrica con el formato estándar
// <namespace>.<entity>.<metric_type>.
func MetricName(namespace, entity, metricType string) string {
	return strings.Join([]string{namespace, entity, metricType}, ".")
}
