// Package semconv define convenciones semánticas para atributos OpenTelemetry
// utilizados en la telemetría de gridpool.
//
// Cada dominio tiene su propio conjunto de atributos predefinidos que siguen
// las mejores prácticas de OpenTelemetry y facilitan la correlación entre
// logs, métricas y trazas.
//
// Uso básico:
//
//	// Para logs
//	attrs := []attribute.KeyValue{
//	    semconv.Logs.Feature.String("orders"),
//	    semconv.Logs.Event.String("order_created"),
//	}
//
//	// Para métricas
//	metricAttrs := []attribute.KeyValue{
//	    semconv.Metrics.Action.String("create"),
//	    semconv.Metrics.Status.String("ok"),
//	    semconv.Trading.GridpoolID.Int64(42),
//	}
//
// Las convenciones definidas en este paquete permiten una instrumentación
// consistente en todo el módulo y facilitan la observabilidad del sistema.
package semconv
