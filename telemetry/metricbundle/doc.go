// Package metricbundle agrupa las métricas de los dominios de gridpool:
// órdenes y streams de mercado.
//
// Cada bundle encapsula las métricas de su dominio y ofrece una interfaz
// unificada para registrarlas con atributos adecuados, siguiendo las
// convenciones semánticas del paquete semconv.
//
// Convención de nombres de métricas:
//
// Todas las métricas siguen el formato <namespace>.<entity>.<metric_type>:
//   - gridpool.order.result
//   - gridpool.order.duration
//   - gridpool.stream.events
//
// Uso básico:
//
//	tel, err := telemetry.New(ctx, "gridpool-cli", "production")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	orders := metricbundle.NewOrderMetrics(tel)
//
//	done := orders.StartDurationTimer(ctx,
//	    semconv.Metrics.Action.String("create"),
//	)
//	// ... crear la orden ...
//	done()
//	orders.RecordResult(ctx, err == nil,
//	    semconv.Metrics.Action.String("create"),
//	    semconv.Trading.GridpoolID.Int64(gridpoolID),
//	)
package metricbundle
