// Package telemetry proporciona observabilidad para gridpool mediante los tres pilares:
//
// 1. Logs: Registro estructurado JSON compatible con Loki
// 2. Métricas: OpenTelemetry exportables a Prometheus
// 3. Trazas: Trazado distribuido con OpenTelemetry/Jaeger
//
// Uso básico:
//
//	import (
//	    "context"
//	    "github.com/xKoRx/gridpool/telemetry"
//	)
//
//	func main() {
//	    ctx := context.Background()
//
//	    // Inicializar telemetría
//	    tel, err := telemetry.New(ctx, "gridpool-cli", "production")
//	    if err != nil {
//	        panic(err)
//	    }
//	    defer tel.Shutdown(ctx)
//
//	    // Registrar logs
//	    tel.Info(ctx, "orden creada")
//
//	    // Crear span
//	    ctx, span := tel.StartSpan(ctx, "create_order")
//	    defer span.End()
//
//	    // Registrar métricas
//	    tel.RecordCounter(ctx, "gridpool.order.result", 1)
//	}
//
// Los logs, métricas y trazas heredan los atributos acumulados en el
// contexto vía AppendCommonAttrs y compañía: un gridpool_id anotado una vez
// acompaña a toda la operación.
package telemetry
