package semconv

import (
	"go.opentelemetry.io/otel/attribute"
)

// Metrics define las convenciones semánticas para atributos OpenTelemetry
// usados en la recolección y categorización de métricas del sistema.
//
// Proporciona un conjunto estandarizado de atributos para dimensionar y
// clasificar las métricas generadas, permitiendo análisis detallados en
// herramientas como Prometheus y Grafana.
var Metrics struct {
	// Status indica el estado de la operación que se está midiendo.
	// Valores comunes: "ok", "error", "timeout", etc.
	Status attribute.Key

	// Result representa el resultado final de la operación.
	// Valores comunes: "success", "failure", "partial", etc.
	Result attribute.Key

	// Action identifica la acción que se realizó.
	// Valores comunes: "create", "update", "cancel", "list", etc.
	Action attribute.Key

	// Service identifica el servicio que genera la métrica.
	Service attribute.Key

	// Component identifica el componente específico dentro del servicio.
	// Ejemplos: "client", "broadcaster", "transport", etc.
	Component attribute.Key

	// Env identifica el entorno de ejecución.
	// Valores comunes: "development", "staging", "production", etc.
	Env attribute.Key

	// Size representa dimensiones de tamaño en la métrica.
	// Puede ser tamaño en bytes, cantidad de elementos, etc.
	Size attribute.Key

	// Duration representa una medida de tiempo, generalmente en segundos.
	Duration attribute.Key

	// Count representa un conteo simple de elementos o eventos.
	Count attribute.Key
}

func init() {
	// Atributos de estado y resultado
	Metrics.Status = attribute.Key("status")
	Metrics.Result = attribute.Key("result")
	Metrics.Action = attribute.Key("action")

	// Atributos de servicio
	Metrics.Service = attribute.Key("service")
	Metrics.Component = attribute.Key("component")
	Metrics.Env = attribute.Key("env")

	// Atributos de métricas específicas
	Metrics.Size = attribute.Key("size")
	Metrics.Duration = attribute.Key("duration")
	Metrics.Count = attribute.Key("count")
}
