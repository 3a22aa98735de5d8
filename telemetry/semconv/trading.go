package semconv

import (
	"go.opentelemetry.io/otel/attribute"
)

// Trading define las convenciones semánticas para atributos del dominio de
// trading de energía: gridpools, órdenes, trades y ventanas de entrega.
//
// Estos atributos acompañan a logs, métricas y spans para que cualquier
// operación pueda filtrarse por gridpool, orden o área de entrega.
var Trading struct {
	// GridpoolID identifica el gridpool sobre el que opera la llamada.
	GridpoolID attribute.Key

	// OrderID identifica la orden asignada por el mercado.
	OrderID attribute.Key

	// TradeID identifica un trade ejecutado.
	TradeID attribute.Key

	// Side indica el lado del mercado: "BUY" o "SELL".
	Side attribute.Key

	// OrderState indica el estado de la orden.
	// Ejemplos: "ACTIVE", "CANCELED", "FILLED".
	OrderState attribute.Key

	// DeliveryArea es el código del área de entrega.
	// Ejemplos: "10YDE-EON------1".
	DeliveryArea attribute.Key

	// DeliveryStart es el inicio de la ventana de entrega en RFC 3339.
	DeliveryStart attribute.Key

	// Currency es la moneda del precio.
	// Ejemplos: "EUR", "USD".
	Currency attribute.Key

	// Price es el precio de la orden como string decimal.
	Price attribute.Key

	// QuantityMW es la cantidad de la orden en MW como string decimal.
	QuantityMW attribute.Key

	// Stream identifica el stream de mercado al que refiere el evento.
	// Ejemplos: "gridpool-orders-42", "public-trades".
	Stream attribute.Key
}

func init() {
	Trading.GridpoolID = attribute.Key("gridpool_id")
	Trading.OrderID = attribute.Key("order_id")
	Trading.TradeID = attribute.Key("trade_id")
	Trading.Side = attribute.Key("side")
	Trading.OrderState = attribute.Key("order_state")
	Trading.DeliveryArea = attribute.Key("delivery_area")
	Trading.DeliveryStart = attribute.Key("delivery_start")
	Trading.Currency = attribute.Key("currency")
	Trading.Price = attribute.Key("price")
	Trading.QuantityMW = attribute.Key("quantity_mw")
	Trading.Stream = attribute.Key("stream")
}
