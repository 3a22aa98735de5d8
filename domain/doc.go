// Package domain contiene los tipos de valor, enums, validadores y
// transformadores del dominio de trading de energía sobre gridpools.
//
// # Responsabilidades
//
// - Tipos de valor (Price, Power, DeliveryArea, DeliveryPeriod, Order, Trade)
// - Enums tipados con mapeo hacia/desde el esquema wire
// - Validaciones de parámetros de órdenes (previas a cualquier llamada de red)
// - Construcción de field masks para actualizaciones parciales
// - Filtros con clave canónica para de-duplicación de streams
// - Sistema de errores del dominio de trading
//
// # Precisión decimal
//
// Toda la aritmética de precios y cantidades usa decimal.Decimal, nunca
// float64. El mercado exige como máximo 2 decimales en precios y 1 decimal
// en cantidades (MW); los validadores rechazan cualquier exceso.
//
//	price := decimal.NewFromFloat(50.25)
//	err := domain.ValidateDecimalPlaces(price, domain.PrecisionDecimalPrice, "price")
//
// # Validación de órdenes
//
// ValidateOrderParams valida el conjunto completo de parámetros en un orden
// fijo y determinista. Es pura: sin efectos secundarios, idempotente, y
// siempre corre antes de tocar la red.
//
//	params := domain.OrderParams{
//	    Price:    domain.Some(price),
//	    Quantity: domain.Some(quantity),
//	    ...
//	}
//	if err := domain.ValidateOrderParams(params); err != nil {
//	    // Parámetros inválidos; la red nunca se tocó
//	}
//
// # Actualizaciones parciales
//
// UpdateOrder distingue tres estados por campo: omitido (no tocar), None
// (limpiar explícitamente) y valor presente. UpdateMask construye el field
// mask con los campos no-omitidos en orden de declaración:
//
//	upd := domain.UpdateOrder{Price: domain.Some(newPrice)}
//	mask, fields, err := upd.UpdateMask()
//
// # Sistema de Errores
//
// Errores tipados con código, mensaje y causa:
//
//	err := domain.NewValidationError("price", price, "price must be within [-9999, 9999]")
//	if domain.IsInvalidArgument(err) {
//	    // Rechazado localmente, nunca llegó al servidor
//	}
//
// # Principios de Diseño
//
//  1. Validación temprana: rechazar parámetros inválidos antes de la red
//  2. Transformaciones explícitas: sin conversiones implícitas domain ↔ wire
//  3. Errores remotos intactos: el detalle del servidor se preserva verbatim
//  4. SDK-first: toda lógica reutilizable aquí, no en client ni en la CLI
package domain
