package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Límites del mercado para precios y cantidades.
const (
	// PrecisionDecimalPrice máximo de decimales permitido en precios.
	PrecisionDecimalPrice = 2

	// PrecisionDecimalQuantity máximo de decimales permitido en cantidades.
	PrecisionDecimalQuantity = 1
)

var (
	// MinQuantityMW cantidad mínima negociable en MW.
	MinQuantityMW = decimal.RequireFromString("0.1")

	// MinPrice precio mínimo aceptado por el mercado.
	MinPrice = decimal.NewFromInt(-9999)

	// MaxPrice precio máximo aceptado por el mercado.
	MaxPrice = decimal.NewFromInt(9999)
)

// ValidateDecimalPlaces valida que un decimal no exceda un número de
// decimales en su representación mínima. Los ceros a la derecha no cuentan:
// 5.10 tiene un decimal significativo.
//
// Example:
//
//	err := domain.ValidateDecimalPlaces(decimal.NewFromFloat(50.255), 2, "price")
//	// => error (3 decimales)
func ValidateDecimalPlaces(value decimal.Decimal, places int, name string) error {
	if places < 0 {
		return NewValidationError(name, places, "decimal places cannot be negative")
	}

	// Truncar y comparar: si truncar a `places` no cambia el valor, la
	// representación mínima cabe en `places` decimales.
	if !value.Equal(value.Truncate(int32(places))) {
		return NewValidationError(name, value,
			fmt.Sprintf("%s must have at most %d decimal places", name, places))
	}

	return nil
}

// QuantizeQuantity redondea una cantidad a la precisión del mercado
// (1 decimal) con redondeo bancario, preservando el signo.
//
// Example:
//
//	domain.QuantizeQuantity(decimal.RequireFromString("0.15"))
//	// => 0.2
//	domain.QuantizeQuantity(decimal.RequireFromString("0.05"))
//	// => 0
func QuantizeQuantity(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(PrecisionDecimalQuantity)
}

// OrderParams reúne los parámetros de una orden para validación conjunta.
//
// Los campos Optional distinguen omitido, None explícito y valor presente;
// un campo omitido se salta todas sus validaciones.
type OrderParams struct {
	Price           Optional[Price]
	Quantity        Optional[Power]
	StopPrice       Optional[Price]
	PeakPriceDelta  Optional[Price]
	DisplayQuantity Optional[Power]
	DeliveryPeriod  *DeliveryPeriod
	ValidUntil      Optional[time.Time]
	ExecutionOption Optional[OrderExecutionOption]
	OrderType       *OrderType
}

// ValidateOrderParams valida los parámetros de una orden en orden fijo.
//
// La validación es pura: sin efectos secundarios, idempotente, y siempre
// previa a cualquier llamada de red. El orden de los chequeos es estable
// para que el primer error reportado sea determinista.
func ValidateOrderParams(p OrderParams) error {
	if price, ok := p.Price.Get(); ok {
		if price.Amount.LessThan(MinPrice) || price.Amount.GreaterThan(MaxPrice) {
			return NewValidationError("price", price.Amount,
				fmt.Sprintf("price must be between %s and %s", MinPrice.String(), MaxPrice.String()))
		}
		if err := ValidateDecimalPlaces(price.Amount, PrecisionDecimalPrice, "price"); err != nil {
			return err
		}
	}

	if quantity, ok := p.Quantity.Get(); ok {
		if !quantity.MW.IsPositive() {
			return NewValidationError("quantity", quantity.MW, "Quantity must be strictly positive")
		}
		if quantity.MW.LessThan(MinQuantityMW) {
			return NewValidationError("quantity", quantity.MW, "Quantity must be at least 0.1 MW.")
		}
		if err := ValidateDecimalPlaces(quantity.MW, PrecisionDecimalQuantity, "quantity"); err != nil {
			return err
		}
	}

	if p.StopPrice.HasValue() {
		return NewNotSupportedError("stop_price", "STOP_LIMIT orders are not supported yet, so stop_price cannot be set.")
	}
	if p.PeakPriceDelta.HasValue() {
		return NewNotSupportedError("peak_price_delta", "ICEBERG orders are not supported yet, so peak_price_delta cannot be set.")
	}
	if p.DisplayQuantity.HasValue() {
		return NewNotSupportedError("display_quantity", "ICEBERG orders are not supported yet, so display_quantity cannot be set.")
	}

	if p.DeliveryPeriod != nil {
		if !p.DeliveryPeriod.Start.After(time.Now().UTC()) {
			return NewValidationError("delivery_period", p.DeliveryPeriod.Start,
				"delivery_period must be in the future")
		}
	}

	if validUntil, ok := p.ValidUntil.Get(); ok {
		// El chequeo cruzado con execution_option tiene precedencia sobre
		// el chequeo de futuro.
		if opt, ok := p.ExecutionOption.Get(); ok {
			switch opt {
			case ExecutionOptionAON, ExecutionOptionFOK, ExecutionOptionIOC:
				return NewValidationError("valid_until", validUntil,
					"valid_until must be None when execution_option is set to AON, FOK, or IOC")
			}
		}
		if !validUntil.UTC().After(time.Now().UTC()) {
			return NewValidationError("valid_until", validUntil, "valid_until must be in the future")
		}
	}

	if p.OrderType != nil && *p.OrderType != OrderTypeLimit {
		return NewNotSupportedError("order_type", "Currently only limit orders are supported.")
	}

	return nil
}
