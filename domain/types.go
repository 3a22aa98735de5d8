package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xKoRx/gridpool/wire"
)

// Price representa un precio con su moneda.
type Price struct {
	Amount   decimal.Decimal
	Currency Currency
}

// NewPrice crea un Price.
//
// Example:
//
//	p := domain.NewPrice(decimal.NewFromFloat(50.25), domain.CurrencyEUR)
func NewPrice(amount decimal.Decimal, currency Currency) Price {
	return Price{Amount: amount, Currency: currency}
}

// String retorna una representación legible del precio.
func (p Price) String() string {
	return fmt.Sprintf("%s %s", p.Amount.String(), p.Currency)
}

// Power representa una cantidad de potencia en megawatts.
type Power struct {
	MW decimal.Decimal
}

// NewPowerMW crea un Power desde una cantidad en MW.
func NewPowerMW(mw decimal.Decimal) Power {
	return Power{MW: mw}
}

// String retorna una representación legible de la potencia.
func (p Power) String() string {
	return fmt.Sprintf("%s MW", p.MW.String())
}

// DeliveryArea identifica el área geográfica de entrega de la energía.
type DeliveryArea struct {
	Code     string
	CodeType EnergyMarketCodeType
}

// NewDeliveryArea crea un DeliveryArea.
//
// Example:
//
//	area := domain.NewDeliveryArea("10YDE-EON------1", domain.CodeTypeEuropeEIC)
func NewDeliveryArea(code string, codeType EnergyMarketCodeType) DeliveryArea {
	return DeliveryArea{Code: code, CodeType: codeType}
}

// DeliveryDuration representa la duración de una ventana de entrega.
type DeliveryDuration string

const (
	DurationUnspecified DeliveryDuration = "UNSPECIFIED"
	Duration5Min        DeliveryDuration = "5_MIN"
	Duration15Min       DeliveryDuration = "15_MIN"
	Duration30Min       DeliveryDuration = "30_MIN"
	Duration60Min       DeliveryDuration = "60_MIN"
)

// DurationToWire convierte una DeliveryDuration al entero del esquema wire.
func DurationToWire(d DeliveryDuration) int32 {
	switch d {
	case Duration5Min:
		return wire.DeliveryDuration5
	case Duration15Min:
		return wire.DeliveryDuration15
	case Duration30Min:
		return wire.DeliveryDuration30
	case Duration60Min:
		return wire.DeliveryDuration60
	default:
		return wire.DeliveryDurationUnspecified
	}
}

// DurationFromWire convierte un entero del esquema wire a DeliveryDuration.
func DurationFromWire(d int32) DeliveryDuration {
	switch d {
	case wire.DeliveryDuration5:
		return Duration5Min
	case wire.DeliveryDuration15:
		return Duration15Min
	case wire.DeliveryDuration30:
		return Duration30Min
	case wire.DeliveryDuration60:
		return Duration60Min
	default:
		return DurationUnspecified
	}
}

// AsDuration retorna el time.Duration equivalente (0 si es UNSPECIFIED).
func (d DeliveryDuration) AsDuration() time.Duration {
	switch d {
	case Duration5Min:
		return 5 * time.Minute
	case Duration15Min:
		return 15 * time.Minute
	case Duration30Min:
		return 30 * time.Minute
	case Duration60Min:
		return 60 * time.Minute
	default:
		return 0
	}
}

// DeliveryPeriod representa la ventana temporal de entrega física.
//
// Start siempre se almacena en UTC.
type DeliveryPeriod struct {
	Start    time.Time
	Duration DeliveryDuration
}

// NewDeliveryPeriod crea un DeliveryPeriod validando la duración.
//
// Solo se aceptan duraciones de 5, 15, 30 o 60 minutos. El inicio se
// normaliza a UTC; un inicio cero se rechaza.
//
// Example:
//
//	period, err := domain.NewDeliveryPeriod(start, 15*time.Minute)
func NewDeliveryPeriod(start time.Time, d time.Duration) (DeliveryPeriod, error) {
	if start.IsZero() {
		return DeliveryPeriod{}, NewValidationError("delivery_period.start", start, "start time cannot be zero")
	}

	var dd DeliveryDuration
	switch d {
	case 5 * time.Minute:
		dd = Duration5Min
	case 15 * time.Minute:
		dd = Duration15Min
	case 30 * time.Minute:
		dd = Duration30Min
	case 60 * time.Minute:
		dd = Duration60Min
	default:
		return DeliveryPeriod{}, NewValidationError("delivery_period.duration", d, "duration must be 5, 15, 30 or 60 minutes")
	}

	return DeliveryPeriod{Start: start.UTC(), Duration: dd}, nil
}

// End retorna el fin de la ventana de entrega.
func (p DeliveryPeriod) End() time.Time {
	return p.Start.Add(p.Duration.AsDuration())
}

// Order representa una orden tal como se envía al mercado.
//
// Los campos opcionales son punteros; nil significa ausente.
type Order struct {
	DeliveryArea   DeliveryArea
	DeliveryPeriod DeliveryPeriod
	Type           OrderType
	Side           MarketSide
	Price          Price
	Quantity       Power

	StopPrice       *Price
	PeakPriceDelta  *Price
	DisplayQuantity *Power
	ExecutionOption *OrderExecutionOption
	ValidUntil      *time.Time
	Payload         map[string]*structpb.Value
	Tag             string
}

// StateDetail describe el estado de una orden, su causa y el actor que lo
// provocó.
type StateDetail struct {
	State       OrderState
	StateReason StateReason
	MarketActor MarketActor
}

// OrderDetail representa una orden con identidad y estado asignados por el
// mercado.
type OrderDetail struct {
	OrderID          int64
	Order            Order
	StateDetail      StateDetail
	OpenQuantity     Power
	FilledQuantity   Power
	CreateTime       time.Time
	ModificationTime time.Time
}

// NewOrderDetail crea un OrderDetail normalizando los tiempos a UTC.
//
// Los tiempos de creación y modificación cero se rechazan: el mercado
// siempre los asigna.
func NewOrderDetail(orderID int64, order Order, state StateDetail, open, filled Power, createTime, modificationTime time.Time) (OrderDetail, error) {
	if createTime.IsZero() {
		return OrderDetail{}, NewValidationError("create_time", createTime, "create time cannot be zero")
	}
	if modificationTime.IsZero() {
		return OrderDetail{}, NewValidationError("modification_time", modificationTime, "modification time cannot be zero")
	}

	return OrderDetail{
		OrderID:          orderID,
		Order:            order,
		StateDetail:      state,
		OpenQuantity:     open,
		FilledQuantity:   filled,
		CreateTime:       createTime.UTC(),
		ModificationTime: modificationTime.UTC(),
	}, nil
}

// Trade representa un cruce ejecutado de una orden propia del gridpool.
type Trade struct {
	ID             int64
	OrderID        int64
	Side           MarketSide
	DeliveryArea   DeliveryArea
	DeliveryPeriod DeliveryPeriod
	ExecutionTime  time.Time
	Price          Price
	Quantity       Power
	State          TradeState
}

// PublicTrade representa un cruce ejecutado anónimo de todo el mercado.
type PublicTrade struct {
	ID               int64
	BuyDeliveryArea  DeliveryArea
	SellDeliveryArea DeliveryArea
	DeliveryPeriod   DeliveryPeriod
	ExecutionTime    time.Time
	Price            Price
	Quantity         Power
	State            TradeState
}
