package domain

import "github.com/xKoRx/gridpool/wire"

// Currency representa la moneda de un precio.
type Currency string

const (
	CurrencyUnspecified Currency = "UNSPECIFIED"
	CurrencyUSD         Currency = "USD"
	CurrencyCAD         Currency = "CAD"
	CurrencyEUR         Currency = "EUR"
	CurrencyGBP         Currency = "GBP"
	CurrencyCHF         Currency = "CHF"
	CurrencyJPY         Currency = "JPY"
	CurrencyAUD         Currency = "AUD"
	CurrencyNZD         Currency = "NZD"
	CurrencySGD         Currency = "SGD"
)

// CurrencyToWire convierte una Currency al entero del esquema wire.
func CurrencyToWire(c Currency) int32 {
	switch c {
	case CurrencyUSD:
		return wire.CurrencyUSD
	case CurrencyCAD:
		return wire.CurrencyCAD
	case CurrencyEUR:
		return wire.CurrencyEUR
	case CurrencyGBP:
		return wire.CurrencyGBP
	case CurrencyCHF:
		return wire.CurrencyCHF
	case CurrencyJPY:
		return wire.CurrencyJPY
	case CurrencyAUD:
		return wire.CurrencyAUD
	case CurrencyNZD:
		return wire.CurrencyNZD
	case CurrencySGD:
		return wire.CurrencySGD
	default:
		return wire.CurrencyUnspecified
	}
}

// CurrencyFromWire convierte un entero del esquema wire a Currency.
func CurrencyFromWire(c int32) Currency {
	switch c {
	case wire.CurrencyUSD:
		return CurrencyUSD
	case wire.CurrencyCAD:
		return CurrencyCAD
	case wire.CurrencyEUR:
		return CurrencyEUR
	case wire.CurrencyGBP:
		return CurrencyGBP
	case wire.CurrencyCHF:
		return CurrencyCHF
	case wire.CurrencyJPY:
		return CurrencyJPY
	case wire.CurrencyAUD:
		return CurrencyAUD
	case wire.CurrencyNZD:
		return CurrencyNZD
	case wire.CurrencySGD:
		return CurrencySGD
	default:
		return CurrencyUnspecified
	}
}

// EnergyMarketCodeType identifica el esquema de codificación de un área de
// entrega.
type EnergyMarketCodeType string

const (
	CodeTypeUnspecified EnergyMarketCodeType = "UNSPECIFIED"
	// CodeTypeEuropeEIC códigos EIC (Energy Identification Code) europeos.
	CodeTypeEuropeEIC EnergyMarketCodeType = "EUROPE_EIC"
	// CodeTypeUSNERC códigos NERC norteamericanos.
	CodeTypeUSNERC EnergyMarketCodeType = "US_NERC"
)

// CodeTypeToWire convierte un EnergyMarketCodeType al entero del esquema wire.
func CodeTypeToWire(ct EnergyMarketCodeType) int32 {
	switch ct {
	case CodeTypeEuropeEIC:
		return wire.EnergyMarketCodeTypeEuropeEIC
	case CodeTypeUSNERC:
		return wire.EnergyMarketCodeTypeUSNERC
	default:
		return wire.EnergyMarketCodeTypeUnspecified
	}
}

// CodeTypeFromWire convierte un entero del esquema wire a EnergyMarketCodeType.
func CodeTypeFromWire(ct int32) EnergyMarketCodeType {
	switch ct {
	case wire.EnergyMarketCodeTypeEuropeEIC:
		return CodeTypeEuropeEIC
	case wire.EnergyMarketCodeTypeUSNERC:
		return CodeTypeUSNERC
	default:
		return CodeTypeUnspecified
	}
}

// OrderType representa el tipo de una orden.
type OrderType string

const (
	OrderTypeUnspecified OrderType = "UNSPECIFIED"
	// OrderTypeLimit orden limitada: se ejecuta al precio indicado o mejor.
	// Único tipo soportado actualmente.
	OrderTypeLimit OrderType = "LIMIT"
	// OrderTypeStopLimit aún no soportado.
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
	// OrderTypeIceberg aún no soportado.
	OrderTypeIceberg OrderType = "ICEBERG"
	// OrderTypeBlock aún no soportado.
	OrderTypeBlock OrderType = "BLOCK"
)

// OrderTypeToWire convierte un OrderType al entero del esquema wire.
func OrderTypeToWire(t OrderType) int32 {
	switch t {
	case OrderTypeLimit:
		return wire.OrderTypeLimit
	case OrderTypeStopLimit:
		return wire.OrderTypeStopLimit
	case OrderTypeIceberg:
		return wire.OrderTypeIceberg
	case OrderTypeBlock:
		return wire.OrderTypeBlock
	default:
		return wire.OrderTypeUnspecified
	}
}

// OrderTypeFromWire convierte un entero del esquema wire a OrderType.
func OrderTypeFromWire(t int32) OrderType {
	switch t {
	case wire.OrderTypeLimit:
		return OrderTypeLimit
	case wire.OrderTypeStopLimit:
		return OrderTypeStopLimit
	case wire.OrderTypeIceberg:
		return OrderTypeIceberg
	case wire.OrderTypeBlock:
		return OrderTypeBlock
	default:
		return OrderTypeUnspecified
	}
}

// MarketSide representa el lado de mercado de una orden o trade.
type MarketSide string

const (
	SideUnspecified MarketSide = "UNSPECIFIED"
	SideBuy         MarketSide = "BUY"
	SideSell        MarketSide = "SELL"
)

// SideToWire convierte un MarketSide al entero del esquema wire.
func SideToWire(s MarketSide) int32 {
	switch s {
	case SideBuy:
		return wire.MarketSideBuy
	case SideSell:
		return wire.MarketSideSell
	default:
		return wire.MarketSideUnspecified
	}
}

// SideFromWire convierte un entero del esquema wire a MarketSide.
func SideFromWire(s int32) MarketSide {
	switch s {
	case wire.MarketSideBuy:
		return SideBuy
	case wire.MarketSideSell:
		return SideSell
	default:
		return SideUnspecified
	}
}

// OrderExecutionOption restringe cómo puede ejecutarse una orden.
type OrderExecutionOption string

const (
	ExecutionOptionNone OrderExecutionOption = "NONE"
	// ExecutionOptionAON all-or-none: se ejecuta completa o no se ejecuta.
	ExecutionOptionAON OrderExecutionOption = "AON"
	// ExecutionOptionFOK fill-or-kill: completa inmediatamente o se cancela.
	ExecutionOptionFOK OrderExecutionOption = "FOK"
	// ExecutionOptionIOC immediate-or-cancel: lo que no cruce de inmediato
	// se cancela.
	ExecutionOptionIOC OrderExecutionOption = "IOC"
)

// ExecutionOptionToWire convierte una OrderExecutionOption al entero del
// esquema wire.
func ExecutionOptionToWire(o OrderExecutionOption) int32 {
	switch o {
	case ExecutionOptionAON:
		return wire.OrderExecutionOptionAON
	case ExecutionOptionFOK:
		return wire.OrderExecutionOptionFOK
	case ExecutionOptionIOC:
		return wire.OrderExecutionOptionIOC
	default:
		return wire.OrderExecutionOptionUnspecified
	}
}

// ExecutionOptionFromWire convierte un entero del esquema wire a
// OrderExecutionOption.
func ExecutionOptionFromWire(o int32) OrderExecutionOption {
	switch o {
	case wire.OrderExecutionOptionAON:
		return ExecutionOptionAON
	case wire.OrderExecutionOptionFOK:
		return ExecutionOptionFOK
	case wire.OrderExecutionOptionIOC:
		return ExecutionOptionIOC
	default:
		return ExecutionOptionNone
	}
}

// OrderState representa el estado de una orden en el mercado.
type OrderState string

const (
	OrderStateUnspecified     OrderState = "UNSPECIFIED"
	OrderStatePending         OrderState = "PENDING"
	OrderStateActive          OrderState = "ACTIVE"
	OrderStateCancelRequested OrderState = "CANCEL_REQUESTED"
	OrderStateCancelRejected  OrderState = "CANCEL_REJECTED"
	OrderStateCanceled        OrderState = "CANCELED"
	OrderStateExpired         OrderState = "EXPIRED"
	OrderStateFilled          OrderState = "FILLED"
	OrderStatePartiallyFilled OrderState = "PARTIALLY_FILLED"
	OrderStateRejected        OrderState = "REJECTED"
)

// OrderStateToWire convierte un OrderState al entero del esquema wire.
func OrderStateToWire(s OrderState) int32 {
	switch s {
	case OrderStatePending:
		return wire.OrderStatePending
	case OrderStateActive:
		return wire.OrderStateActive
	case OrderStateCancelRequested:
		return wire.OrderStateCancelRequested
	case OrderStateCancelRejected:
		return wire.OrderStateCancelRejected
	case OrderStateCanceled:
		return wire.OrderStateCanceled
	case OrderStateExpired:
		return wire.OrderStateExpired
	case OrderStateFilled:
		return wire.OrderStateFilled
	case OrderStatePartiallyFilled:
		return wire.OrderStatePartiallyFilled
	case OrderStateRejected:
		return wire.OrderStateRejected
	default:
		return wire.OrderStateUnspecified
	}
}

// OrderStateFromWire convierte un entero del esquema wire a OrderState.
func OrderStateFromWire(s int32) OrderState {
	switch s {
	case wire.OrderStatePending:
		return OrderStatePending
	case wire.OrderStateActive:
		return OrderStateActive
	case wire.OrderStateCancelRequested:
		return OrderStateCancelRequested
	case wire.OrderStateCancelRejected:
		return OrderStateCancelRejected
	case wire.OrderStateCanceled:
		return OrderStateCanceled
	case wire.OrderStateExpired:
		return OrderStateExpired
	case wire.OrderStateFilled:
		return OrderStateFilled
	case wire.OrderStatePartiallyFilled:
		return OrderStatePartiallyFilled
	case wire.OrderStateRejected:
		return OrderStateRejected
	default:
		return OrderStateUnspecified
	}
}

// TradeState representa el estado de un trade ejecutado.
type TradeState string

const (
	TradeStateUnspecified     TradeState = "UNSPECIFIED"
	TradeStateActive          TradeState = "ACTIVE"
	TradeStateCancelRequested TradeState = "CANCEL_REQUESTED"
	TradeStateCancelRejected  TradeState = "CANCEL_REJECTED"
	TradeStateCanceled        TradeState = "CANCELED"
	TradeStateRecalled        TradeState = "RECALLED"
	TradeStateApproved        TradeState = "APPROVED"
)

// TradeStateToWire convierte un TradeState al entero del esquema wire.
func TradeStateToWire(s TradeState) int32 {
	switch s {
	case TradeStateActive:
		return wire.TradeStateActive
	case TradeStateCancelRequested:
		return wire.TradeStateCancelRequested
	case TradeStateCancelRejected:
		return wire.TradeStateCancelRejected
	case TradeStateCanceled:
		return wire.TradeStateCanceled
	case TradeStateRecalled:
		return wire.TradeStateRecalled
	case TradeStateApproved:
		return wire.TradeStateApproved
	default:
		return wire.TradeStateUnspecified
	}
}

// TradeStateFromWire convierte un entero del esquema wire a TradeState.
func TradeStateFromWire(s int32) TradeState {
	switch s {
	case wire.TradeStateActive:
		return TradeStateActive
	case wire.TradeStateCancelRequested:
		return TradeStateCancelRequested
	case wire.TradeStateCancelRejected:
		return TradeStateCancelRejected
	case wire.TradeStateCanceled:
		return TradeStateCanceled
	case wire.TradeStateRecalled:
		return TradeStateRecalled
	case wire.TradeStateApproved:
		return TradeStateApproved
	default:
		return TradeStateUnspecified
	}
}

// StateReason explica por qué una orden cambió de estado.
type StateReason string

const (
	StateReasonUnspecified      StateReason = "UNSPECIFIED"
	StateReasonAdd              StateReason = "ADD"
	StateReasonModify           StateReason = "MODIFY"
	StateReasonDelete           StateReason = "DELETE"
	StateReasonDeactivate       StateReason = "DEACTIVATE"
	StateReasonReject           StateReason = "REJECT"
	StateReasonFullExecution    StateReason = "FULL_EXECUTION"
	StateReasonPartialExecution StateReason = "PARTIAL_EXECUTION"
	StateReasonValidationFail   StateReason = "VALIDATION_FAIL"
	StateReasonUnknown          StateReason = "UNKNOWN"
)

// StateReasonToWire convierte un StateReason al entero del esquema wire.
func StateReasonToWire(r StateReason) int32 {
	switch r {
	case StateReasonAdd:
		return wire.StateReasonAdd
	case StateReasonModify:
		return wire.StateReasonModify
	case StateReasonDelete:
		return wire.StateReasonDelete
	case StateReasonDeactivate:
		return wire.StateReasonDeactivate
	case StateReasonReject:
		return wire.StateReasonReject
	case StateReasonFullExecution:
		return wire.StateReasonFullExecution
	case StateReasonPartialExecution:
		return wire.StateReasonPartialExecution
	case StateReasonValidationFail:
		return wire.StateReasonValidationFail
	case StateReasonUnknown:
		return wire.StateReasonUnknown
	default:
		return wire.StateReasonUnspecified
	}
}

// StateReasonFromWire convierte un entero del esquema wire a StateReason.
func StateReasonFromWire(r int32) StateReason {
	switch r {
	case wire.StateReasonAdd:
		return StateReasonAdd
	case wire.StateReasonModify:
		return StateReasonModify
	case wire.StateReasonDelete:
		return StateReasonDelete
	case wire.StateReasonDeactivate:
		return StateReasonDeactivate
	case wire.StateReasonReject:
		return StateReasonReject
	case wire.StateReasonFullExecution:
		return StateReasonFullExecution
	case wire.StateReasonPartialExecution:
		return StateReasonPartialExecution
	case wire.StateReasonValidationFail:
		return StateReasonValidationFail
	case wire.StateReasonUnknown:
		return StateReasonUnknown
	default:
		return StateReasonUnspecified
	}
}

// MarketActor identifica quién provocó un cambio de estado.
type MarketActor string

const (
	MarketActorUnspecified    MarketActor = "UNSPECIFIED"
	MarketActorUser           MarketActor = "USER"
	MarketActorMarketOperator MarketActor = "MARKET_OPERATOR"
	MarketActorSystem         MarketActor = "SYSTEM"
)

// MarketActorToWire convierte un MarketActor al entero del esquema wire.
func MarketActorToWire(a MarketActor) int32 {
	switch a {
	case MarketActorUser:
		return wire.MarketActorUser
	case MarketActorMarketOperator:
		return wire.MarketActorMarketOperator
	case MarketActorSystem:
		return wire.MarketActorSystem
	default:
		return wire.MarketActorUnspecified
	}
}

// MarketActorFromWire convierte un entero del esquema wire a MarketActor.
func MarketActorFromWire(a int32) MarketActor {
	switch a {
	case wire.MarketActorUser:
		return MarketActorUser
	case wire.MarketActorMarketOperator:
		return MarketActorMarketOperator
	case wire.MarketActorSystem:
		return MarketActorSystem
	default:
		return MarketActorUnspecified
	}
}
