package wire

// Números de enum del esquema del servicio. Se preservan tal cual viajan por
// el wire; la capa de dominio los traduce a sus propios tipos.

// Currency (Price.Currency en el esquema).
const (
	CurrencyUnspecified int32 = 0
	CurrencyUSD         int32 = 1
	CurrencyCAD         int32 = 2
	CurrencyEUR         int32 = 3
	CurrencyGBP         int32 = 4
	CurrencyCHF         int32 = 5
	CurrencyJPY         int32 = 6
	CurrencyAUD         int32 = 7
	CurrencyNZD         int32 = 8
	CurrencySGD         int32 = 9
)

// EnergyMarketCodeType.
const (
	EnergyMarketCodeTypeUnspecified int32 = 0
	EnergyMarketCodeTypeEuropeEIC   int32 = 1
	EnergyMarketCodeTypeUSNERC      int32 = 2
)

// DeliveryDuration.
const (
	DeliveryDurationUnspecified int32 = 0
	DeliveryDuration5           int32 = 1
	DeliveryDuration15          int32 = 2
	DeliveryDuration30          int32 = 3
	DeliveryDuration60          int32 = 4
)

// OrderType.
const (
	OrderTypeUnspecified int32 = 0
	OrderTypeLimit       int32 = 1
	OrderTypeStopLimit   int32 = 2
	OrderTypeIceberg     int32 = 3
	OrderTypeBlock       int32 = 4
)

// MarketSide.
const (
	MarketSideUnspecified int32 = 0
	MarketSideBuy         int32 = 1
	MarketSideSell        int32 = 2
)

// OrderExecutionOption.
const (
	OrderExecutionOptionUnspecified int32 = 0
	OrderExecutionOptionAON         int32 = 1
	OrderExecutionOptionFOK         int32 = 2
	OrderExecutionOptionIOC         int32 = 3
)

// OrderState.
const (
	OrderStateUnspecified     int32 = 0
	OrderStatePending         int32 = 1
	OrderStateActive          int32 = 2
	OrderStateCancelRequested int32 = 3
	OrderStateCancelRejected  int32 = 4
	OrderStateCanceled        int32 = 5
	OrderStateExpired         int32 = 6
	OrderStateFilled          int32 = 7
	OrderStatePartiallyFilled int32 = 8
	OrderStateRejected        int32 = 9
)

// TradeState.
const (
	TradeStateUnspecified     int32 = 0
	TradeStateActive          int32 = 1
	TradeStateCancelRequested int32 = 2
	TradeStateCancelRejected  int32 = 3
	TradeStateCanceled        int32 = 4
	TradeStateRecalled        int32 = 5
	TradeStateApproved        int32 = 6
)

// StateReason (OrderDetail.StateDetail.StateReason).
const (
	StateReasonUnspecified      int32 = 0
	StateReasonAdd              int32 = 1
	StateReasonModify           int32 = 2
	StateReasonDelete           int32 = 3
	StateReasonDeactivate       int32 = 4
	StateReasonReject           int32 = 5
	StateReasonFullExecution    int32 = 6
	StateReasonPartialExecution int32 = 7
	StateReasonValidationFail   int32 = 8
	StateReasonUnknown          int32 = 9
)

// MarketActor (OrderDetail.StateDetail.MarketActor).
const (
	MarketActorUnspecified    int32 = 0
	MarketActorUser           int32 = 1
	MarketActorMarketOperator int32 = 2
	MarketActorSystem         int32 = 3
)
