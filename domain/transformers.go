package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/xKoRx/gridpool/wire"
)

// Transformadores Domain ↔ Wire. Las conversiones son explícitas y sin
// pérdida: los decimales viajan como strings y los tiempos como timestamps
// protobuf en UTC.

// PriceToWire convierte un Price al mensaje wire.
func PriceToWire(p Price) *wire.Price {
	return &wire.Price{
		Amount:   &wire.Decimal{Value: p.Amount.String()},
		Currency: CurrencyToWire(p.Currency),
	}
}

// PriceFromWire convierte un mensaje wire a Price.
func PriceFromWire(p *wire.Price) (Price, error) {
	if p == nil {
		return Price{}, NewValidationError("price", nil, "price message is nil")
	}
	amount, err := decimalFromWire(p.Amount, "price.amount")
	if err != nil {
		return Price{}, err
	}
	return Price{Amount: amount, Currency: CurrencyFromWire(p.Currency)}, nil
}

// PowerToWire convierte un Power al mensaje wire.
func PowerToWire(p Power) *wire.Power {
	return &wire.Power{MW: &wire.Decimal{Value: p.MW.String()}}
}

// PowerFromWire convierte un mensaje wire a Power.
func PowerFromWire(p *wire.Power) (Power, error) {
	if p == nil {
		return Power{}, NewValidationError("power", nil, "power message is nil")
	}
	mw, err := decimalFromWire(p.MW, "power.mw")
	if err != nil {
		return Power{}, err
	}
	return Power{MW: mw}, nil
}

// DeliveryAreaToWire convierte un DeliveryArea al mensaje wire.
func DeliveryAreaToWire(a DeliveryArea) *wire.DeliveryArea {
	return &wire.DeliveryArea{Code: a.Code, CodeType: CodeTypeToWire(a.CodeType)}
}

// DeliveryAreaFromWire convierte un mensaje wire a DeliveryArea.
func DeliveryAreaFromWire(a *wire.DeliveryArea) (DeliveryArea, error) {
	if a == nil {
		return DeliveryArea{}, NewValidationError("delivery_area", nil, "delivery area message is nil")
	}
	return DeliveryArea{Code: a.Code, CodeType: CodeTypeFromWire(a.CodeType)}, nil
}

// DeliveryPeriodToWire convierte un DeliveryPeriod al mensaje wire.
func DeliveryPeriodToWire(p DeliveryPeriod) *wire.DeliveryPeriod {
	return &wire.DeliveryPeriod{
		Start:    timestamppb.New(p.Start.UTC()),
		Duration: DurationToWire(p.Duration),
	}
}

// DeliveryPeriodFromWire convierte un mensaje wire a DeliveryPeriod.
func DeliveryPeriodFromWire(p *wire.DeliveryPeriod) (DeliveryPeriod, error) {
	if p == nil {
		return DeliveryPeriod{}, NewValidationError("delivery_period", nil, "delivery period message is nil")
	}
	if p.Start == nil {
		return DeliveryPeriod{}, NewValidationError("delivery_period.start", nil, "start timestamp is nil")
	}
	return DeliveryPeriod{
		Start:    p.Start.AsTime().UTC(),
		Duration: DurationFromWire(p.Duration),
	}, nil
}

// OrderToWire convierte una Order al mensaje wire.
func OrderToWire(o Order) *wire.Order {
	w := &wire.Order{
		DeliveryArea:   DeliveryAreaToWire(o.DeliveryArea),
		DeliveryPeriod: DeliveryPeriodToWire(o.DeliveryPeriod),
		Type:           OrderTypeToWire(o.Type),
		Side:           SideToWire(o.Side),
		Price:          PriceToWire(o.Price),
		Quantity:       PowerToWire(o.Quantity),
		Payload:        o.Payload,
		Tag:            o.Tag,
	}
	if o.StopPrice != nil {
		w.StopPrice = PriceToWire(*o.StopPrice)
	}
	if o.PeakPriceDelta != nil {
		w.PeakPriceDelta = PriceToWire(*o.PeakPriceDelta)
	}
	if o.DisplayQuantity != nil {
		w.DisplayQuantity = PowerToWire(*o.DisplayQuantity)
	}
	if o.ExecutionOption != nil {
		w.ExecutionOption = ExecutionOptionToWire(*o.ExecutionOption)
	}
	if o.ValidUntil != nil {
		w.ValidUntil = timestamppb.New(o.ValidUntil.UTC())
	}
	return w
}

// OrderFromWire convierte un mensaje wire a Order.
func OrderFromWire(w *wire.Order) (Order, error) {
	if w == nil {
		return Order{}, NewValidationError("order", nil, "order message is nil")
	}

	area, err := DeliveryAreaFromWire(w.DeliveryArea)
	if err != nil {
		return Order{}, err
	}
	period, err := DeliveryPeriodFromWire(w.DeliveryPeriod)
	if err != nil {
		return Order{}, err
	}
	price, err := PriceFromWire(w.Price)
	if err != nil {
		return Order{}, err
	}
	quantity, err := PowerFromWire(w.Quantity)
	if err != nil {
		return Order{}, err
	}

	o := Order{
		DeliveryArea:   area,
		DeliveryPeriod: period,
		Type:           OrderTypeFromWire(w.Type),
		Side:           SideFromWire(w.Side),
		Price:          price,
		Quantity:       quantity,
		Payload:        w.Payload,
		Tag:            w.Tag,
	}

	if w.StopPrice != nil {
		sp, err := PriceFromWire(w.StopPrice)
		if err != nil {
			return Order{}, err
		}
		o.StopPrice = &sp
	}
	if w.PeakPriceDelta != nil {
		ppd, err := PriceFromWire(w.PeakPriceDelta)
		if err != nil {
			return Order{}, err
		}
		o.PeakPriceDelta = &ppd
	}
	if w.DisplayQuantity != nil {
		dq, err := PowerFromWire(w.DisplayQuantity)
		if err != nil {
			return Order{}, err
		}
		o.DisplayQuantity = &dq
	}
	if w.ExecutionOption != wire.OrderExecutionOptionUnspecified {
		opt := ExecutionOptionFromWire(w.ExecutionOption)
		o.ExecutionOption = &opt
	}
	if w.ValidUntil != nil {
		vu := w.ValidUntil.AsTime().UTC()
		o.ValidUntil = &vu
	}

	return o, nil
}

// StateDetailFromWire convierte un mensaje wire a StateDetail.
func StateDetailFromWire(s *wire.StateDetail) StateDetail {
	if s == nil {
		return StateDetail{
			State:       OrderStateUnspecified,
			StateReason: StateReasonUnspecified,
			MarketActor: MarketActorUnspecified,
		}
	}
	return StateDetail{
		State:       OrderStateFromWire(s.State),
		StateReason: StateReasonFromWire(s.StateReason),
		MarketActor: MarketActorFromWire(s.MarketActor),
	}
}

// OrderDetailFromWire convierte un mensaje wire a OrderDetail.
func OrderDetailFromWire(w *wire.OrderDetail) (OrderDetail, error) {
	if w == nil {
		return OrderDetail{}, NewValidationError("order_detail", nil, "order detail message is nil")
	}

	order, err := OrderFromWire(w.Order)
	if err != nil {
		return OrderDetail{}, err
	}

	open := Power{MW: decimal.Zero}
	if w.OpenQuantity != nil {
		open, err = PowerFromWire(w.OpenQuantity)
		if err != nil {
			return OrderDetail{}, err
		}
	}
	filled := Power{MW: decimal.Zero}
	if w.FilledQuantity != nil {
		filled, err = PowerFromWire(w.FilledQuantity)
		if err != nil {
			return OrderDetail{}, err
		}
	}

	return NewOrderDetail(
		w.OrderID,
		order,
		StateDetailFromWire(w.StateDetail),
		open,
		filled,
		timeFromWire(w.CreateTime),
		timeFromWire(w.ModificationTime),
	)
}

// TradeFromWire convierte un mensaje wire a Trade.
func TradeFromWire(w *wire.Trade) (Trade, error) {
	if w == nil {
		return Trade{}, NewValidationError("trade", nil, "trade message is nil")
	}

	area, err := DeliveryAreaFromWire(w.DeliveryArea)
	if err != nil {
		return Trade{}, err
	}
	period, err := DeliveryPeriodFromWire(w.DeliveryPeriod)
	if err != nil {
		return Trade{}, err
	}
	price, err := PriceFromWire(w.Price)
	if err != nil {
		return Trade{}, err
	}
	quantity, err := PowerFromWire(w.Quantity)
	if err != nil {
		return Trade{}, err
	}

	return Trade{
		ID:             w.ID,
		OrderID:        w.OrderID,
		Side:           SideFromWire(w.Side),
		DeliveryArea:   area,
		DeliveryPeriod: period,
		ExecutionTime:  timeFromWire(w.ExecutionTime),
		Price:          price,
		Quantity:       quantity,
		State:          TradeStateFromWire(w.State),
	}, nil
}

// PublicTradeFromWire convierte un mensaje wire a PublicTrade.
func PublicTradeFromWire(w *wire.PublicTrade) (PublicTrade, error) {
	if w == nil {
		return PublicTrade{}, NewValidationError("public_trade", nil, "public trade message is nil")
	}

	buyArea, err := DeliveryAreaFromWire(w.BuyDeliveryArea)
	if err != nil {
		return PublicTrade{}, err
	}
	sellArea, err := DeliveryAreaFromWire(w.SellDeliveryArea)
	if err != nil {
		return PublicTrade{}, err
	}
	period, err := DeliveryPeriodFromWire(w.DeliveryPeriod)
	if err != nil {
		return PublicTrade{}, err
	}
	price, err := PriceFromWire(w.Price)
	if err != nil {
		return PublicTrade{}, err
	}
	quantity, err := PowerFromWire(w.Quantity)
	if err != nil {
		return PublicTrade{}, err
	}

	return PublicTrade{
		ID:               w.ID,
		BuyDeliveryArea:  buyArea,
		SellDeliveryArea: sellArea,
		DeliveryPeriod:   period,
		ExecutionTime:    timeFromWire(w.ExecutionTime),
		Price:            price,
		Quantity:         quantity,
		State:            TradeStateFromWire(w.State),
	}, nil
}

// OrderFilterToWire convierte un GridpoolOrderFilter al mensaje wire.
func OrderFilterToWire(f GridpoolOrderFilter) *wire.GridpoolOrderFilter {
	w := &wire.GridpoolOrderFilter{}
	for _, s := range f.States {
		w.States = append(w.States, OrderStateToWire(s))
	}
	if f.Side != nil {
		w.Side = SideToWire(*f.Side)
	}
	if f.DeliveryArea != nil {
		w.DeliveryArea = DeliveryAreaToWire(*f.DeliveryArea)
	}
	if f.DeliveryPeriod != nil {
		w.DeliveryPeriod = DeliveryPeriodToWire(*f.DeliveryPeriod)
	}
	if f.Tag != nil {
		w.Tag = *f.Tag
	}
	return w
}

// TradeFilterToWire convierte un GridpoolTradeFilter al mensaje wire.
func TradeFilterToWire(f GridpoolTradeFilter) *wire.GridpoolTradeFilter {
	w := &wire.GridpoolTradeFilter{TradeIDs: f.TradeIDs}
	for _, s := range f.States {
		w.States = append(w.States, TradeStateToWire(s))
	}
	if f.Side != nil {
		w.Side = SideToWire(*f.Side)
	}
	if f.DeliveryArea != nil {
		w.DeliveryArea = DeliveryAreaToWire(*f.DeliveryArea)
	}
	if f.DeliveryPeriod != nil {
		w.DeliveryPeriod = DeliveryPeriodToWire(*f.DeliveryPeriod)
	}
	return w
}

// PublicTradeFilterToWire convierte un PublicTradeFilter al mensaje wire.
func PublicTradeFilterToWire(f PublicTradeFilter) *wire.PublicTradeFilter {
	w := &wire.PublicTradeFilter{}
	for _, s := range f.States {
		w.States = append(w.States, TradeStateToWire(s))
	}
	if f.BuyDeliveryArea != nil {
		w.BuyDeliveryArea = DeliveryAreaToWire(*f.BuyDeliveryArea)
	}
	if f.SellDeliveryArea != nil {
		w.SellDeliveryArea = DeliveryAreaToWire(*f.SellDeliveryArea)
	}
	if f.DeliveryPeriod != nil {
		w.DeliveryPeriod = DeliveryPeriodToWire(*f.DeliveryPeriod)
	}
	return w
}

func decimalFromWire(d *wire.Decimal, name string) (decimal.Decimal, error) {
	if d == nil {
		return decimal.Zero, NewValidationError(name, nil, "decimal message is nil")
	}
	value, err := decimal.NewFromString(d.Value)
	if err != nil {
		return decimal.Zero, WrapError(ErrInvalidArgument, name+" is not a valid decimal", err)
	}
	return value, nil
}

func timeFromWire(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime().UTC()
}
