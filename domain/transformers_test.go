package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/xKoRx/gridpool/wire"
)

func sampleOrder(t *testing.T) Order {
	t.Helper()
	period, err := NewDeliveryPeriod(time.Date(2027, 1, 15, 12, 0, 0, 0, time.UTC), 15*time.Minute)
	require.NoError(t, err)

	return Order{
		DeliveryArea:   NewDeliveryArea("10YDE-EON------1", CodeTypeEuropeEIC),
		DeliveryPeriod: period,
		Type:           OrderTypeLimit,
		Side:           SideBuy,
		Price:          NewPrice(dec("50.25"), CurrencyEUR),
		Quantity:       NewPowerMW(dec("2.5")),
		Tag:            "test-order",
	}
}

func TestOrderRoundTrip(t *testing.T) {
	original := sampleOrder(t)
	validUntil := time.Date(2027, 1, 15, 11, 0, 0, 0, time.UTC)
	original.ValidUntil = &validUntil
	original.Payload = map[string]*structpb.Value{
		"strategy": structpb.NewStringValue("balancing"),
	}

	got, err := OrderFromWire(OrderToWire(original))
	require.NoError(t, err)

	require.Equal(t, original.DeliveryArea, got.DeliveryArea)
	require.Equal(t, original.DeliveryPeriod, got.DeliveryPeriod)
	require.Equal(t, original.Type, got.Type)
	require.Equal(t, original.Side, got.Side)
	require.True(t, original.Price.Amount.Equal(got.Price.Amount))
	require.Equal(t, original.Price.Currency, got.Price.Currency)
	require.True(t, original.Quantity.MW.Equal(got.Quantity.MW))
	require.Equal(t, original.Tag, got.Tag)
	require.Equal(t, validUntil, *got.ValidUntil)
	require.Equal(t, "balancing", got.Payload["strategy"].GetStringValue())
	require.Nil(t, got.StopPrice)
	require.Nil(t, got.ExecutionOption)
}

func TestOrderRoundTrip_ExecutionOption(t *testing.T) {
	original := sampleOrder(t)
	opt := ExecutionOptionFOK
	original.ExecutionOption = &opt

	got, err := OrderFromWire(OrderToWire(original))
	require.NoError(t, err)
	require.NotNil(t, got.ExecutionOption)
	require.Equal(t, ExecutionOptionFOK, *got.ExecutionOption)
}

func TestPriceDecimalsTravelAsStrings(t *testing.T) {
	w := PriceToWire(NewPrice(dec("50.25"), CurrencyEUR))
	require.Equal(t, "50.25", w.Amount.Value)
	require.Equal(t, wire.CurrencyEUR, w.Currency)

	back, err := PriceFromWire(w)
	require.NoError(t, err)
	require.True(t, back.Amount.Equal(dec("50.25")))
}

func TestPriceFromWire_InvalidDecimal(t *testing.T) {
	_, err := PriceFromWire(&wire.Price{Amount: &wire.Decimal{Value: "not-a-number"}})
	require.Error(t, err)
	require.True(t, IsInvalidArgument(err))
}

func TestOrderDetailFromWire(t *testing.T) {
	create := time.Date(2027, 1, 10, 9, 0, 0, 0, time.UTC)
	modify := create.Add(time.Minute)

	w := &wire.OrderDetail{
		OrderID: 42,
		Order:   OrderToWire(sampleOrder(t)),
		StateDetail: &wire.StateDetail{
			State:       wire.OrderStateActive,
			StateReason: wire.StateReasonAdd,
			MarketActor: wire.MarketActorUser,
		},
		OpenQuantity:     &wire.Power{MW: &wire.Decimal{Value: "2.5"}},
		FilledQuantity:   &wire.Power{MW: &wire.Decimal{Value: "0"}},
		CreateTime:       timestamppb.New(create),
		ModificationTime: timestamppb.New(modify),
	}

	detail, err := OrderDetailFromWire(w)
	require.NoError(t, err)
	require.Equal(t, int64(42), detail.OrderID)
	require.Equal(t, OrderStateActive, detail.StateDetail.State)
	require.Equal(t, StateReasonAdd, detail.StateDetail.StateReason)
	require.Equal(t, MarketActorUser, detail.StateDetail.MarketActor)
	require.True(t, detail.OpenQuantity.MW.Equal(dec("2.5")))
	require.Equal(t, create, detail.CreateTime)
	require.Equal(t, modify, detail.ModificationTime)
	require.Equal(t, time.UTC, detail.CreateTime.Location())
}

func TestOrderDetailFromWire_RejectsZeroTimes(t *testing.T) {
	w := &wire.OrderDetail{
		OrderID: 42,
		Order:   OrderToWire(sampleOrder(t)),
	}

	_, err := OrderDetailFromWire(w)
	require.Error(t, err)
	require.True(t, IsInvalidArgument(err))
}

func TestTradeFromWire(t *testing.T) {
	exec := time.Date(2027, 1, 15, 11, 30, 0, 0, time.UTC)
	period := sampleOrder(t).DeliveryPeriod

	w := &wire.Trade{
		ID:             7,
		OrderID:        42,
		Side:           wire.MarketSideSell,
		DeliveryArea:   &wire.DeliveryArea{Code: "10YDE-EON------1", CodeType: wire.EnergyMarketCodeTypeEuropeEIC},
		DeliveryPeriod: DeliveryPeriodToWire(period),
		ExecutionTime:  timestamppb.New(exec),
		Price:          &wire.Price{Amount: &wire.Decimal{Value: "48.1"}, Currency: wire.CurrencyEUR},
		Quantity:       &wire.Power{MW: &wire.Decimal{Value: "1.5"}},
		State:          wire.TradeStateActive,
	}

	trade, err := TradeFromWire(w)
	require.NoError(t, err)
	require.Equal(t, int64(7), trade.ID)
	require.Equal(t, SideSell, trade.Side)
	require.Equal(t, TradeStateActive, trade.State)
	require.True(t, trade.Price.Amount.Equal(dec("48.1")))
	require.Equal(t, exec, trade.ExecutionTime)
}

func TestFilterToWire(t *testing.T) {
	side := SideBuy
	tag := "hedging"
	f := GridpoolOrderFilter{
		States: []OrderState{OrderStateActive, OrderStatePending},
		Side:   &side,
		Tag:    &tag,
	}

	w := OrderFilterToWire(f)
	require.Equal(t, []int32{wire.OrderStateActive, wire.OrderStatePending}, w.States)
	require.Equal(t, wire.MarketSideBuy, w.Side)
	require.Equal(t, "hedging", w.Tag)
	require.Nil(t, w.DeliveryArea)
}

func TestEnumRoundTrips(t *testing.T) {
	for _, c := range []Currency{CurrencyUSD, CurrencyCAD, CurrencyEUR, CurrencyGBP, CurrencyCHF, CurrencyJPY, CurrencyAUD, CurrencyNZD, CurrencySGD} {
		require.Equal(t, c, CurrencyFromWire(CurrencyToWire(c)))
	}
	for _, s := range []OrderState{OrderStatePending, OrderStateActive, OrderStateCancelRequested, OrderStateCancelRejected, OrderStateCanceled, OrderStateExpired, OrderStateFilled, OrderStatePartiallyFilled, OrderStateRejected} {
		require.Equal(t, s, OrderStateFromWire(OrderStateToWire(s)))
	}
	for _, d := range []DeliveryDuration{Duration5Min, Duration15Min, Duration30Min, Duration60Min} {
		require.Equal(t, d, DurationFromWire(DurationToWire(d)))
	}
}
