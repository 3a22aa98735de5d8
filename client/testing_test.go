package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/xKoRx/gridpool/domain"
	"github.com/xKoRx/gridpool/wire"
)

// fakeService doble en memoria de wire.Service. Cada método delega en su
// función configurada y cuenta las llamadas.
type fakeService struct {
	mu    sync.Mutex
	calls map[string]int

	createFn    func(ctx context.Context, req *wire.CreateGridpoolOrderRequest) (*wire.CreateGridpoolOrderResponse, error)
	updateFn    func(ctx context.Context, req *wire.UpdateGridpoolOrderRequest) (*wire.UpdateGridpoolOrderResponse, error)
	cancelFn    func(ctx context.Context, req *wire.CancelGridpoolOrderRequest) (*wire.CancelGridpoolOrderResponse, error)
	cancelAllFn func(ctx context.Context, req *wire.CancelAllGridpoolOrdersRequest) (*wire.CancelAllGridpoolOrdersResponse, error)
	getFn       func(ctx context.Context, req *wire.GetGridpoolOrderRequest) (*wire.GetGridpoolOrderResponse, error)
	listFn      func(ctx context.Context, req *wire.ListGridpoolOrdersRequest) (*wire.ListGridpoolOrdersResponse, error)
	listTrFn    func(ctx context.Context, req *wire.ListGridpoolTradesRequest) (*wire.ListGridpoolTradesResponse, error)
	listPubFn   func(ctx context.Context, req *wire.ListPublicTradesRequest) (*wire.ListPublicTradesResponse, error)

	ordersStreamFn func(ctx context.Context, req *wire.ReceiveGridpoolOrdersStreamRequest) (wire.OrderStream, error)
	tradesStreamFn func(ctx context.Context, req *wire.ReceiveGridpoolTradesStreamRequest) (wire.TradeStream, error)
	publicStreamFn func(ctx context.Context, req *wire.ReceivePublicTradesStreamRequest) (wire.PublicTradeStream, error)
}

func newFakeService() *fakeService {
	return &fakeService{calls: make(map[string]int)}
}

func (f *fakeService) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeService) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeService) CreateGridpoolOrder(ctx context.Context, req *wire.CreateGridpoolOrderRequest) (*wire.CreateGridpoolOrderResponse, error) {
	f.record("CreateGridpoolOrder")
	return f.createFn(ctx, req)
}

func (f *fakeService) UpdateGridpoolOrder(ctx context.Context, req *wire.UpdateGridpoolOrderRequest) (*wire.UpdateGridpoolOrderResponse, error) {
	f.record("UpdateGridpoolOrder")
	return f.updateFn(ctx, req)
}

func (f *fakeService) CancelGridpoolOrder(ctx context.Context, req *wire.CancelGridpoolOrderRequest) (*wire.CancelGridpoolOrderResponse, error) {
	f.record("CancelGridpoolOrder")
	return f.cancelFn(ctx, req)
}

func (f *fakeService) CancelAllGridpoolOrders(ctx context.Context, req *wire.CancelAllGridpoolOrdersRequest) (*wire.CancelAllGridpoolOrdersResponse, error) {
	f.record("CancelAllGridpoolOrders")
	return f.cancelAllFn(ctx, req)
}

func (f *fakeService) GetGridpoolOrder(ctx context.Context, req *wire.GetGridpoolOrderRequest) (*wire.GetGridpoolOrderResponse, error) {
	f.record("GetGridpoolOrder")
	return f.getFn(ctx, req)
}

func (f *fakeService) ListGridpoolOrders(ctx context.Context, req *wire.ListGridpoolOrdersRequest) (*wire.ListGridpoolOrdersResponse, error) {
	f.record("ListGridpoolOrders")
	return f.listFn(ctx, req)
}

func (f *fakeService) ListGridpoolTrades(ctx context.Context, req *wire.ListGridpoolTradesRequest) (*wire.ListGridpoolTradesResponse, error) {
	f.record("ListGridpoolTrades")
	return f.listTrFn(ctx, req)
}

func (f *fakeService) ListPublicTrades(ctx context.Context, req *wire.ListPublicTradesRequest) (*wire.ListPublicTradesResponse, error) {
	f.record("ListPublicTrades")
	return f.listPubFn(ctx, req)
}

func (f *fakeService) ReceiveGridpoolOrdersStream(ctx context.Context, req *wire.ReceiveGridpoolOrdersStreamRequest) (wire.OrderStream, error) {
	f.record("ReceiveGridpoolOrdersStream")
	return f.ordersStreamFn(ctx, req)
}

func (f *fakeService) ReceiveGridpoolTradesStream(ctx context.Context, req *wire.ReceiveGridpoolTradesStreamRequest) (wire.TradeStream, error) {
	f.record("ReceiveGridpoolTradesStream")
	return f.tradesStreamFn(ctx, req)
}

func (f *fakeService) ReceivePublicTradesStream(ctx context.Context, req *wire.ReceivePublicTradesStreamRequest) (wire.PublicTradeStream, error) {
	f.record("ReceivePublicTradesStream")
	return f.publicStreamFn(ctx, req)
}

// chanOrderStream stream de órdenes respaldado por un canal.
type chanOrderStream struct {
	ch  chan *wire.ReceiveGridpoolOrdersStreamResponse
	ctx context.Context
	err error
}

func (s *chanOrderStream) Recv() (*wire.ReceiveGridpoolOrdersStreamResponse, error) {
	select {
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	case resp, ok := <-s.ch:
		if !ok {
			if s.err != nil {
				return nil, s.err
			}
			return nil, context.Canceled
		}
		return resp, nil
	}
}

// chanTradeStream stream de trades respaldado por un canal.
type chanTradeStream struct {
	ch  chan *wire.ReceiveGridpoolTradesStreamResponse
	ctx context.Context
	err error
}

func (s *chanTradeStream) Recv() (*wire.ReceiveGridpoolTradesStreamResponse, error) {
	select {
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	case resp, ok := <-s.ch:
		if !ok {
			if s.err != nil {
				return nil, s.err
			}
			return nil, context.Canceled
		}
		return resp, nil
	}
}

// chanPublicTradeStream stream de trades públicos respaldado por un canal.
type chanPublicTradeStream struct {
	ch  chan *wire.ReceivePublicTradesStreamResponse
	ctx context.Context
	err error
}

func (s *chanPublicTradeStream) Recv() (*wire.ReceivePublicTradesStreamResponse, error) {
	select {
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	case resp, ok := <-s.ch:
		if !ok {
			if s.err != nil {
				return nil, s.err
			}
			return nil, context.Canceled
		}
		return resp, nil
	}
}

// Fixtures

func testOrder(t *testing.T) domain.Order {
	t.Helper()
	period, err := domain.NewDeliveryPeriod(time.Now().UTC().Add(24*time.Hour).Truncate(time.Hour), 15*time.Minute)
	require.NoError(t, err)

	return domain.Order{
		DeliveryArea:   domain.NewDeliveryArea("10YDE-EON------1", domain.CodeTypeEuropeEIC),
		DeliveryPeriod: period,
		Type:           domain.OrderTypeLimit,
		Side:           domain.SideBuy,
		Price:          domain.NewPrice(decimal.RequireFromString("50.25"), domain.CurrencyEUR),
		Quantity:       domain.NewPowerMW(decimal.RequireFromString("2.5")),
	}
}

func wireOrderDetail(t *testing.T, orderID int64, order domain.Order) *wire.OrderDetail {
	t.Helper()
	now := time.Now().UTC()
	return &wire.OrderDetail{
		OrderID: orderID,
		Order:   domain.OrderToWire(order),
		StateDetail: &wire.StateDetail{
			State:       wire.OrderStateActive,
			StateReason: wire.StateReasonAdd,
			MarketActor: wire.MarketActorUser,
		},
		OpenQuantity:     &wire.Power{MW: &wire.Decimal{Value: order.Quantity.MW.String()}},
		FilledQuantity:   &wire.Power{MW: &wire.Decimal{Value: "0"}},
		CreateTime:       timestamppb.New(now),
		ModificationTime: timestamppb.New(now),
	}
}

func wireTrade(t *testing.T, id, orderID int64) *wire.Trade {
	t.Helper()
	order := testOrder(t)
	return &wire.Trade{
		ID:             id,
		OrderID:        orderID,
		Side:           domain.SideToWire(domain.SideBuy),
		DeliveryArea:   domain.DeliveryAreaToWire(order.DeliveryArea),
		DeliveryPeriod: domain.DeliveryPeriodToWire(order.DeliveryPeriod),
		ExecutionTime:  timestamppb.New(time.Now().UTC()),
		Price:          domain.PriceToWire(order.Price),
		Quantity:       domain.PowerToWire(order.Quantity),
		State:          domain.TradeStateToWire(domain.TradeStateActive),
	}
}

func wirePublicTrade(t *testing.T, id int64) *wire.PublicTrade {
	t.Helper()
	order := testOrder(t)
	return &wire.PublicTrade{
		ID:               id,
		BuyDeliveryArea:  domain.DeliveryAreaToWire(order.DeliveryArea),
		SellDeliveryArea: domain.DeliveryAreaToWire(domain.NewDeliveryArea("10YFR-RTE------C", domain.CodeTypeEuropeEIC)),
		DeliveryPeriod:   domain.DeliveryPeriodToWire(order.DeliveryPeriod),
		ExecutionTime:    timestamppb.New(time.Now().UTC()),
		Price:            domain.PriceToWire(order.Price),
		Quantity:         domain.PowerToWire(order.Quantity),
		State:            domain.TradeStateToWire(domain.TradeStateActive),
	}
}
