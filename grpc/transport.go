package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/xKoRx/gridpool/wire"
)

// Nombres de método del servicio de trading.
const (
	serviceName = "/gridpool.trading.v1.TradingService/"

	methodCreateGridpoolOrder     = serviceName + "CreateGridpoolOrder"
	methodUpdateGridpoolOrder     = serviceName + "UpdateGridpoolOrder"
	methodCancelGridpoolOrder     = serviceName + "CancelGridpoolOrder"
	methodCancelAllGridpoolOrders = serviceName + "CancelAllGridpoolOrders"
	methodGetGridpoolOrder        = serviceName + "GetGridpoolOrder"
	methodListGridpoolOrders      = serviceName + "ListGridpoolOrders"
	methodListGridpoolTrades      = serviceName + "ListGridpoolTrades"
	methodListPublicTrades        = serviceName + "ListPublicTrades"

	methodReceiveGridpoolOrdersStream = serviceName + "ReceiveGridpoolOrdersStream"
	methodReceiveGridpoolTradesStream = serviceName + "ReceiveGridpoolTradesStream"
	methodReceivePublicTradesStream   = serviceName + "ReceivePublicTradesStream"
)

// Transport implementa wire.Service sobre una conexión gRPC.
//
// Cada llamada usa el codec JSON registrado en este paquete.
type Transport struct {
	conn *grpc.ClientConn
}

// NewTransport crea un Transport sobre una conexión existente.
func NewTransport(conn *grpc.ClientConn) *Transport {
	return &Transport{conn: conn}
}

var callOpts = []grpc.CallOption{grpc.CallContentSubtype(JSONCodecName)}

func invoke[Req any, Resp any](ctx context.Context, t *Transport, method string, req *Req) (*Resp, error) {
	resp := new(Resp)
	if err := t.conn.Invoke(ctx, method, req, resp, callOpts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateGridpoolOrder implementa wire.Service.
func (t *Transport) CreateGridpoolOrder(ctx context.Context, req *wire.CreateGridpoolOrderRequest) (*wire.CreateGridpoolOrderResponse, error) {
	return invoke[wire.CreateGridpoolOrderRequest, wire.CreateGridpoolOrderResponse](ctx, t, methodCreateGridpoolOrder, req)
}

// UpdateGridpoolOrder implementa wire.Service.
func (t *Transport) UpdateGridpoolOrder(ctx context.Context, req *wire.UpdateGridpoolOrderRequest) (*wire.UpdateGridpoolOrderResponse, error) {
	return invoke[wire.UpdateGridpoolOrderRequest, wire.UpdateGridpoolOrderResponse](ctx, t, methodUpdateGridpoolOrder, req)
}

// CancelGridpoolOrder implementa wire.Service.
func (t *Transport) CancelGridpoolOrder(ctx context.Context, req *wire.CancelGridpoolOrderRequest) (*wire.CancelGridpoolOrderResponse, error) {
	return invoke[wire.CancelGridpoolOrderRequest, wire.CancelGridpoolOrderResponse](ctx, t, methodCancelGridpoolOrder, req)
}

// CancelAllGridpoolOrders implementa wire.Service.
func (t *Transport) CancelAllGridpoolOrders(ctx context.Context, req *wire.CancelAllGridpoolOrdersRequest) (*wire.CancelAllGridpoolOrdersResponse, error) {
	return invoke[wire.CancelAllGridpoolOrdersRequest, wire.CancelAllGridpoolOrdersResponse](ctx, t, methodCancelAllGridpoolOrders, req)
}

// GetGridpoolOrder implementa wire.Service.
func (t *Transport) GetGridpoolOrder(ctx context.Context, req *wire.GetGridpoolOrderRequest) (*wire.GetGridpoolOrderResponse, error) {
	return invoke[wire.GetGridpoolOrderRequest, wire.GetGridpoolOrderResponse](ctx, t, methodGetGridpoolOrder, req)
}

// ListGridpoolOrders implementa wire.Service.
func (t *Transport) ListGridpoolOrders(ctx context.Context, req *wire.ListGridpoolOrdersRequest) (*wire.ListGridpoolOrdersResponse, error) {
	return invoke[wire.ListGridpoolOrdersRequest, wire.ListGridpoolOrdersResponse](ctx, t, methodListGridpoolOrders, req)
}

// ListGridpoolTrades implementa wire.Service.
func (t *Transport) ListGridpoolTrades(ctx context.Context, req *wire.ListGridpoolTradesRequest) (*wire.ListGridpoolTradesResponse, error) {
	return invoke[wire.ListGridpoolTradesRequest, wire.ListGridpoolTradesResponse](ctx, t, methodListGridpoolTrades, req)
}

// ListPublicTrades implementa wire.Service.
func (t *Transport) ListPublicTrades(ctx context.Context, req *wire.ListPublicTradesRequest) (*wire.ListPublicTradesResponse, error) {
	return invoke[wire.ListPublicTradesRequest, wire.ListPublicTradesResponse](ctx, t, methodListPublicTrades, req)
}

func openStream[Req any](ctx context.Context, t *Transport, name, method string, req *Req) (grpc.ClientStream, error) {
	desc := &grpc.StreamDesc{StreamName: name, ServerStreams: true}
	cs, err := t.conn.NewStream(ctx, desc, method, callOpts...)
	if err != nil {
		return nil, err
	}
	if err := cs.SendMsg(req); err != nil {
		return nil, err
	}
	if err := cs.CloseSend(); err != nil {
		return nil, err
	}
	return cs, nil
}

// ReceiveGridpoolOrdersStream implementa wire.Service.
func (t *Transport) ReceiveGridpoolOrdersStream(ctx context.Context, req *wire.ReceiveGridpoolOrdersStreamRequest) (wire.OrderStream, error) {
	cs, err := openStream(ctx, t, "ReceiveGridpoolOrdersStream", methodReceiveGridpoolOrdersStream, req)
	if err != nil {
		return nil, err
	}
	return &orderStream{cs: cs}, nil
}

// ReceiveGridpoolTradesStream implementa wire.Service.
func (t *Transport) ReceiveGridpoolTradesStream(ctx context.Context, req *wire.ReceiveGridpoolTradesStreamRequest) (wire.TradeStream, error) {
	cs, err := openStream(ctx, t, "ReceiveGridpoolTradesStream", methodReceiveGridpoolTradesStream, req)
	if err != nil {
		return nil, err
	}
	return &tradeStream{cs: cs}, nil
}

// ReceivePublicTradesStream implementa wire.Service.
func (t *Transport) ReceivePublicTradesStream(ctx context.Context, req *wire.ReceivePublicTradesStreamRequest) (wire.PublicTradeStream, error) {
	cs, err := openStream(ctx, t, "ReceivePublicTradesStream", methodReceivePublicTradesStream, req)
	if err != nil {
		return nil, err
	}
	return &publicTradeStream{cs: cs}, nil
}

type orderStream struct {
	cs grpc.ClientStream
}

func (s *orderStream) Recv() (*wire.ReceiveGridpoolOrdersStreamResponse, error) {
	resp := &wire.ReceiveGridpoolOrdersStreamResponse{}
	if err := s.cs.RecvMsg(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type tradeStream struct {
	cs grpc.ClientStream
}

func (s *tradeStream) Recv() (*wire.ReceiveGridpoolTradesStreamResponse, error) {
	resp := &wire.ReceiveGridpoolTradesStreamResponse{}
	if err := s.cs.RecvMsg(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type publicTradeStream struct {
	cs grpc.ClientStream
}

func (s *publicTradeStream) Recv() (*wire.ReceivePublicTradesStreamResponse, error) {
	resp := &wire.ReceivePublicTradesStreamResponse{}
	if err := s.cs.RecvMsg(resp); err != nil {
		return nil, err
	}
	return resp, nil
}
