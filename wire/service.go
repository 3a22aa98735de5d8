package wire

import "context"

// Service contrato del servicio remoto de trading. La implementación real la
// aporta el paquete grpc; los tests usan dobles que responden en memoria.
type Service interface {
	CreateGridpoolOrder(ctx context.Context, req *CreateGridpoolOrderRequest) (*CreateGridpoolOrderResponse, error)
	UpdateGridpoolOrder(ctx context.Context, req *UpdateGridpoolOrderRequest) (*UpdateGridpoolOrderResponse, error)
	CancelGridpoolOrder(ctx context.Context, req *CancelGridpoolOrderRequest) (*CancelGridpoolOrderResponse, error)
	CancelAllGridpoolOrders(ctx context.Context, req *CancelAllGridpoolOrdersRequest) (*CancelAllGridpoolOrdersResponse, error)
	GetGridpoolOrder(ctx context.Context, req *GetGridpoolOrderRequest) (*GetGridpoolOrderResponse, error)
	ListGridpoolOrders(ctx context.Context, req *ListGridpoolOrdersRequest) (*ListGridpoolOrdersResponse, error)
	ListGridpoolTrades(ctx context.Context, req *ListGridpoolTradesRequest) (*ListGridpoolTradesResponse, error)
	ListPublicTrades(ctx context.Context, req *ListPublicTradesRequest) (*ListPublicTradesResponse, error)

	ReceiveGridpoolOrdersStream(ctx context.Context, req *ReceiveGridpoolOrdersStreamRequest) (OrderStream, error)
	ReceiveGridpoolTradesStream(ctx context.Context, req *ReceiveGridpoolTradesStreamRequest) (TradeStream, error)
	ReceivePublicTradesStream(ctx context.Context, req *ReceivePublicTradesStreamRequest) (PublicTradeStream, error)
}

// OrderStream stream server-side de actualizaciones de órdenes.
type OrderStream interface {
	Recv() (*ReceiveGridpoolOrdersStreamResponse, error)
}

// TradeStream stream server-side de trades del gridpool.
type TradeStream interface {
	Recv() (*ReceiveGridpoolTradesStreamResponse, error)
}

// PublicTradeStream stream server-side de trades públicos del mercado.
type PublicTradeStream interface {
	Recv() (*ReceivePublicTradesStreamResponse, error)
}
