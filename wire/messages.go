package wire

import (
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Decimal valor decimal transportado como string para no perder precisión.
type Decimal struct {
	Value string `json:"value,omitempty"`
}

// Price precio con moneda.
type Price struct {
	Amount   *Decimal `json:"amount,omitempty"`
	Currency int32    `json:"currency,omitempty"`
}

// Power potencia en megawatts.
type Power struct {
	MW *Decimal `json:"mw,omitempty"`
}

// DeliveryArea área de entrega según un esquema de codificación de mercado.
type DeliveryArea struct {
	Code     string `json:"code,omitempty"`
	CodeType int32  `json:"code_type,omitempty"`
}

// DeliveryPeriod ventana de entrega física de la energía.
type DeliveryPeriod struct {
	Start    *timestamppb.Timestamp `json:"start,omitempty"`
	Duration int32                  `json:"duration,omitempty"`
}

// Order orden tal como viaja en CreateGridpoolOrderRequest.
type Order struct {
	DeliveryArea    *DeliveryArea             `json:"delivery_area,omitempty"`
	DeliveryPeriod  *DeliveryPeriod           `json:"delivery_period,omitempty"`
	Type            int32                     `json:"type,omitempty"`
	Side            int32                     `json:"side,omitempty"`
	Price           *Price                    `json:"price,omitempty"`
	Quantity        *Power                    `json:"quantity,omitempty"`
	StopPrice       *Price                    `json:"stop_price,omitempty"`
	PeakPriceDelta  *Price                    `json:"peak_price_delta,omitempty"`
	DisplayQuantity *Power                    `json:"display_quantity,omitempty"`
	ExecutionOption int32                     `json:"execution_option,omitempty"`
	ValidUntil      *timestamppb.Timestamp    `json:"valid_until,omitempty"`
	Payload         map[string]*structpb.Value `json:"payload,omitempty"`
	Tag             string                    `json:"tag,omitempty"`
}

// StateDetail estado de una orden junto con su causa y actor.
type StateDetail struct {
	State       int32 `json:"state,omitempty"`
	StateReason int32 `json:"state_reason,omitempty"`
	MarketActor int32 `json:"market_actor,omitempty"`
}

// OrderDetail orden con identidad, estado y cantidades ejecutadas.
type OrderDetail struct {
	OrderID          int64                  `json:"order_id,omitempty"`
	Order            *Order                 `json:"order,omitempty"`
	StateDetail      *StateDetail           `json:"state_detail,omitempty"`
	OpenQuantity     *Power                 `json:"open_quantity,omitempty"`
	FilledQuantity   *Power                 `json:"filled_quantity,omitempty"`
	CreateTime       *timestamppb.Timestamp `json:"create_time,omitempty"`
	ModificationTime *timestamppb.Timestamp `json:"modification_time,omitempty"`
}

// Trade cruce ejecutado de una orden propia del gridpool.
type Trade struct {
	ID             int64                  `json:"id,omitempty"`
	OrderID        int64                  `json:"order_id,omitempty"`
	Side           int32                  `json:"side,omitempty"`
	DeliveryArea   *DeliveryArea          `json:"delivery_area,omitempty"`
	DeliveryPeriod *DeliveryPeriod        `json:"delivery_period,omitempty"`
	ExecutionTime  *timestamppb.Timestamp `json:"execution_time,omitempty"`
	Price          *Price                 `json:"price,omitempty"`
	Quantity       *Power                 `json:"quantity,omitempty"`
	State          int32                  `json:"state,omitempty"`
}

// PublicTrade cruce ejecutado anónimo de todo el mercado.
type PublicTrade struct {
	ID               int64                  `json:"id,omitempty"`
	BuyDeliveryArea  *DeliveryArea          `json:"buy_delivery_area,omitempty"`
	SellDeliveryArea *DeliveryArea          `json:"sell_delivery_area,omitempty"`
	DeliveryPeriod   *DeliveryPeriod        `json:"delivery_period,omitempty"`
	ExecutionTime    *timestamppb.Timestamp `json:"execution_time,omitempty"`
	Price            *Price                 `json:"price,omitempty"`
	Quantity         *Power                 `json:"quantity,omitempty"`
	State            int32                  `json:"state,omitempty"`
}

// GridpoolOrderFilter criterios de filtrado server-side para órdenes.
type GridpoolOrderFilter struct {
	States         []int32         `json:"states,omitempty"`
	Side           int32           `json:"side,omitempty"`
	DeliveryArea   *DeliveryArea   `json:"delivery_area,omitempty"`
	DeliveryPeriod *DeliveryPeriod `json:"delivery_period,omitempty"`
	Tag            string          `json:"tag,omitempty"`
}

// GridpoolTradeFilter criterios de filtrado server-side para trades.
type GridpoolTradeFilter struct {
	States         []int32         `json:"states,omitempty"`
	TradeIDs       []int64         `json:"trade_ids,omitempty"`
	Side           int32           `json:"side,omitempty"`
	DeliveryArea   *DeliveryArea   `json:"delivery_area,omitempty"`
	DeliveryPeriod *DeliveryPeriod `json:"delivery_period,omitempty"`
}

// PublicTradeFilter criterios de filtrado server-side para trades públicos.
type PublicTradeFilter struct {
	States           []int32         `json:"states,omitempty"`
	BuyDeliveryArea  *DeliveryArea   `json:"buy_delivery_area,omitempty"`
	SellDeliveryArea *DeliveryArea   `json:"sell_delivery_area,omitempty"`
	DeliveryPeriod   *DeliveryPeriod `json:"delivery_period,omitempty"`
}

// UpdateOrder campos actualizables de una orden. Un puntero nil combinado con
// la presencia del campo en el field mask significa "limpiar el campo".
type UpdateOrder struct {
	Price           *Price                    `json:"price,omitempty"`
	Quantity        *Power                    `json:"quantity,omitempty"`
	StopPrice       *Price                    `json:"stop_price,omitempty"`
	PeakPriceDelta  *Price                    `json:"peak_price_delta,omitempty"`
	DisplayQuantity *Power                    `json:"display_quantity,omitempty"`
	ExecutionOption int32                     `json:"execution_option,omitempty"`
	ValidUntil      *timestamppb.Timestamp    `json:"valid_until,omitempty"`
	Payload         map[string]*structpb.Value `json:"payload,omitempty"`
	Tag             string                    `json:"tag,omitempty"`
}

// PaginationParams parámetros de paginación de las operaciones List*.
type PaginationParams struct {
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

// PaginationInfo información de continuación devuelta por el servidor.
type PaginationInfo struct {
	TotalItems    int64  `json:"total_items,omitempty"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

// Requests y responses de las operaciones unary.

type CreateGridpoolOrderRequest struct {
	GridpoolID int64  `json:"gridpool_id,omitempty"`
	Order      *Order `json:"order,omitempty"`
}

type CreateGridpoolOrderResponse struct {
	OrderDetail *OrderDetail `json:"order_detail,omitempty"`
}

type UpdateGridpoolOrderRequest struct {
	GridpoolID        int64                  `json:"gridpool_id,omitempty"`
	OrderID           int64                  `json:"order_id,omitempty"`
	UpdateOrderFields *UpdateOrder           `json:"update_order_fields,omitempty"`
	UpdateMask        *fieldmaskpb.FieldMask `json:"update_mask,omitempty"`
}

type UpdateGridpoolOrderResponse struct {
	OrderDetail *OrderDetail `json:"order_detail,omitempty"`
}

type CancelGridpoolOrderRequest struct {
	GridpoolID int64 `json:"gridpool_id,omitempty"`
	OrderID    int64 `json:"order_id,omitempty"`
}

type CancelGridpoolOrderResponse struct {
	OrderDetail *OrderDetail `json:"order_detail,omitempty"`
}

type CancelAllGridpoolOrdersRequest struct {
	GridpoolID int64 `json:"gridpool_id,omitempty"`
}

type CancelAllGridpoolOrdersResponse struct {
	GridpoolID int64 `json:"gridpool_id,omitempty"`
}

type GetGridpoolOrderRequest struct {
	GridpoolID int64 `json:"gridpool_id,omitempty"`
	OrderID    int64 `json:"order_id,omitempty"`
}

type GetGridpoolOrderResponse struct {
	OrderDetail *OrderDetail `json:"order_detail,omitempty"`
}

type ListGridpoolOrdersRequest struct {
	GridpoolID       int64                `json:"gridpool_id,omitempty"`
	Filter           *GridpoolOrderFilter `json:"filter,omitempty"`
	PaginationParams *PaginationParams    `json:"pagination_params,omitempty"`
}

type ListGridpoolOrdersResponse struct {
	OrderDetails   []*OrderDetail  `json:"order_details,omitempty"`
	PaginationInfo *PaginationInfo `json:"pagination_info,omitempty"`
}

type ListGridpoolTradesRequest struct {
	GridpoolID       int64                `json:"gridpool_id,omitempty"`
	Filter           *GridpoolTradeFilter `json:"filter,omitempty"`
	PaginationParams *PaginationParams    `json:"pagination_params,omitempty"`
}

type ListGridpoolTradesResponse struct {
	Trades         []*Trade        `json:"trades,omitempty"`
	PaginationInfo *PaginationInfo `json:"pagination_info,omitempty"`
}

type ListPublicTradesRequest struct {
	Filter           *PublicTradeFilter `json:"filter,omitempty"`
	PaginationParams *PaginationParams  `json:"pagination_params,omitempty"`
}

type ListPublicTradesResponse struct {
	PublicTrades   []*PublicTrade  `json:"public_trades,omitempty"`
	PaginationInfo *PaginationInfo `json:"pagination_info,omitempty"`
}

// Requests y responses de las operaciones de streaming.

type ReceiveGridpoolOrdersStreamRequest struct {
	GridpoolID int64                `json:"gridpool_id,omitempty"`
	Filter     *GridpoolOrderFilter `json:"filter,omitempty"`
}

type ReceiveGridpoolOrdersStreamResponse struct {
	OrderDetail *OrderDetail `json:"order_detail,omitempty"`
}

type ReceiveGridpoolTradesStreamRequest struct {
	GridpoolID int64                `json:"gridpool_id,omitempty"`
	Filter     *GridpoolTradeFilter `json:"filter,omitempty"`
}

type ReceiveGridpoolTradesStreamResponse struct {
	Trade *Trade `json:"trade,omitempty"`
}

type ReceivePublicTradesStreamRequest struct {
	Filter *PublicTradeFilter `json:"filter,omitempty"`
}

type ReceivePublicTradesStreamResponse struct {
	PublicTrade *PublicTrade `json:"public_trade,omitempty"`
}
