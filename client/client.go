package client

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridpool/domain"
	gpgrpc "github.com/xKoRx/gridpool/grpc"
	"github.com/xKoRx/gridpool/telemetry"
	"github.com/xKoRx/gridpool/telemetry/metricbundle"
	"github.com/xKoRx/gridpool/telemetry/semconv"
	"github.com/xKoRx/gridpool/wire"
)

// Client orquesta las operaciones contra el servicio de trading.
//
// Valida los parámetros localmente antes de cada llamada, traduce entre los
// tipos de dominio y los mensajes wire, y cachea los broadcasters de
// streaming por clave de filtro. Un Client es seguro para uso concurrente.
type Client struct {
	svc  wire.Service
	conn *gpgrpc.Client
	tel  *telemetry.Client

	orderMetrics  *metricbundle.OrderMetrics
	streamMetrics *metricbundle.StreamMetrics

	streams *streamCaches
}

// Option configura un Client.
type Option func(*options)

type options struct {
	tel      *telemetry.Client
	insecure bool
}

// WithTelemetry instala un cliente de telemetría.
func WithTelemetry(tel *telemetry.Client) Option {
	return func(o *options) {
		o.tel = tel
	}
}

// WithInsecure deshabilita TLS. Solo para entornos de desarrollo.
func WithInsecure() Option {
	return func(o *options) {
		o.insecure = true
	}
}

// Dial conecta con el servicio de trading y retorna un Client listo.
//
// Example:
//
//	client, err := client.Dial(ctx, "trading.example.com:443", apiKey)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func Dial(ctx context.Context, target, apiKey string, opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	config := gpgrpc.DefaultClientConfig(target, apiKey)
	config.Insecure = o.insecure
	if o.tel != nil {
		config.UnaryInterceptors = append(config.UnaryInterceptors,
			gpgrpc.LoggingUnaryClientInterceptor(o.tel))
		config.StreamInterceptors = append(config.StreamInterceptors,
			gpgrpc.LoggingStreamClientInterceptor(o.tel))
	}

	conn, err := gpgrpc.NewClient(ctx, config)
	if err != nil {
		return nil, domain.WrapError(domain.ErrNotConnected, "failed to connect to trading service", err)
	}

	c := New(gpgrpc.NewTransport(conn.Conn()), opts...)
	c.conn = conn
	return c, nil
}

// New crea un Client sobre un wire.Service ya construido.
//
// Útil en tests, donde el servicio se reemplaza por un doble en memoria.
func New(svc wire.Service, opts ...Option) *Client {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		svc:     svc,
		tel:     o.tel,
		streams: newStreamCaches(),
	}
	if o.tel != nil {
		c.orderMetrics = metricbundle.NewOrderMetrics(o.tel)
		c.streamMetrics = metricbundle.NewStreamMetrics(o.tel)
	}
	return c
}

// Close detiene todos los broadcasters y cierra la conexión.
func (c *Client) Close() error {
	c.streams.stopAll()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// CallOption configura una llamada individual.
type CallOption func(*callConfig)

type callConfig struct {
	timeout  time.Duration
	pageSize int32
}

// WithPageSize fija el tamaño de página pedido en operaciones de listado.
// El servicio puede retornar páginas más chicas.
func WithPageSize(n int32) CallOption {
	return func(cfg *callConfig) {
		cfg.pageSize = n
	}
}

// WithCallTimeout limita la duración de la llamada.
//
// Un deadline excedido se reporta como TIMEOUT, distinto de un rechazo del
// servidor (REMOTE_REJECTED).
func WithCallTimeout(d time.Duration) CallOption {
	return func(cfg *callConfig) {
		cfg.timeout = d
	}
}

// call ejecuta una llamada unary aplicando las CallOptions y clasificando el
// error: deadline propio excedido → TIMEOUT; cualquier otro fallo →
// REMOTE_REJECTED preservando el status original.
func call[Resp any](ctx context.Context, op string, opts []CallOption, fn func(ctx context.Context) (*Resp, error)) (*Resp, error) {
	cfg := newCallConfig(opts)

	callCtx := ctx
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	resp, err := fn(callCtx)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return nil, domain.NewTimeoutError(op, err)
		}
		return nil, domain.RemoteError(op, err)
	}
	return resp, nil
}

// CreateGridpoolOrder crea una orden en el gridpool.
//
// Los parámetros se validan localmente antes de tocar la red: precio dentro
// de límites y con máximo 2 decimales, cantidad positiva de al menos 0.1 MW
// con máximo 1 decimal, ventana de entrega futura, y solo órdenes LIMIT.
func (c *Client) CreateGridpoolOrder(ctx context.Context, gridpoolID int64, order domain.Order, opts ...CallOption) (*domain.OrderDetail, error) {
	if err := domain.ValidateOrderParams(orderParams(order)); err != nil {
		return nil, err
	}

	c.log(ctx, "creating order",
		attribute.Int64("gridpool_id", gridpoolID),
		attribute.String("side", string(order.Side)),
		attribute.String("price", order.Price.Amount.String()),
		attribute.String("quantity", order.Quantity.MW.String()))

	ctx, end := c.startSpan(ctx, "CreateGridpoolOrder", gridpoolID)
	resp, err := call(ctx, "CreateGridpoolOrder", opts, func(ctx context.Context) (*wire.CreateGridpoolOrderResponse, error) {
		return c.svc.CreateGridpoolOrder(ctx, &wire.CreateGridpoolOrderRequest{
			GridpoolID: gridpoolID,
			Order:      domain.OrderToWire(order),
		})
	})
	end(err)
	c.recordOrderOp(ctx, "create", gridpoolID, err)
	if err != nil {
		return nil, err
	}

	return decodeOrderDetail(resp.OrderDetail)
}

// UpdateGridpoolOrder actualiza campos de una orden existente.
//
// Solo los campos presentes en upd entran al field mask; un None explícito
// limpia el campo en el servidor. Sin ningún campo presente la llamada se
// rechaza localmente. La inmutabilidad server-side de ciertos campos (como
// quantity) la reporta el servicio, no este cliente.
func (c *Client) UpdateGridpoolOrder(ctx context.Context, gridpoolID, orderID int64, upd domain.UpdateOrder, opts ...CallOption) (*domain.OrderDetail, error) {
	if err := domain.ValidateOrderParams(upd.Params()); err != nil {
		return nil, err
	}

	mask, fields, err := upd.UpdateMask()
	if err != nil {
		return nil, err
	}

	c.log(ctx, "updating order",
		attribute.Int64("gridpool_id", gridpoolID),
		attribute.Int64("order_id", orderID),
		attribute.StringSlice("fields", mask.Paths))

	ctx, end := c.startSpan(ctx, "UpdateGridpoolOrder", gridpoolID)
	resp, err := call(ctx, "UpdateGridpoolOrder", opts, func(ctx context.Context) (*wire.UpdateGridpoolOrderResponse, error) {
		return c.svc.UpdateGridpoolOrder(ctx, &wire.UpdateGridpoolOrderRequest{
			GridpoolID:        gridpoolID,
			OrderID:           orderID,
			UpdateOrderFields: fields,
			UpdateMask:        mask,
		})
	})
	end(err)
	c.recordOrderOp(ctx, "update", gridpoolID, err)
	if err != nil {
		return nil, err
	}

	return decodeOrderDetail(resp.OrderDetail)
}

// CancelGridpoolOrder solicita la cancelación de una orden.
//
// La operación NO es idempotente: cancelar una orden ya cancelada retorna el
// INVALID_ARGUMENT del servicio tal cual, como señal de que la orden ya no
// estaba activa.
func (c *Client) CancelGridpoolOrder(ctx context.Context, gridpoolID, orderID int64, opts ...CallOption) (*domain.OrderDetail, error) {
	c.log(ctx, "canceling order",
		attribute.Int64("gridpool_id", gridpoolID),
		attribute.Int64("order_id", orderID))

	ctx, end := c.startSpan(ctx, "CancelGridpoolOrder", gridpoolID)
	resp, err := call(ctx, "CancelGridpoolOrder", opts, func(ctx context.Context) (*wire.CancelGridpoolOrderResponse, error) {
		return c.svc.CancelGridpoolOrder(ctx, &wire.CancelGridpoolOrderRequest{
			GridpoolID: gridpoolID,
			OrderID:    orderID,
		})
	})
	end(err)
	c.recordOrderOp(ctx, "cancel", gridpoolID, err)
	if err != nil {
		return nil, err
	}

	return decodeOrderDetail(resp.OrderDetail)
}

// CancelAllGridpoolOrders cancela todas las órdenes del gridpool y retorna
// su id.
func (c *Client) CancelAllGridpoolOrders(ctx context.Context, gridpoolID int64, opts ...CallOption) (int64, error) {
	c.log(ctx, "canceling all orders", attribute.Int64("gridpool_id", gridpoolID))

	ctx, end := c.startSpan(ctx, "CancelAllGridpoolOrders", gridpoolID)
	resp, err := call(ctx, "CancelAllGridpoolOrders", opts, func(ctx context.Context) (*wire.CancelAllGridpoolOrdersResponse, error) {
		return c.svc.CancelAllGridpoolOrders(ctx, &wire.CancelAllGridpoolOrdersRequest{
			GridpoolID: gridpoolID,
		})
	})
	end(err)
	c.recordOrderOp(ctx, "cancel_all", gridpoolID, err)
	if err != nil {
		return 0, err
	}

	return resp.GridpoolID, nil
}

// GetGridpoolOrder recupera una orden por id.
func (c *Client) GetGridpoolOrder(ctx context.Context, gridpoolID, orderID int64, opts ...CallOption) (*domain.OrderDetail, error) {
	resp, err := call(ctx, "GetGridpoolOrder", opts, func(ctx context.Context) (*wire.GetGridpoolOrderResponse, error) {
		return c.svc.GetGridpoolOrder(ctx, &wire.GetGridpoolOrderRequest{
			GridpoolID: gridpoolID,
			OrderID:    orderID,
		})
	})
	if err != nil {
		return nil, err
	}

	return decodeOrderDetail(resp.OrderDetail)
}

// ListGridpoolOrders retorna un iterador perezoso sobre las órdenes del
// gridpool que cumplen el filtro.
//
// Cada llamada retorna un iterador fresco e independiente que empieza desde
// la primera página; el iterador sigue next_page_token hasta agotarlo.
func (c *Client) ListGridpoolOrders(gridpoolID int64, filter domain.GridpoolOrderFilter, opts ...CallOption) *Iterator[domain.OrderDetail] {
	wireFilter := domain.OrderFilterToWire(filter)
	cfg := newCallConfig(opts)

	return newIterator(func(ctx context.Context, token string) (page[domain.OrderDetail], error) {
		resp, err := call(ctx, "ListGridpoolOrders", opts, func(ctx context.Context) (*wire.ListGridpoolOrdersResponse, error) {
			return c.svc.ListGridpoolOrders(ctx, &wire.ListGridpoolOrdersRequest{
				GridpoolID:       gridpoolID,
				Filter:           wireFilter,
				PaginationParams: paginationParams(token, cfg.pageSize),
			})
		})
		if err != nil {
			return page[domain.OrderDetail]{}, err
		}

		items := make([]domain.OrderDetail, 0, len(resp.OrderDetails))
		for _, w := range resp.OrderDetails {
			detail, err := domain.OrderDetailFromWire(w)
			if err != nil {
				return page[domain.OrderDetail]{}, err
			}
			items = append(items, detail)
		}
		return page[domain.OrderDetail]{items: items, nextToken: nextToken(resp.PaginationInfo)}, nil
	})
}

// ListGridpoolTrades retorna un iterador perezoso sobre los trades del
// gridpool que cumplen el filtro.
func (c *Client) ListGridpoolTrades(gridpoolID int64, filter domain.GridpoolTradeFilter, opts ...CallOption) *Iterator[domain.Trade] {
	wireFilter := domain.TradeFilterToWire(filter)
	cfg := newCallConfig(opts)

	return newIterator(func(ctx context.Context, token string) (page[domain.Trade], error) {
		resp, err := call(ctx, "ListGridpoolTrades", opts, func(ctx context.Context) (*wire.ListGridpoolTradesResponse, error) {
			return c.svc.ListGridpoolTrades(ctx, &wire.ListGridpoolTradesRequest{
				GridpoolID:       gridpoolID,
				Filter:           wireFilter,
				PaginationParams: paginationParams(token, cfg.pageSize),
			})
		})
		if err != nil {
			return page[domain.Trade]{}, err
		}

		items := make([]domain.Trade, 0, len(resp.Trades))
		for _, w := range resp.Trades {
			trade, err := domain.TradeFromWire(w)
			if err != nil {
				return page[domain.Trade]{}, err
			}
			items = append(items, trade)
		}
		return page[domain.Trade]{items: items, nextToken: nextToken(resp.PaginationInfo)}, nil
	})
}

// ListPublicTrades retorna un iterador perezoso sobre los trades públicos
// del mercado que cumplen el filtro.
func (c *Client) ListPublicTrades(filter domain.PublicTradeFilter, opts ...CallOption) *Iterator[domain.PublicTrade] {
	wireFilter := domain.PublicTradeFilterToWire(filter)
	cfg := newCallConfig(opts)

	return newIterator(func(ctx context.Context, token string) (page[domain.PublicTrade], error) {
		resp, err := call(ctx, "ListPublicTrades", opts, func(ctx context.Context) (*wire.ListPublicTradesResponse, error) {
			return c.svc.ListPublicTrades(ctx, &wire.ListPublicTradesRequest{
				Filter:           wireFilter,
				PaginationParams: paginationParams(token, cfg.pageSize),
			})
		})
		if err != nil {
			return page[domain.PublicTrade]{}, err
		}

		items := make([]domain.PublicTrade, 0, len(resp.PublicTrades))
		for _, w := range resp.PublicTrades {
			trade, err := domain.PublicTradeFromWire(w)
			if err != nil {
				return page[domain.PublicTrade]{}, err
			}
			items = append(items, trade)
		}
		return page[domain.PublicTrade]{items: items, nextToken: nextToken(resp.PaginationInfo)}, nil
	})
}

// log emite un log si hay telemetría instalada.
func (c *Client) log(ctx context.Context, msg string, attrs ...attribute.KeyValue) {
	if c.tel != nil {
		c.tel.Debug(ctx, msg, attrs...)
	}
}

// recordOrderOp registra el resultado de una operación sobre órdenes si hay
// telemetría instalada.
func (c *Client) recordOrderOp(ctx context.Context, action string, gridpoolID int64, err error) {
	if c.orderMetrics != nil {
		c.orderMetrics.RecordOperation(ctx, action, gridpoolID, err == nil)
	}
}

// startSpan abre un span para la operación si hay telemetría instalada.
// El closure retornado cierra el span, registrando el error si lo hubo.
func (c *Client) startSpan(ctx context.Context, name string, gridpoolID int64) (context.Context, func(error)) {
	if c.tel == nil {
		return ctx, func(error) {}
	}

	ctx, span := c.tel.StartSpan(ctx, name)
	span.SetAttributes(semconv.Trading.GridpoolID.Int64(gridpoolID))
	return ctx, func(err error) {
		if err != nil {
			c.tel.RecordError(ctx, err)
		}
		span.End()
	}
}

// orderParams mapea una Order a los parámetros del validador.
func orderParams(o domain.Order) domain.OrderParams {
	params := domain.OrderParams{
		Price:          domain.Some(o.Price),
		Quantity:       domain.Some(o.Quantity),
		DeliveryPeriod: &o.DeliveryPeriod,
		OrderType:      &o.Type,
	}
	if o.StopPrice != nil {
		params.StopPrice = domain.Some(*o.StopPrice)
	}
	if o.PeakPriceDelta != nil {
		params.PeakPriceDelta = domain.Some(*o.PeakPriceDelta)
	}
	if o.DisplayQuantity != nil {
		params.DisplayQuantity = domain.Some(*o.DisplayQuantity)
	}
	if o.ValidUntil != nil {
		params.ValidUntil = domain.Some(*o.ValidUntil)
	}
	if o.ExecutionOption != nil {
		params.ExecutionOption = domain.Some(*o.ExecutionOption)
	}
	return params
}

func decodeOrderDetail(w *wire.OrderDetail) (*domain.OrderDetail, error) {
	detail, err := domain.OrderDetailFromWire(w)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func paginationParams(token string, pageSize int32) *wire.PaginationParams {
	if token == "" && pageSize == 0 {
		return nil
	}
	return &wire.PaginationParams{PageSize: pageSize, PageToken: token}
}

func newCallConfig(opts []CallOption) callConfig {
	cfg := callConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func nextToken(info *wire.PaginationInfo) string {
	if info == nil {
		return ""
	}
	return info.NextPageToken
}
