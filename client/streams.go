package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/xKoRx/gridpool/domain"
	"github.com/xKoRx/gridpool/wire"
)

// streamCaches guarda los broadcasters vivos, uno por clave de filtro.
//
// El mutex cubre solo la resolución check-else-create en el mapa: dos
// suscripciones concurrentes con el mismo filtro resuelven el mismo
// broadcaster. La apertura del stream upstream queda fuera de este lock; la
// serializa cada broadcaster por instancia, así claves distintas abren en
// paralelo.
type streamCaches struct {
	mu           sync.Mutex
	orders       map[string]*Broadcaster[*wire.ReceiveGridpoolOrdersStreamResponse, domain.OrderDetail]
	trades       map[string]*Broadcaster[*wire.ReceiveGridpoolTradesStreamResponse, domain.Trade]
	publicTrades map[string]*Broadcaster[*wire.ReceivePublicTradesStreamResponse, domain.PublicTrade]
}

func newStreamCaches() *streamCaches {
	return &streamCaches{
		orders:       make(map[string]*Broadcaster[*wire.ReceiveGridpoolOrdersStreamResponse, domain.OrderDetail]),
		trades:       make(map[string]*Broadcaster[*wire.ReceiveGridpoolTradesStreamResponse, domain.Trade]),
		publicTrades: make(map[string]*Broadcaster[*wire.ReceivePublicTradesStreamResponse, domain.PublicTrade]),
	}
}

func (s *streamCaches) stopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, b := range s.orders {
		b.Stop()
		delete(s.orders, key)
	}
	for key, b := range s.trades {
		b.Stop()
		delete(s.trades, key)
	}
	for key, b := range s.publicTrades {
		b.Stop()
		delete(s.publicTrades, key)
	}
}

// subscribe resuelve el broadcaster para una clave: reusa el cacheado solo
// mientras siga corriendo, y lo reemplaza si ya murió.
func subscribe[W any, D any](
	mu *sync.Mutex,
	cache map[string]*Broadcaster[W, D],
	key string,
	create func() *Broadcaster[W, D],
) (*Receiver[D], error) {
	mu.Lock()
	b, ok := cache[key]
	if !ok || (!b.IsRunning() && !neverStarted(b)) {
		b = create()
		cache[key] = b
	}
	mu.Unlock()

	// Subscribe abre el stream upstream en la primera suscripción; corre
	// fuera del lock del cache para que una apertura lenta en una clave no
	// bloquee las suscripciones de las demás.
	return b.Subscribe()
}

// neverStarted distingue un broadcaster recién creado (reusable: abrirá el
// stream en el primer Subscribe) de uno que ya corrió y murió.
func neverStarted[W any, D any](b *Broadcaster[W, D]) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.started
}

// validateStreamFilterPeriod rechaza filtros de stream con ventana de
// entrega en el pasado.
func validateStreamFilterPeriod(period *domain.DeliveryPeriod) error {
	return domain.ValidateOrderParams(domain.OrderParams{DeliveryPeriod: period})
}

// StreamGridpoolOrders se suscribe al stream de actualizaciones de órdenes
// del gridpool que cumplen el filtro.
//
// Dos suscripciones con filtros de igual contenido comparten el mismo stream
// upstream; el stream se abre recién en la primera suscripción. Si el stream
// cacheado ya murió, la suscripción crea uno nuevo.
//
// Example:
//
//	rx, err := client.StreamGridpoolOrders(gridpoolID, filter)
//	if err != nil {
//	    return err
//	}
//	defer rx.Close()
//	for {
//	    detail, err := rx.Recv(ctx)
//	    ...
//	}
func (c *Client) StreamGridpoolOrders(gridpoolID int64, filter domain.GridpoolOrderFilter) (*Receiver[domain.OrderDetail], error) {
	if err := validateStreamFilterPeriod(filter.DeliveryPeriod); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%d|%s", gridpoolID, filter.Key())
	wireFilter := domain.OrderFilterToWire(filter)

	return subscribe(&c.streams.mu, c.streams.orders, key, func() *Broadcaster[*wire.ReceiveGridpoolOrdersStreamResponse, domain.OrderDetail] {
		return NewBroadcaster(
			fmt.Sprintf("gridpool-orders-%d", gridpoolID),
			func(ctx context.Context) (func() (*wire.ReceiveGridpoolOrdersStreamResponse, error), error) {
				stream, err := c.svc.ReceiveGridpoolOrdersStream(ctx, &wire.ReceiveGridpoolOrdersStreamRequest{
					GridpoolID: gridpoolID,
					Filter:     wireFilter,
				})
				if err != nil {
					return nil, domain.RemoteError("ReceiveGridpoolOrdersStream", err)
				}
				return stream.Recv, nil
			},
			func(resp *wire.ReceiveGridpoolOrdersStreamResponse) (domain.OrderDetail, error) {
				return domain.OrderDetailFromWire(resp.OrderDetail)
			},
			c.tel,
			c.streamMetrics,
		)
	})
}

// StreamGridpoolTrades se suscribe al stream de trades del gridpool que
// cumplen el filtro.
func (c *Client) StreamGridpoolTrades(gridpoolID int64, filter domain.GridpoolTradeFilter) (*Receiver[domain.Trade], error) {
	if err := validateStreamFilterPeriod(filter.DeliveryPeriod); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%d|%s", gridpoolID, filter.Key())
	wireFilter := domain.TradeFilterToWire(filter)

	return subscribe(&c.streams.mu, c.streams.trades, key, func() *Broadcaster[*wire.ReceiveGridpoolTradesStreamResponse, domain.Trade] {
		return NewBroadcaster(
			fmt.Sprintf("gridpool-trades-%d", gridpoolID),
			func(ctx context.Context) (func() (*wire.ReceiveGridpoolTradesStreamResponse, error), error) {
				stream, err := c.svc.ReceiveGridpoolTradesStream(ctx, &wire.ReceiveGridpoolTradesStreamRequest{
					GridpoolID: gridpoolID,
					Filter:     wireFilter,
				})
				if err != nil {
					return nil, domain.RemoteError("ReceiveGridpoolTradesStream", err)
				}
				return stream.Recv, nil
			},
			func(resp *wire.ReceiveGridpoolTradesStreamResponse) (domain.Trade, error) {
				return domain.TradeFromWire(resp.Trade)
			},
			c.tel,
			c.streamMetrics,
		)
	})
}

// StreamPublicTrades se suscribe al stream de trades públicos del mercado.
//
// El cache se indexa solo por la clave del filtro: los trades públicos no
// pertenecen a ningún gridpool.
func (c *Client) StreamPublicTrades(filter domain.PublicTradeFilter) (*Receiver[domain.PublicTrade], error) {
	if err := validateStreamFilterPeriod(filter.DeliveryPeriod); err != nil {
		return nil, err
	}

	key := filter.Key()
	wireFilter := domain.PublicTradeFilterToWire(filter)

	return subscribe(&c.streams.mu, c.streams.publicTrades, key, func() *Broadcaster[*wire.ReceivePublicTradesStreamResponse, domain.PublicTrade] {
		return NewBroadcaster(
			"public-trades",
			func(ctx context.Context) (func() (*wire.ReceivePublicTradesStreamResponse, error), error) {
				stream, err := c.svc.ReceivePublicTradesStream(ctx, &wire.ReceivePublicTradesStreamRequest{
					Filter: wireFilter,
				})
				if err != nil {
					return nil, domain.RemoteError("ReceivePublicTradesStream", err)
				}
				return stream.Recv, nil
			},
			func(resp *wire.ReceivePublicTradesStreamResponse) (domain.PublicTrade, error) {
				return domain.PublicTradeFromWire(resp.PublicTrade)
			},
			c.tel,
			c.streamMetrics,
		)
	})
}
