package client

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridpool/telemetry"
	"github.com/xKoRx/gridpool/telemetry/metricbundle"
)

// receiverBuffer capacidad del canal de cada receiver.
const receiverBuffer = 128

// item es lo que viaja por el canal de un receiver: un valor o el error
// terminal del stream.
type item[D any] struct {
	value D
	err   error
}

// Broadcaster multiplexa un único stream server-side hacia múltiples
// receivers.
//
// El stream upstream se abre perezosamente en el primer Subscribe, no en la
// construcción. Cada valor recibido se decodifica una vez y se entrega a
// todos los receivers en orden de llegada, sin descartes y sin replay para
// los que se suscriben tarde.
//
// Ante un error upstream el broadcaster lo propaga a todos los receivers y
// deja de correr. No hay reintento automático: el dueño del cache reemplaza
// el broadcaster en la siguiente suscripción.
type Broadcaster[W any, D any] struct {
	name    string
	open    func(ctx context.Context) (func() (W, error), error)
	decode  func(W) (D, error)
	tel     *telemetry.Client
	metrics *metricbundle.StreamMetrics

	mu        sync.Mutex
	receivers map[int]*Receiver[D]
	nextID    int
	started   bool
	running   bool
	cancel    context.CancelFunc
}

// NewBroadcaster crea un Broadcaster sin abrir el stream upstream.
//
// open abre la llamada server-streaming y retorna la función de recepción;
// decode convierte cada mensaje wire al tipo de dominio.
func NewBroadcaster[W any, D any](
	name string,
	open func(ctx context.Context) (func() (W, error), error),
	decode func(W) (D, error),
	tel *telemetry.Client,
	metrics *metricbundle.StreamMetrics,
) *Broadcaster[W, D] {
	return &Broadcaster[W, D]{
		name:      name,
		open:      open,
		decode:    decode,
		tel:       tel,
		metrics:   metrics,
		receivers: make(map[int]*Receiver[D]),
	}
}

// Subscribe ata un nuevo receiver al broadcaster.
//
// El primer Subscribe abre el stream upstream; si la apertura falla el error
// se retorna y el broadcaster queda detenido. Un Subscribe sobre un
// broadcaster detenido falla: el dueño del cache debe crear uno nuevo.
func (b *Broadcaster[W, D]) Subscribe() (*Receiver[D], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started && !b.running {
		return nil, fmt.Errorf("broadcaster %s is stopped", b.name)
	}

	if !b.started {
		ctx, cancel := context.WithCancel(context.Background())
		recv, err := b.open(ctx)
		if err != nil {
			cancel()
			b.started = true
			return nil, err
		}
		b.started = true
		b.running = true
		b.cancel = cancel
		if b.tel != nil {
			b.tel.Info(ctx, "stream opened", attribute.String("stream", b.name))
		}
		if b.metrics != nil {
			b.metrics.RecordOpened(ctx, b.name)
		}
		go b.pump(ctx, recv)
	}

	r := &Receiver[D]{
		id:   b.nextID,
		ch:   make(chan item[D], receiverBuffer),
		done: make(chan struct{}),
		detach: func(id int) {
			b.detach(id)
		},
	}
	b.receivers[r.id] = r
	b.nextID++

	return r, nil
}

// IsRunning indica si el stream upstream sigue vivo.
func (b *Broadcaster[W, D]) IsRunning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// Stop cancela el stream upstream y cierra todos los receivers.
func (b *Broadcaster[W, D]) Stop() {
	b.stop(nil)
}

// pump bombea el stream upstream hacia los receivers.
func (b *Broadcaster[W, D]) pump(ctx context.Context, recv func() (W, error)) {
	for {
		msg, err := recv()
		if err != nil {
			b.stop(err)
			if b.tel != nil {
				b.tel.Warn(ctx, "stream terminated",
					attribute.String("stream", b.name),
					attribute.String("error", err.Error()))
			}
			if b.metrics != nil {
				b.metrics.RecordTerminated(ctx, b.name, false)
			}
			return
		}

		decoded, err := b.decode(msg)
		if err != nil {
			// Mensaje indescifrable: se propaga como error terminal para no
			// entregar datos corruptos.
			b.stop(err)
			if b.metrics != nil {
				b.metrics.RecordTerminated(ctx, b.name, false)
			}
			return
		}
		if b.metrics != nil {
			b.metrics.RecordEvents(ctx, b.name, 1)
		}

		b.mu.Lock()
		targets := make([]*Receiver[D], 0, len(b.receivers))
		for _, r := range b.receivers {
			targets = append(targets, r)
		}
		b.mu.Unlock()

		// Entrega fuera del lock: un receiver que se desata a mitad de la
		// entrega se salta vía su canal done.
		for _, r := range targets {
			select {
			case r.ch <- item[D]{value: decoded}:
			case <-r.done:
			}
		}
	}
}

// detach desata un receiver; el último receiver cancela el upstream.
func (b *Broadcaster[W, D]) detach(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.receivers[id]
	if !ok {
		return
	}
	delete(b.receivers, id)
	close(r.done)

	if len(b.receivers) == 0 && b.running {
		b.running = false
		if b.cancel != nil {
			b.cancel()
			b.cancel = nil
		}
	}
}

// stop detiene el broadcaster y propaga err (si lo hay) a todos los
// receivers.
func (b *Broadcaster[W, D]) stop(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.started = true
	if !b.running && len(b.receivers) == 0 {
		return
	}
	b.running = false
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}

	for id, r := range b.receivers {
		r.termErr = err
		close(r.done)
		delete(b.receivers, id)
	}
}

// Receiver entrega los valores de un Broadcaster a un consumidor.
type Receiver[D any] struct {
	id     int
	ch     chan item[D]
	done   chan struct{}
	detach func(id int)

	// termErr error terminal del stream, escrito antes de cerrar done.
	termErr error

	closedMu sync.Mutex
	closed   bool
}

// Recv bloquea hasta el siguiente valor del stream.
//
// La cancelación del ctx afecta solo a esta llamada; los demás consumidores
// del mismo broadcaster siguen recibiendo. Cuando el stream termina, los
// valores ya encolados se entregan primero y luego Recv retorna el error
// terminal (o ErrReceiverClosed si el stream cerró sin error).
func (r *Receiver[D]) Recv(ctx context.Context) (D, error) {
	var zero D
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case it := <-r.ch:
		return it.value, it.err
	case <-r.done:
		// Drenar lo encolado antes de reportar el cierre.
		select {
		case it := <-r.ch:
			return it.value, it.err
		default:
		}
		if r.termErr != nil {
			return zero, r.termErr
		}
		return zero, ErrReceiverClosed
	}
}

// Close desata el receiver de su broadcaster.
//
// Cerrar el último receiver cancela el stream upstream.
func (r *Receiver[D]) Close() {
	r.closedMu.Lock()
	defer r.closedMu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.detach(r.id)
}

// ErrReceiverClosed se retorna cuando el stream terminó sin error pero ya no
// entregará más valores.
var ErrReceiverClosed = fmt.Errorf("stream receiver closed")
