package client

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeUpstream simula la llamada server-streaming: la apertura captura el
// contexto y la recepción lee de un canal controlado por el test.
type fakeUpstream struct {
	values chan int
	errs   chan error
	opens  atomic.Int32
	ctx    context.Context
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		values: make(chan int),
		errs:   make(chan error),
	}
}

func (u *fakeUpstream) open(ctx context.Context) (func() (int, error), error) {
	u.opens.Add(1)
	u.ctx = ctx
	return func() (int, error) {
		select {
		case v := <-u.values:
			return v, nil
		case err := <-u.errs:
			return 0, err
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}, nil
}

func decodeInt(v int) (string, error) {
	return fmt.Sprintf("v%d", v), nil
}

func recvWithTimeout(t *testing.T, r *Receiver[string]) (string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return r.Recv(ctx)
}

func TestBroadcasterLazyOpen(t *testing.T) {
	upstream := newFakeUpstream()
	b := NewBroadcaster("test", upstream.open, decodeInt, nil, nil)

	require.Equal(t, int32(0), upstream.opens.Load())
	require.False(t, b.IsRunning())

	r, err := b.Subscribe()
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, int32(1), upstream.opens.Load())
	require.True(t, b.IsRunning())

	// Una segunda suscripción no reabre el stream.
	r2, err := b.Subscribe()
	require.NoError(t, err)
	defer r2.Close()
	require.Equal(t, int32(1), upstream.opens.Load())
}

func TestBroadcasterFanOutInOrder(t *testing.T) {
	upstream := newFakeUpstream()
	b := NewBroadcaster("test", upstream.open, decodeInt, nil, nil)

	r1, err := b.Subscribe()
	require.NoError(t, err)
	defer r1.Close()
	r2, err := b.Subscribe()
	require.NoError(t, err)
	defer r2.Close()

	upstream.values <- 1
	upstream.values <- 2

	for _, r := range []*Receiver[string]{r1, r2} {
		got, err := recvWithTimeout(t, r)
		require.NoError(t, err)
		require.Equal(t, "v1", got)

		got, err = recvWithTimeout(t, r)
		require.NoError(t, err)
		require.Equal(t, "v2", got)
	}
}

func TestBroadcasterNoReplayForLateSubscriber(t *testing.T) {
	upstream := newFakeUpstream()
	b := NewBroadcaster("test", upstream.open, decodeInt, nil, nil)

	r1, err := b.Subscribe()
	require.NoError(t, err)
	defer r1.Close()

	upstream.values <- 1
	got, err := recvWithTimeout(t, r1)
	require.NoError(t, err)
	require.Equal(t, "v1", got)

	// El suscriptor tardío solo ve lo que llega después de suscribirse.
	late, err := b.Subscribe()
	require.NoError(t, err)
	defer late.Close()

	upstream.values <- 2
	got, err = recvWithTimeout(t, late)
	require.NoError(t, err)
	require.Equal(t, "v2", got)
}

func TestBroadcasterErrorPropagatesToAllReceivers(t *testing.T) {
	upstream := newFakeUpstream()
	b := NewBroadcaster("test", upstream.open, decodeInt, nil, nil)

	r1, err := b.Subscribe()
	require.NoError(t, err)
	r2, err := b.Subscribe()
	require.NoError(t, err)

	streamErr := fmt.Errorf("stream broken")
	upstream.errs <- streamErr

	_, err = recvWithTimeout(t, r1)
	require.ErrorIs(t, err, streamErr)
	_, err = recvWithTimeout(t, r2)
	require.ErrorIs(t, err, streamErr)

	require.False(t, b.IsRunning())

	// Suscribirse a un broadcaster muerto falla.
	_, err = b.Subscribe()
	require.Error(t, err)
}

func TestBroadcasterBufferedItemsDrainBeforeClose(t *testing.T) {
	upstream := newFakeUpstream()
	b := NewBroadcaster("test", upstream.open, decodeInt, nil, nil)

	r, err := b.Subscribe()
	require.NoError(t, err)

	upstream.values <- 1
	// Esperar a que el valor quede encolado antes de terminar el stream.
	require.Eventually(t, func() bool { return len(r.ch) == 1 }, time.Second, time.Millisecond)
	upstream.errs <- fmt.Errorf("stream broken")

	got, err := recvWithTimeout(t, r)
	require.NoError(t, err)
	require.Equal(t, "v1", got)

	_, err = recvWithTimeout(t, r)
	require.EqualError(t, err, "stream broken")
}

func TestBroadcasterLastReceiverCancelsUpstream(t *testing.T) {
	upstream := newFakeUpstream()
	b := NewBroadcaster("test", upstream.open, decodeInt, nil, nil)

	r1, err := b.Subscribe()
	require.NoError(t, err)
	r2, err := b.Subscribe()
	require.NoError(t, err)

	r1.Close()
	require.NoError(t, upstream.ctx.Err())
	require.True(t, b.IsRunning())

	r2.Close()
	require.Error(t, upstream.ctx.Err())
	require.False(t, b.IsRunning())

	// Close es idempotente.
	r2.Close()
}

func TestBroadcasterStopClosesReceiversWithoutError(t *testing.T) {
	upstream := newFakeUpstream()
	b := NewBroadcaster("test", upstream.open, decodeInt, nil, nil)

	r, err := b.Subscribe()
	require.NoError(t, err)

	b.Stop()

	_, err = recvWithTimeout(t, r)
	require.ErrorIs(t, err, ErrReceiverClosed)
	require.False(t, b.IsRunning())
}

func TestBroadcasterOpenFailure(t *testing.T) {
	openErr := fmt.Errorf("dial refused")
	b := NewBroadcaster("test",
		func(ctx context.Context) (func() (int, error), error) {
			return nil, openErr
		},
		decodeInt, nil, nil)

	_, err := b.Subscribe()
	require.ErrorIs(t, err, openErr)
	require.False(t, b.IsRunning())

	// El broadcaster queda muerto: el dueño del cache debe crear uno nuevo.
	_, err = b.Subscribe()
	require.Error(t, err)
	require.NotErrorIs(t, err, openErr)
}

func TestBroadcasterDecodeErrorTerminatesStream(t *testing.T) {
	upstream := newFakeUpstream()
	decodeErr := fmt.Errorf("malformed message")
	b := NewBroadcaster("test", upstream.open,
		func(v int) (string, error) {
			if v < 0 {
				return "", decodeErr
			}
			return fmt.Sprintf("v%d", v), nil
		}, nil, nil)

	r, err := b.Subscribe()
	require.NoError(t, err)

	upstream.values <- -1

	_, err = recvWithTimeout(t, r)
	require.ErrorIs(t, err, decodeErr)
	require.False(t, b.IsRunning())
}

func TestReceiverRecvHonorsContext(t *testing.T) {
	upstream := newFakeUpstream()
	b := NewBroadcaster("test", upstream.open, decodeInt, nil, nil)

	r, err := b.Subscribe()
	require.NoError(t, err)
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = r.Recv(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// La cancelación del ctx no desata al receiver: el siguiente valor llega.
	upstream.values <- 7
	got, err := recvWithTimeout(t, r)
	require.NoError(t, err)
	require.Equal(t, "v7", got)
}
