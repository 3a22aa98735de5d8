package client

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryReusesClientPerTargetAndKey(t *testing.T) {
	reg := NewRegistry()
	dials := 0
	reg.dial = func(ctx context.Context, target, apiKey string, opts ...Option) (*Client, error) {
		dials++
		return New(newFakeService()), nil
	}

	ctx := context.Background()
	a, err := reg.GetOrCreate(ctx, "host-a:443", "key-1")
	require.NoError(t, err)
	b, err := reg.GetOrCreate(ctx, "host-a:443", "key-1")
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Equal(t, 1, dials)

	// Misma API key contra otro destino: cliente independiente.
	other, err := reg.GetOrCreate(ctx, "host-b:443", "key-1")
	require.NoError(t, err)
	require.NotSame(t, a, other)

	// Mismo destino con otra API key: también independiente.
	otherKey, err := reg.GetOrCreate(ctx, "host-a:443", "key-2")
	require.NoError(t, err)
	require.NotSame(t, a, otherKey)
	require.Equal(t, 3, dials)
}

func TestRegistryDoesNotCacheFailedDials(t *testing.T) {
	reg := NewRegistry()
	fail := true
	reg.dial = func(ctx context.Context, target, apiKey string, opts ...Option) (*Client, error) {
		if fail {
			return nil, fmt.Errorf("connection refused")
		}
		return New(newFakeService()), nil
	}

	ctx := context.Background()
	_, err := reg.GetOrCreate(ctx, "host-a:443", "key-1")
	require.Error(t, err)

	fail = false
	c, err := reg.GetOrCreate(ctx, "host-a:443", "key-1")
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestRegistryCloseEmptiesRegistry(t *testing.T) {
	reg := NewRegistry()
	dials := 0
	reg.dial = func(ctx context.Context, target, apiKey string, opts ...Option) (*Client, error) {
		dials++
		return New(newFakeService()), nil
	}

	ctx := context.Background()
	_, err := reg.GetOrCreate(ctx, "host-a:443", "key-1")
	require.NoError(t, err)
	require.NoError(t, reg.Close())

	// Tras el cierre, la siguiente llamada crea un cliente nuevo.
	_, err = reg.GetOrCreate(ctx, "host-a:443", "key-1")
	require.NoError(t, err)
	require.Equal(t, 2, dials)
}
