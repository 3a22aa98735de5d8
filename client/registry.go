package client

import (
	"context"
	"sync"
)

// registryKey identifica un cliente por destino y credencial.
type registryKey struct {
	target string
	apiKey string
}

// Registry comparte clientes por (target, API key).
//
// El registro es explícito y pertenece al caller: no hay singleton global
// escondido. Dos GetOrCreate con el mismo destino y credencial retornan el
// mismo *Client; destinos o credenciales distintos producen clientes
// independientes.
type Registry struct {
	mu      sync.Mutex
	clients map[registryKey]*Client
	dial    func(ctx context.Context, target, apiKey string, opts ...Option) (*Client, error)
}

// NewRegistry crea un Registry vacío.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[registryKey]*Client),
		dial:    Dial,
	}
}

// GetOrCreate retorna el cliente registrado para (target, apiKey), creándolo
// en la primera llamada.
//
// Example:
//
//	registry := client.NewRegistry()
//	c, err := registry.GetOrCreate(ctx, "trading.example.com:443", apiKey)
func (r *Registry) GetOrCreate(ctx context.Context, target, apiKey string, opts ...Option) (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey{target: target, apiKey: apiKey}
	if c, ok := r.clients[key]; ok {
		return c, nil
	}

	c, err := r.dial(ctx, target, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	r.clients[key] = c
	return c, nil
}

// Close cierra todos los clientes registrados y vacía el registro.
//
// Retorna el primer error de cierre encontrado.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var first error
	for key, c := range r.clients {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
		delete(r.clients, key)
	}
	return first
}
