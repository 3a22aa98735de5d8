package grpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// ClientConfig configuración para la conexión gRPC con el servicio de
// trading.
type ClientConfig struct {
	// Target dirección del servicio (ej: "grpc://trading.example.com:443")
	Target string

	// APIKey credencial que viaja como metadata `key` en cada llamada
	APIKey string

	// DialTimeout timeout para la conexión inicial
	DialTimeout time.Duration

	// KeepAlive configuración de keepalive
	KeepAlive *KeepAliveConfig

	// Insecure usar conexión sin TLS (solo entornos de desarrollo)
	Insecure bool

	// UnaryInterceptors interceptors para llamadas unary
	UnaryInterceptors []grpc.UnaryClientInterceptor

	// StreamInterceptors interceptors para streams
	StreamInterceptors []grpc.StreamClientInterceptor
}

// KeepAliveConfig configuración de keepalive.
type KeepAliveConfig struct {
	// Time intervalo de keepalive pings
	Time time.Duration

	// Timeout timeout para respuesta de ping
	Timeout time.Duration

	// PermitWithoutStream permitir pings sin streams activos
	PermitWithoutStream bool
}

// DefaultClientConfig retorna configuración por defecto.
func DefaultClientConfig(target, apiKey string) *ClientConfig {
	return &ClientConfig{
		Target:      target,
		APIKey:      apiKey,
		DialTimeout: 10 * time.Second,
		KeepAlive: &KeepAliveConfig{
			Time:                30 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		},
	}
}

// Client wrapper sobre grpc.ClientConn con funcionalidad adicional.
type Client struct {
	conn   *grpc.ClientConn
	config *ClientConfig
	target string
}

// NewClient crea una nueva conexión con el servicio.
//
// Example:
//
//	config := grpc.DefaultClientConfig("trading.example.com:443", apiKey)
//	client, err := grpc.NewClient(ctx, config)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func NewClient(ctx context.Context, config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	opts := []grpc.DialOption{}

	// Credentials
	if config.Insecure {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(nil)))
	}

	// KeepAlive
	if config.KeepAlive != nil {
		kaParams := keepalive.ClientParameters{
			Time:                config.KeepAlive.Time,
			Timeout:             config.KeepAlive.Timeout,
			PermitWithoutStream: config.KeepAlive.PermitWithoutStream,
		}
		opts = append(opts, grpc.WithKeepaliveParams(kaParams))
	}

	// Interceptors: la credencial siempre viaja primero en la cadena; la
	// normalización de errores envuelve al resto para que todo fallo llegue
	// al caller como status error.
	unary := []grpc.UnaryClientInterceptor{
		AuthUnaryClientInterceptor(config.APIKey),
		ErrorHandlingUnaryClientInterceptor(),
	}
	unary = append(unary, config.UnaryInterceptors...)
	stream := []grpc.StreamClientInterceptor{AuthStreamClientInterceptor(config.APIKey)}
	stream = append(stream, config.StreamInterceptors...)
	opts = append(opts,
		grpc.WithChainUnaryInterceptor(unary...),
		grpc.WithChainStreamInterceptor(stream...),
	)

	conn, err := grpc.NewClient(config.Target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", config.Target, err)
	}

	client := &Client{
		conn:   conn,
		config: config,
		target: config.Target,
	}

	return client, nil
}

// Conn retorna la conexión gRPC subyacente.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

// Close cierra la conexión.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Target retorna el target del cliente.
func (c *Client) Target() string {
	return c.target
}

// State retorna el estado de la conexión.
func (c *Client) State() connectivity.State {
	if c.conn == nil {
		return connectivity.Shutdown
	}
	return c.conn.GetState()
}

// WaitForReady espera a que la conexión esté lista.
//
// Example:
//
//	if err := client.WaitForReady(ctx, 30*time.Second); err != nil {
//	    return err
//	}
func (c *Client) WaitForReady(ctx context.Context, timeout time.Duration) error {
	if c.conn == nil {
		return fmt.Errorf("connection is nil")
	}

	ctxWithTimeout := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		ctxWithTimeout, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	c.conn.Connect()

	// Esperar a que el estado sea READY
	for {
		state := c.conn.GetState()
		if state == connectivity.Ready {
			return nil
		}

		if !c.conn.WaitForStateChange(ctxWithTimeout, state) {
			// Context cancelado o timeout
			return ctxWithTimeout.Err()
		}
	}
}

// IsReady indica si la conexión está lista.
func (c *Client) IsReady() bool {
	return c.State() == connectivity.Ready
}

// IsConnected indica si hay conexión (READY o IDLE).
func (c *Client) IsConnected() bool {
	state := c.State()
	return state == connectivity.Ready || state == connectivity.Idle
}
