package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// Info registra un mensaje informativo
func (c *Client) Info(ctx context.Context, msg string, attrs ...attribute.KeyValue) {
	if c.logger == nil {
		return
	}

	c.logger.InfoContext(ctx, msg, c.logArgs(ctx, attrs)...)
}

// Error registra un mensaje de error
func (c *Client) Error(ctx context.Context, msg string, err error, attrs ...attribute.KeyValue) {
	if c.logger == nil {
		return
	}

	args := c.logArgs(ctx, attrs)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	c.logger.ErrorContext(ctx, msg, args...)
}

// Warn registra un mensaje de advertencia
func (c *Client) Warn(ctx context.Context, msg string, attrs ...attribute.KeyValue) {
	if c.logger == nil {
		return
	}

	c.logger.WarnContext(ctx, msg, c.logArgs(ctx, attrs)...)
}

// Debug registra un mensaje de debug
func (c *Client) Debug(ctx context.Context, msg string, attrs ...attribute.KeyValue) {
	if c.logger == nil {
		return
	}

	c.logger.DebugContext(ctx, msg, c.logArgs(ctx, attrs)...)
}

// logArgs combina los atributos del contexto (comunes + de evento) con los de
// la llamada y los convierte a argumentos slog. Los atributos de la llamada
// van al final y pisan a los heredados ante claves repetidas.
func (c *Client) logArgs(ctx context.Context, attrs []attribute.KeyValue) []any {
	merged := GetCommonAttrs(ctx)
	merged = append(merged, GetEventAttrs(ctx)...)
	merged = append(merged, attrs...)

	args := make([]any, 0, len(merged)*2)
	for _, attr := range merged {
		args = append(args, string(attr.Key), attr.Value.AsInterface())
	}
	return args
}
