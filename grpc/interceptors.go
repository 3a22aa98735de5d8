package grpc

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/xKoRx/gridpool/telemetry"
)

// authMetadataKey nombre del metadata con la credencial del servicio.
const authMetadataKey = "key"

// AuthUnaryClientInterceptor agrega la API key como metadata en llamadas
// unary.
func AuthUnaryClientInterceptor(apiKey string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if apiKey != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, authMetadataKey, apiKey)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// AuthStreamClientInterceptor agrega la API key como metadata en streams.
func AuthStreamClientInterceptor(apiKey string) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		if apiKey != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, authMetadataKey, apiKey)
		}
		return streamer(ctx, desc, cc, method, opts...)
	}
}

// LoggingUnaryClientInterceptor interceptor de logging para llamadas unary.
//
// Registra cada llamada RPC con duración y resultado.
func LoggingUnaryClientInterceptor(client *telemetry.Client) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		start := time.Now()

		err := invoker(ctx, method, req, reply, cc, opts...)

		duration := time.Since(start)
		attrs := []attribute.KeyValue{
			attribute.String("rpc.method", method),
			attribute.String("rpc.system", "grpc"),
			attribute.Float64("rpc.duration_ms", float64(duration.Milliseconds())),
		}

		if err != nil {
			client.Error(ctx, "gRPC call failed", err, attrs...)
		} else {
			client.Debug(ctx, "gRPC call succeeded", attrs...)
		}

		return err
	}
}

// LoggingStreamClientInterceptor interceptor de logging para streams.
func LoggingStreamClientInterceptor(client *telemetry.Client) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		stream, err := streamer(ctx, desc, cc, method, opts...)

		attrs := []attribute.KeyValue{
			attribute.String("rpc.method", method),
			attribute.String("rpc.system", "grpc"),
			attribute.String("rpc.type", "stream"),
		}

		if err != nil {
			client.Error(ctx, "gRPC stream open failed", err, attrs...)
			return nil, err
		}

		client.Info(ctx, "gRPC stream opened", attrs...)

		return stream, nil
	}
}

// ErrorHandlingUnaryClientInterceptor convierte errores gRPC a formato
// consistente.
func ErrorHandlingUnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			// Convertir a status error si no lo es
			if _, ok := status.FromError(err); !ok {
				err = status.Error(codes.Unknown, err.Error())
			}
		}
		return err
	}
}
