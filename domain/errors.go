package domain

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorCode representa un código de error del dominio de trading.
type ErrorCode string

// Códigos de error estándar
const (
	// ErrInvalidArgument parámetros rechazados por validación local; la red
	// nunca se tocó.
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrNotSupported feature del mercado aún no soportada por el SDK
	// (STOP_LIMIT, ICEBERG, tipos de orden distintos de LIMIT).
	ErrNotSupported ErrorCode = "NOT_SUPPORTED"

	// ErrRemoteRejected el servicio remoto rechazó la operación. El código
	// y detalle gRPC originales se preservan verbatim.
	ErrRemoteRejected ErrorCode = "REMOTE_REJECTED"

	// ErrTimeout la llamada excedió su deadline antes de que el servicio
	// respondiera.
	ErrTimeout ErrorCode = "TIMEOUT"

	// ErrNotConnected la conexión con el servicio no está disponible.
	ErrNotConnected ErrorCode = "NOT_CONNECTED"
)

// TradingError representa un error del dominio de trading con contexto.
type TradingError struct {
	Code     ErrorCode
	Message  string
	GrpcCode codes.Code
	Details  map[string]interface{}
	Wrapped  error
}

// Error implementa la interfaz error.
func (e *TradingError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implementa la interfaz errors.Unwrap.
func (e *TradingError) Unwrap() error {
	return e.Wrapped
}

// WithDetail agrega un detalle al error.
func (e *TradingError) WithDetail(key string, value interface{}) *TradingError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewError crea un nuevo TradingError.
//
// Example:
//
//	err := domain.NewError(domain.ErrNotConnected, "connection is closed")
func NewError(code ErrorCode, message string) *TradingError {
	return &TradingError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WrapError envuelve un error existente con contexto de trading.
func WrapError(code ErrorCode, message string, wrapped error) *TradingError {
	return &TradingError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// NewValidationError crea un error de validación local sobre un campo.
//
// Example:
//
//	err := domain.NewValidationError("quantity", q, "Quantity must be strictly positive")
func NewValidationError(field string, value interface{}, message string) *TradingError {
	err := NewError(ErrInvalidArgument, message)
	err.GrpcCode = codes.InvalidArgument
	return err.WithDetail("field", field).WithDetail("value", fmt.Sprintf("%v", value))
}

// NewNotSupportedError crea un error para features aún no soportadas.
func NewNotSupportedError(feature, message string) *TradingError {
	err := NewError(ErrNotSupported, message)
	err.GrpcCode = codes.Unimplemented
	return err.WithDetail("feature", feature)
}

// NewTimeoutError crea un error de deadline excedido.
func NewTimeoutError(operation string, wrapped error) *TradingError {
	err := WrapError(ErrTimeout, fmt.Sprintf("%s deadline exceeded", operation), wrapped)
	err.GrpcCode = codes.DeadlineExceeded
	return err
}

// NewNotConnectedError crea un error de conexión no disponible.
func NewNotConnectedError(message string) *TradingError {
	err := NewError(ErrNotConnected, message)
	err.GrpcCode = codes.Unavailable
	return err
}

// RemoteError envuelve un error del servicio remoto preservando su status
// gRPC original. El mensaje y código del servidor viajan intactos; el SDK
// nunca los reinterpreta ni los reintenta.
func RemoteError(operation string, wrapped error) *TradingError {
	st, _ := status.FromError(wrapped)
	err := WrapError(ErrRemoteRejected, fmt.Sprintf("%s rejected by service: %s", operation, st.Message()), wrapped)
	err.GrpcCode = st.Code()
	return err
}

// Code retorna el ErrorCode de un error, o cadena vacía si no es un
// TradingError.
func Code(err error) ErrorCode {
	var te *TradingError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

// IsInvalidArgument indica si el error es un rechazo de validación local.
func IsInvalidArgument(err error) bool {
	return Code(err) == ErrInvalidArgument
}

// IsNotSupported indica si el error es una feature no soportada.
func IsNotSupported(err error) bool {
	return Code(err) == ErrNotSupported
}

// IsRemoteRejected indica si el error proviene del servicio remoto.
func IsRemoteRejected(err error) bool {
	return Code(err) == ErrRemoteRejected
}

// IsTimeout indica si el error es un deadline excedido.
func IsTimeout(err error) bool {
	return Code(err) == ErrTimeout
}

// GrpcCode retorna el código gRPC asociado al error, codes.Unknown si no es
// un TradingError.
func GrpcCode(err error) codes.Code {
	var te *TradingError
	if errors.As(err, &te) {
		return te.GrpcCode
	}
	return codes.Unknown
}
