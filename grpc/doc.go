// Package grpc provee la capa de transporte hacia el servicio de trading.
//
// # Responsabilidades
//
// - Conexión gRPC con keepalive, TLS y espera de estado READY
// - Interceptors de autenticación (API key como metadata) y logging
// - Codec JSON para los mensajes del paquete wire
// - Transport: la implementación de wire.Service sobre la conexión
//
// # Uso típico
//
//	config := grpc.DefaultClientConfig("trading.example.com:443", apiKey)
//	client, err := grpc.NewClient(ctx, config)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	svc := grpc.NewTransport(client.Conn())
//	resp, err := svc.CreateGridpoolOrder(ctx, req)
//
// Los errores remotos llegan como status errors de google.golang.org/grpc;
// la capa client los envuelve en el sistema de errores del dominio sin
// alterar el código ni el mensaje del servidor.
package grpc
