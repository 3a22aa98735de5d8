// Package wire define el esquema de mensajes del servicio de Electricity
// Trading y la interfaz de transporte que consume el orquestador.
//
// Los mensajes replican campo a campo el esquema del servicio remoto
// (nombres, números de enum, tipos well-known de protobuf para timestamps,
// field masks y payloads estructurados). La capa de dominio mapea 1:1 sobre
// estos mensajes; la codificación concreta la aporta el paquete grpc.
package wire
