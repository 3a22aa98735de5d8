package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// JSONCodecName subtype de contenido registrado para el codec JSON
// (content-type "application/grpc+json").
const JSONCodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec serializa los mensajes del paquete wire como JSON sobre gRPC.
//
// Los structs de wire llevan tags json con los nombres de campo del esquema
// del servicio; los well-known de protobuf (Timestamp, FieldMask, Value)
// serializan con sus campos etiquetados o su MarshalJSON propio.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal: %w", err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal: %w", err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return JSONCodecName
}
