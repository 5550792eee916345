// Package jsoncodec registers a gRPC codec that carries plain Go structs as JSON.
// Clients select it per call with grpc.CallContentSubtype(jsoncodec.Name).
package jsoncodec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// Name is the content subtype, sent as application/grpc+json
const Name = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec implements encoding.Codec with encoding/json
type Codec struct{}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jsoncodec: marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes JSON into v; an empty payload leaves v at its zero value
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("jsoncodec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name returns the registered content subtype
func (Codec) Name() string {
	return Name
}
