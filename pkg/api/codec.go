package api

import "encoding/json"

// JSONCodec marshals plain Go request and response structs as JSON.
// It is registered under the "json" name, replacing Connect's protobuf
// JSON codec, so clients talk to the service with Content-Type
// application/json.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

// Unmarshal implements connect.Codec.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
