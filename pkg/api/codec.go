// Package api defines the Connect RPC contracts of the JustSplit services:
// message types, procedure names, handler constructors and typed clients.
//
// Messages are plain Go structs encoded as JSON. Codec replaces connect's
// built-in "json" codec, so both handlers and clients created here speak
// Content-Type application/json and work with curl or a browser fetch.
package api

import (
	"encoding/json"
	"fmt"
)

// Codec marshals messages with encoding/json.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
