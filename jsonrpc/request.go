package jsonrpc

import (
	"bytes"
	"encoding/json"
)

const Version = "2.0"

// Request is a structurally valid JSON-RPC 2.0 request. ID holds the raw id
// bytes so it can be echoed back unchanged.
type Request struct {
	JSONRPC string
	ID      json.RawMessage
	Method  string
	Params  json.RawMessage
}

// ParseRequest validates the envelope of a single request object. Any failure
// is reported as a parse error; the id is never trusted in that case.
// Unknown top-level members are ignored.
func ParseRequest(raw []byte) (*Request, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, NewParseError()
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, NewParseError()
	}

	var req Request

	if err := decodeString(fields["jsonrpc"], &req.JSONRPC); err != nil || req.JSONRPC != Version {
		return nil, NewParseError()
	}

	id, ok := fields["id"]
	if !ok || !validID(id) {
		return nil, NewParseError()
	}
	req.ID = id

	if err := decodeString(fields["method"], &req.Method); err != nil {
		return nil, NewParseError()
	}

	params, ok := fields["params"]
	if !ok || len(params) == 0 || params[0] != '{' {
		return nil, NewParseError()
	}
	req.Params = params

	return &req, nil
}

func decodeString(raw json.RawMessage, dst *string) error {
	if len(raw) == 0 || raw[0] != '"' {
		return NewParseError()
	}
	return json.Unmarshal(raw, dst)
}

// validID accepts a string, a number or null.
func validID(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch v.(type) {
	case nil, string, float64:
		return true
	default:
		return false
	}
}
