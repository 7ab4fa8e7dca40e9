package jsonrpc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
)

var nullID = json.RawMessage("null")

type successResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  any             `json:"result"`
	ID      json.RawMessage `json:"id"`
}

type errorResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Error   *Error          `json:"error"`
	ID      json.RawMessage `json:"id"`
}

// Success encodes a success envelope. A nil result is encoded as null.
// Integer values inside result are expected to use types.HexInt so they
// render as 0x-prefixed hex.
func Success(id json.RawMessage, result any) ([]byte, error) {
	return encode(successResponse{
		JSONRPC: Version,
		Result:  result,
		ID:      orNull(id),
	})
}

// Failure encodes an error envelope. Pass a nil id when the request id could
// not be determined.
func Failure(rpcErr *Error, id json.RawMessage) []byte {
	body, err := encode(errorResponse{
		JSONRPC: Version,
		Error:   rpcErr,
		ID:      orNull(id),
	})
	if err != nil {
		// only reachable with an id that is not valid JSON
		msg, _ := json.Marshal(rpcErr.Message)
		return []byte(`{"jsonrpc":"2.0","error":{"code":` + strconv.Itoa(rpcErr.Code) +
			`,"message":` + string(msg) + `},"id":null}`)
	}
	return body
}

// StatusOf returns the HTTP status an error response is served with.
func StatusOf(rpcErr *Error) int {
	if rpcErr == nil || rpcErr.HTTPStatus == 0 {
		return http.StatusOK
	}
	return rpcErr.HTTPStatus
}

// encode marshals without HTML escaping so string ids are echoed unchanged.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func orNull(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return nullID
	}
	return id
}
