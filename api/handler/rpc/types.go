package rpc

import "encoding/json"

// Request, SuccessResponse and ErrorResponse document the wire format.

type Request struct {
	JSONRPC string          `json:"jsonrpc" example:"2.0"`
	ID      any             `json:"id" swaggertype:"integer" example:"1"`
	Method  string          `json:"method" example:"get_burnStatus"`
	Params  json.RawMessage `json:"params" swaggertype:"object"`
}

type SuccessResponse struct {
	JSONRPC string `json:"jsonrpc" example:"2.0"`
	Result  any    `json:"result"`
	ID      any    `json:"id" swaggertype:"integer" example:"1"`
}

type ErrorObject struct {
	Code    int    `json:"code" example:"-32602"`
	Message string `json:"message" example:"Invalid params"`
}

type ErrorResponse struct {
	JSONRPC string      `json:"jsonrpc" example:"2.0"`
	Error   ErrorObject `json:"error"`
	ID      any         `json:"id" swaggertype:"integer" example:"1"`
}
