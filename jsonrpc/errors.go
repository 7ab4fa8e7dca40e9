package jsonrpc

import (
	"fmt"
	"net/http"
)

const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeRateLimited    = -32005
)

// Error is a JSON-RPC error object. HTTPStatus is the transport status the
// error is served with and is not part of the wire object.
type Error struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

func NewParseError() *Error {
	return &Error{Code: CodeParseError, Message: "Parse error", HTTPStatus: http.StatusInternalServerError}
}

func NewMethodNotFoundError(method string) *Error {
	return &Error{
		Code:       CodeMethodNotFound,
		Message:    fmt.Sprintf("Method not found: %s", method),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewInvalidParamsError(reason string) *Error {
	msg := "Invalid params"
	if reason != "" {
		msg += ": " + reason
	}
	return &Error{Code: CodeInvalidParams, Message: msg, HTTPStatus: http.StatusInternalServerError}
}

func NewRateLimitedError() *Error {
	return &Error{Code: CodeRateLimited, Message: "Rate limited", HTTPStatus: http.StatusTooManyRequests}
}

func NewInternalError() *Error {
	return &Error{Code: CodeInternalError, Message: "Internal error", HTTPStatus: http.StatusInternalServerError}
}
