package jsonrpc

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initia-labs/bridgeinfo/types"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		id     string
		method string
	}{
		{"numeric id", `{"jsonrpc":"2.0","id":1,"method":"get_activeChains","params":{}}`, `1`, "get_activeChains"},
		{"string id", `{"jsonrpc":"2.0","id":"abc","method":"get_burnStatus","params":{"hash":"0x1"}}`, `"abc"`, "get_burnStatus"},
		{"null id", `{"jsonrpc":"2.0","id":null,"method":"x","params":{}}`, `null`, "x"},
		{"unknown members ignored", `{"jsonrpc":"2.0","id":7,"method":"x","params":{"a":1},"extra":true}`, `7`, "x"},
		{"surrounding whitespace", "  \n{\"jsonrpc\":\"2.0\",\"id\":2.5,\"method\":\"x\",\"params\":{}}\n", `2.5`, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequest([]byte(tt.body))
			require.NoError(t, err)
			require.Equal(t, Version, req.JSONRPC)
			require.Equal(t, tt.id, string(req.ID))
			require.Equal(t, tt.method, req.Method)
			require.True(t, json.Valid(req.Params))
		})
	}
}

func TestParseRequest_Invalid(t *testing.T) {
	bodies := map[string]string{
		"empty":            ``,
		"not json":         `{"jsonrpc":`,
		"batch":            `[{"jsonrpc":"2.0","id":1,"method":"x","params":{}}]`,
		"scalar":           `42`,
		"wrong version":    `{"jsonrpc":"1.0","id":1,"method":"x","params":{}}`,
		"numeric version":  `{"jsonrpc":2.0,"id":1,"method":"x","params":{}}`,
		"missing version":  `{"id":1,"method":"x","params":{}}`,
		"missing id":       `{"jsonrpc":"2.0","method":"x","params":{}}`,
		"object id":        `{"jsonrpc":"2.0","id":{},"method":"x","params":{}}`,
		"bool id":          `{"jsonrpc":"2.0","id":true,"method":"x","params":{}}`,
		"missing method":   `{"jsonrpc":"2.0","id":1,"params":{}}`,
		"numeric method":   `{"jsonrpc":"2.0","id":1,"method":5,"params":{}}`,
		"missing params":   `{"jsonrpc":"2.0","id":1,"method":"x"}`,
		"array params":     `{"jsonrpc":"2.0","id":1,"method":"x","params":[1]}`,
		"null params":      `{"jsonrpc":"2.0","id":1,"method":"x","params":null}`,
		"trailing garbage": `{"jsonrpc":"2.0","id":1,"method":"x","params":{}} {}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			req, err := ParseRequest([]byte(body))
			require.Nil(t, req)

			var rpcErr *Error
			require.ErrorAs(t, err, &rpcErr)
			require.Equal(t, CodeParseError, rpcErr.Code)
			require.Equal(t, http.StatusInternalServerError, rpcErr.HTTPStatus)
		})
	}
}

func TestSuccess(t *testing.T) {
	body, err := Success(json.RawMessage(`1`), "confirmed")
	require.NoError(t, err)
	require.Equal(t, `{"jsonrpc":"2.0","result":"confirmed","id":1}`, string(body))

	body, err = Success(json.RawMessage(`"a<b"`), nil)
	require.NoError(t, err)
	require.Equal(t, `{"jsonrpc":"2.0","result":null,"id":"a<b"}`, string(body))
}

func TestSuccess_HexIntegersAtAnyDepth(t *testing.T) {
	result := map[string]any{
		"outer": []any{types.NewHexInt(255), map[string]any{"inner": types.NewHexInt(16)}},
	}
	body, err := Success(json.RawMessage(`1`), result)
	require.NoError(t, err)
	require.JSONEq(t, `{"jsonrpc":"2.0","result":{"outer":["0xff",{"inner":"0x10"}]},"id":1}`, string(body))
}

func TestFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		id     json.RawMessage
		code   int
		status int
		wantID string
	}{
		{"parse", NewParseError(), nil, CodeParseError, http.StatusInternalServerError, `null`},
		{"method not found", NewMethodNotFoundError("nope"), json.RawMessage(`3`), CodeMethodNotFound, http.StatusNotFound, `3`},
		{"invalid params", NewInvalidParamsError("chainId must be a number"), json.RawMessage(`"x"`), CodeInvalidParams, http.StatusInternalServerError, `"x"`},
		{"rate limited", NewRateLimitedError(), nil, CodeRateLimited, http.StatusTooManyRequests, `null`},
		{"internal", NewInternalError(), json.RawMessage(`4`), CodeInternalError, http.StatusInternalServerError, `4`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := Failure(tt.err, tt.id)

			var resp struct {
				JSONRPC string          `json:"jsonrpc"`
				Error   Error           `json:"error"`
				ID      json.RawMessage `json:"id"`
				Result  json.RawMessage `json:"result"`
			}
			require.NoError(t, json.Unmarshal(body, &resp))
			require.Equal(t, Version, resp.JSONRPC)
			require.Equal(t, tt.code, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
			require.Equal(t, tt.wantID, string(resp.ID))
			require.Nil(t, resp.Result)
			require.Equal(t, tt.status, StatusOf(tt.err))
		})
	}
}

func TestFailure_Shape(t *testing.T) {
	body := Failure(NewParseError(), nil)
	require.Equal(t, `{"jsonrpc":"2.0","error":{"code":-32700,"message":"Parse error"},"id":null}`, string(body))
}

func TestFailure_InvalidIDFallsBackToValidJSON(t *testing.T) {
	rpcErr := &Error{Code: CodeInternalError, Message: "bad\x00\a\"msg", HTTPStatus: http.StatusInternalServerError}
	body := Failure(rpcErr, json.RawMessage(`{not json`))
	require.True(t, json.Valid(body), string(body))

	var resp struct {
		Error Error           `json:"error"`
		ID    json.RawMessage `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Equal(t, rpcErr.Message, resp.Error.Message)
	require.Equal(t, `null`, string(resp.ID))
}
