package rpc

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/initia-labs/bridgeinfo/jsonrpc"
)

type ChainIDParams struct {
	// ChainID is the normalized decimal form of the chainId number, as used
	// in store keys.
	ChainID string
}

type HashParams struct {
	Hash string
}

type NoParams struct{}

func parseNoParams(json.RawMessage) (NoParams, error) {
	return NoParams{}, nil
}

func parseChainIDParams(raw json.RawMessage) (ChainIDParams, error) {
	fields, err := paramFields(raw)
	if err != nil {
		return ChainIDParams{}, err
	}

	value, ok := fields["chainId"]
	if !ok {
		return ChainIDParams{}, jsonrpc.NewInvalidParamsError("missing chainId")
	}

	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return ChainIDParams{}, jsonrpc.NewInvalidParamsError("chainId must be a number")
	}
	number, ok := v.(json.Number)
	if !ok {
		return ChainIDParams{}, jsonrpc.NewInvalidParamsError("chainId must be a number")
	}

	chainID, err := normalizeNumber(number)
	if err != nil {
		return ChainIDParams{}, jsonrpc.NewInvalidParamsError("chainId must be a number")
	}
	return ChainIDParams{ChainID: chainID}, nil
}

func parseHashParams(raw json.RawMessage) (HashParams, error) {
	fields, err := paramFields(raw)
	if err != nil {
		return HashParams{}, err
	}

	value, ok := fields["hash"]
	if !ok {
		return HashParams{}, jsonrpc.NewInvalidParamsError("missing hash")
	}
	if len(value) == 0 || value[0] != '"' {
		return HashParams{}, jsonrpc.NewInvalidParamsError("hash must be a string")
	}

	var hash string
	if err := json.Unmarshal(value, &hash); err != nil {
		return HashParams{}, jsonrpc.NewInvalidParamsError("hash must be a string")
	}
	return HashParams{Hash: hash}, nil
}

func paramFields(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, jsonrpc.NewInvalidParamsError("params must be an object")
	}
	return fields, nil
}

// normalizeNumber renders integral numbers without a fraction or exponent
// (1, 1.0 and 1e0 all become "1") and other numbers in their shortest
// decimal form.
func normalizeNumber(n json.Number) (string, error) {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}

	// exponent forms go through float64 to keep big.Rat from expanding
	// arbitrarily large powers of ten
	if !strings.ContainsAny(n.String(), "eE") {
		r, ok := new(big.Rat).SetString(n.String())
		if !ok {
			return "", strconv.ErrSyntax
		}
		if r.IsInt() {
			return r.Num().String(), nil
		}
	}

	f, err := n.Float64()
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}
