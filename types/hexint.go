package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// HexInt is a signed big integer that renders as a lowercase 0x-prefixed hex
// string in JSON. It accepts JSON numbers, decimal strings and 0x strings.
type HexInt struct {
	sdkmath.Int
}

func NewHexInt(i int64) HexInt {
	return HexInt{Int: sdkmath.NewInt(i)}
}

// NewHexIntFromBigInt fails when b exceeds sdkmath.MaxBitLen bits.
func NewHexIntFromBigInt(b *big.Int) (HexInt, error) {
	if b == nil {
		return HexInt{}, NewInvalidValueError("integer", "nil", "missing value")
	}
	if b.BitLen() > sdkmath.MaxBitLen {
		return HexInt{}, NewInvalidValueError("integer", b.String(), fmt.Sprintf("exceeds %d bits", sdkmath.MaxBitLen))
	}
	return HexInt{Int: sdkmath.NewIntFromBigInt(b)}, nil
}

// Hex renders the value as 0x-prefixed lowercase hex, "-0x" for negatives.
func (h HexInt) Hex() string {
	b := h.BigInt()
	if b.Sign() < 0 {
		return "-0x" + new(big.Int).Neg(b).Text(16)
	}
	return "0x" + b.Text(16)
}

func (h HexInt) MarshalJSON() ([]byte, error) {
	if h.IsNil() {
		return []byte("null"), nil
	}
	return json.Marshal(h.Hex())
}

func (h *HexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return NewInvalidValueError("integer", "null", "missing value")
	}

	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}

	b, err := parseBigInt(text)
	if err != nil {
		return err
	}
	v, err := NewHexIntFromBigInt(b)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func parseBigInt(text string) (*big.Int, error) {
	s := strings.TrimSpace(text)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	if s == "" {
		return nil, NewInvalidValueError("integer", text, "empty digits")
	}

	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, NewInvalidValueError("integer", text, "not an integer")
	}
	if neg {
		b.Neg(b)
	}
	return b, nil
}
