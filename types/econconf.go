package types

import (
	"encoding/json"
	"fmt"
)

// Ratio is a [numerator, denominator] pair.
type Ratio [2]HexInt

func (r *Ratio) UnmarshalJSON(data []byte) error {
	var parts []HexInt
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return NewValidationError("ratio", fmt.Sprintf("expected 2 elements, got %d", len(parts)))
	}
	r[0], r[1] = parts[0], parts[1]
	return nil
}

// EconConf is the economic configuration of a chain. get_confirmations
// shares the same shape.
type EconConf struct {
	GasLimitMultiplier Ratio  `json:"gasLimitMultiplier"`
	GasPriceMultiplier Ratio  `json:"gasPriceMultiplier"`
	BaseFee            HexInt `json:"baseFee"`
}

func (e EconConf) Validate() error {
	fields := []struct {
		name  string
		value HexInt
	}{
		{"gasLimitMultiplier[0]", e.GasLimitMultiplier[0]},
		{"gasLimitMultiplier[1]", e.GasLimitMultiplier[1]},
		{"gasPriceMultiplier[0]", e.GasPriceMultiplier[0]},
		{"gasPriceMultiplier[1]", e.GasPriceMultiplier[1]},
		{"baseFee", e.BaseFee},
	}
	for _, f := range fields {
		if f.value.IsNil() {
			return NewValidationError(f.name, "required field is missing")
		}
	}
	return nil
}
