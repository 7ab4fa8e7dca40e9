package store

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/initia-labs/bridgeinfo/types"
)

// Fixture is the YAML layout accepted by LoadFixture:
//
//	entries:
//	  - key: [econConf, "1"]
//	    value:
//	      gasLimitMultiplier: [11, 10]
//	      gasPriceMultiplier: [1, 1]
//	      baseFee: "1000000000"
//	  - key: [status, "0xabc"]
//	    value: confirmed
//
// Quote integers that do not fit in 64 bits.
type Fixture struct {
	Entries []FixtureEntry `yaml:"entries"`
}

type FixtureEntry struct {
	Key   []string `yaml:"key"`
	Value any      `yaml:"value"`
}

// LoadFixture reads a YAML fixture file into a new Memory store.
func LoadFixture(path string) (*Memory, error) {
	mem := NewMemory()
	if path == "" {
		return mem, nil
	}

	f, err := os.Open(path) // #nosec G304 -- operator supplied fixture path
	if err != nil {
		return nil, types.NewConfigError("failed to open store fixture", err)
	}
	defer f.Close() //nolint:errcheck

	var fixture Fixture
	if err := yaml.NewDecoder(f).Decode(&fixture); err != nil {
		return nil, types.NewConfigError("failed to decode store fixture", err)
	}

	for i, entry := range fixture.Entries {
		if len(entry.Key) == 0 {
			return nil, types.NewValidationError(fmt.Sprintf("entries[%d].key", i), "must not be empty")
		}
		raw, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, types.NewInvalidValueError(fmt.Sprintf("entries[%d].value", i), Key(entry.Key).String(), err.Error())
		}
		mem.Put(Key(entry.Key), raw)
	}

	return mem, nil
}
