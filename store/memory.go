package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

const BackendMemory = "memory"

// Memory is an in-process store, populated from a fixture file or by tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]json.RawMessage)}
}

// Put stores a raw JSON value under key.
func (m *Memory) Put(key Key, value json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key.String()] = value
}

// PutValue marshals value to JSON and stores it under key.
func (m *Memory) PutValue(key Key, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.Put(key, raw)
	return nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) Get(_ context.Context, key Key) (json.RawMessage, bool, error) {
	start := time.Now()

	m.mu.RLock()
	value, ok := m.entries[key.String()]
	m.mu.RUnlock()

	observeRead(BackendMemory, key, ok, nil, start)
	return value, ok, nil
}
