// Package storage provides the key/value backends a moneytracker.Store
// persists into.
//
// Every backend stores opaque strings under string keys. Backends never
// interpret the values, the store owns the document format.
package storage

import (
	"sync"
)

// ProbeKey is the key written then removed to check a backend is usable.
const ProbeKey = "__storage_test__"

// Memory keeps values in a map. It is the backend used by tests and by the
// "memory" configuration, where nothing survives the process.
type Memory struct {
	mu          sync.Mutex
	values      map[string]string
	unavailable bool
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Unavailable returns a backend that fails its probe, like a browser with
// storage disabled.
func Unavailable() *Memory {
	return &Memory{values: make(map[string]string), unavailable: true}
}

func (m *Memory) Probe() bool {
	if m.unavailable {
		return false
	}
	if err := m.Write(ProbeKey, ProbeKey); err != nil {
		return false
	}
	return m.Remove(ProbeKey) == nil
}

func (m *Memory) Read(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return "", false, ErrUnavailable
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrUnavailable
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrUnavailable
	}
	delete(m.values, key)
	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}
