// Package cache stores serialized analysis responses keyed by a digest
// of the request, so repeated identical scenarios skip the simulation.
package cache

import "sync"

type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Memory is the in-process fallback used when no Redis address is
// configured. Entries are kept for the life of the process; every
// distinct request adds one. Deployments serving unbounded scenario
// traffic should configure Redis and manage eviction there.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *Memory) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
