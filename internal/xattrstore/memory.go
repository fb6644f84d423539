package xattrstore

import (
	"slices"
	"sync"
)

// Memory is an in-memory Store used by tests and by callers that want to
// stage annotations without touching the filesystem.
type Memory struct {
	mu    sync.Mutex
	files map[string]map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{files: make(map[string]map[string][]byte)}
}

func (m *Memory) Get(path, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.files[path][key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(value), true, nil
}

func (m *Memory) Set(path, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	attrs, ok := m.files[path]
	if !ok {
		attrs = make(map[string][]byte)
		m.files[path] = attrs
	}
	attrs[key] = slices.Clone(value)
	return nil
}

func (m *Memory) Remove(path, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files[path], key)
	return nil
}

func (m *Memory) List(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.files[path]))
	for name := range m.files[path] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
