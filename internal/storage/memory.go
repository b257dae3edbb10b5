package storage

import (
	"sort"
	"strings"
)

// MemoryBackend is an in-memory Backend used in tests.
type MemoryBackend struct {
	values map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (b *MemoryBackend) Init() error  { return nil }
func (b *MemoryBackend) Load() error  { return nil }
func (b *MemoryBackend) Close() error { return nil }

func (b *MemoryBackend) Get(key string) ([]byte, bool, error) {
	value, ok := b.values[key]
	return value, ok, nil
}

func (b *MemoryBackend) Set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	b.values[key] = cp
	return nil
}

func (b *MemoryBackend) Keys(prefix string) ([]string, error) {
	var keys []string
	for k := range b.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *MemoryBackend) ConfigPath() string {
	return ":memory:"
}
