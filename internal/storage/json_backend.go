package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type jsonFile struct {
	Version int                        `json:"version"`
	Values  map[string]json.RawMessage `json:"values"`
}

// JSONBackend keeps all keys in a single pretty-printed JSON file and
// rewrites the whole file on every Set.
type JSONBackend struct {
	path string
	file *jsonFile
}

func NewJSONBackend(configPath string) *JSONBackend {
	return &JSONBackend{
		path: configPath,
	}
}

func (b *JSONBackend) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(b.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", b.path)
	}

	b.file = &jsonFile{
		Version: 1,
		Values:  make(map[string]json.RawMessage),
	}

	return b.save()
}

func (b *JSONBackend) Load() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'astroflow init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	b.file = &jsonFile{}
	if err := json.Unmarshal(data, b.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if b.file.Values == nil {
		b.file.Values = make(map[string]json.RawMessage)
	}

	return nil
}

func (b *JSONBackend) Close() error {
	return nil
}

func (b *JSONBackend) save() error {
	data, err := json.MarshalIndent(b.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(b.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (b *JSONBackend) Get(key string) ([]byte, bool, error) {
	if b.file == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	value, ok := b.file.Values[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

func (b *JSONBackend) Set(key string, value []byte) error {
	if b.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	b.file.Values[key] = json.RawMessage(value)
	return b.save()
}

func (b *JSONBackend) Keys(prefix string) ([]string, error) {
	if b.file == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var keys []string
	for k := range b.file.Values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *JSONBackend) ConfigPath() string {
	return b.path
}
