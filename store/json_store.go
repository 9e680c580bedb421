package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	"github.com/katalvlaran/lvlgen/export"
)

// JSONStore keeps every level in a single indented JSON file.
type JSONStore struct {
	path  string
	mutex sync.RWMutex
	data  jsonData
}

type jsonData struct {
	Levels map[string]export.Document `json:"levels"`
}

// NewJSONStore opens path, creating an empty archive when it does not exist.
func NewJSONStore(path string) (*JSONStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty json store path")
	}
	js := &JSONStore{path: path, data: jsonData{Levels: make(map[string]export.Document)}}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := js.flush(); err != nil {
			return nil, fmt.Errorf("store: create %s: %w", path, err)
		}
		return js, nil
	case err != nil:
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &js.data); err != nil {
		return nil, fmt.Errorf("store: parse %s: %w", path, err)
	}
	if js.data.Levels == nil {
		js.data.Levels = make(map[string]export.Document)
	}
	return js, nil
}

// flush writes the archive; callers hold the write lock or own js exclusively.
func (js *JSONStore) flush() error {
	b, err := json.MarshalIndent(js.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := js.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, js.path)
}

// SaveLevel stores doc under name, replacing any previous level.
func (js *JSONStore) SaveLevel(ctx context.Context, name string, doc export.Document) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	js.mutex.Lock()
	defer js.mutex.Unlock()

	prev, had := js.data.Levels[name]
	js.data.Levels[name] = doc
	if err := js.flush(); err != nil {
		if had {
			js.data.Levels[name] = prev
		} else {
			delete(js.data.Levels, name)
		}
		return fmt.Errorf("store: save %s: %w", name, err)
	}
	return nil
}

// LoadLevel returns the level stored under name.
func (js *JSONStore) LoadLevel(ctx context.Context, name string) (export.Document, error) {
	if err := ValidateName(name); err != nil {
		return export.Document{}, err
	}
	if err := ctx.Err(); err != nil {
		return export.Document{}, err
	}
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	doc, ok := js.data.Levels[name]
	if !ok {
		return export.Document{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return doc, nil
}

// ListLevels returns the stored names in ascending order.
func (js *JSONStore) ListLevels(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	js.mutex.RLock()
	names := make([]string, 0, len(js.data.Levels))
	for name := range js.data.Levels {
		names = append(names, name)
	}
	js.mutex.RUnlock()

	sort.Strings(names)
	return names, nil
}

// Close is a no-op; every save is already on disk.
func (js *JSONStore) Close() error { return nil }
