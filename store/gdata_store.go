package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-msgpack/v2/codec"
	"github.com/quasilyte/gdata"

	"github.com/katalvlaran/lvlgen/export"
)

// ItemStore is the key/blob surface GDataStore needs; *gdata.Manager
// satisfies it. LoadItem returns (nil, nil) for a missing key.
type ItemStore interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
}

const (
	indexItem   = "index"
	levelPrefix = "level_"
)

// GDataStore keeps levels as msgpack blobs in the per-user application data
// directory managed by gdata. A separate index item lists the saved names.
type GDataStore struct {
	items ItemStore
	mutex sync.Mutex
}

// NewGDataStore opens the gdata directory for app.
func NewGDataStore(app string) (*GDataStore, error) {
	if app == "" {
		app = "lvlgen"
	}
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("store: open gdata %s: %w", app, err)
	}
	return NewGDataStoreWith(m), nil
}

// NewGDataStoreWith wraps an existing item store.
func NewGDataStoreWith(items ItemStore) *GDataStore {
	return &GDataStore{items: items}
}

func (gs *GDataStore) index() ([]string, error) {
	b, err := gs.items.LoadItem(indexItem)
	if err != nil || b == nil {
		return nil, err
	}
	var names []string
	if err := codec.NewDecoderBytes(b, &codec.MsgpackHandle{}).Decode(&names); err != nil {
		return nil, fmt.Errorf("store: decode index: %w", err)
	}
	return names, nil
}

func (gs *GDataStore) writeIndex(names []string) error {
	var b []byte
	if err := codec.NewEncoderBytes(&b, &codec.MsgpackHandle{}).Encode(names); err != nil {
		return err
	}
	return gs.items.SaveItem(indexItem, b)
}

// SaveLevel stores doc under name and records it in the index.
func (gs *GDataStore) SaveLevel(ctx context.Context, name string, doc export.Document) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := export.MarshalMsgpack(doc)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}

	gs.mutex.Lock()
	defer gs.mutex.Unlock()

	if err := gs.items.SaveItem(levelPrefix+name, b); err != nil {
		return fmt.Errorf("store: save %s: %w", name, err)
	}
	names, err := gs.index()
	if err != nil {
		return err
	}
	i := sort.SearchStrings(names, name)
	if i < len(names) && names[i] == name {
		return nil
	}
	names = append(names, "")
	copy(names[i+1:], names[i:])
	names[i] = name
	if err := gs.writeIndex(names); err != nil {
		return fmt.Errorf("store: write index: %w", err)
	}
	return nil
}

// LoadLevel returns the level stored under name.
func (gs *GDataStore) LoadLevel(ctx context.Context, name string) (export.Document, error) {
	if err := ValidateName(name); err != nil {
		return export.Document{}, err
	}
	if err := ctx.Err(); err != nil {
		return export.Document{}, err
	}
	gs.mutex.Lock()
	b, err := gs.items.LoadItem(levelPrefix + name)
	gs.mutex.Unlock()

	if err != nil {
		return export.Document{}, fmt.Errorf("store: load %s: %w", name, err)
	}
	if b == nil {
		return export.Document{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return export.UnmarshalMsgpack(b)
}

// ListLevels returns the indexed names in ascending order.
func (gs *GDataStore) ListLevels(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gs.mutex.Lock()
	defer gs.mutex.Unlock()

	names, err := gs.index()
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Close is a no-op; gdata writes through on every save.
func (gs *GDataStore) Close() error { return nil }
