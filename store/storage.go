package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/katalvlaran/lvlgen/export"
)

var (
	// ErrNotFound is returned when no level is stored under a name.
	ErrNotFound = errors.New("store: level not found")
	// ErrInvalidName is returned for names outside [A-Za-z0-9_-]{1,64}.
	ErrInvalidName = errors.New("store: invalid level name")
	// ErrUnknownKind is returned by Open for an unsupported backend.
	ErrUnknownKind = errors.New("store: unknown backend")
)

// Storage archives exported levels by name. Implementations are safe for
// concurrent use.
type Storage interface {
	SaveLevel(ctx context.Context, name string, doc export.Document) error
	LoadLevel(ctx context.Context, name string) (export.Document, error)
	ListLevels(ctx context.Context) ([]string, error)
	Close() error
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateName returns ErrInvalidName unless name is usable as a level key.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Backend kinds accepted by Open.
const (
	KindJSON     = "json"
	KindPostgres = "postgres"
	KindGData    = "gdata"
)

// Config selects and parameterises a backend.
type Config struct {
	Kind string // json, postgres or gdata
	File string // JSONStore path
	DSN  string // PostgreSQL connection string
	App  string // gdata application name
}

// Open builds the backend named by cfg.Kind.
func Open(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Kind {
	case KindJSON:
		return NewJSONStore(cfg.File)
	case KindPostgres:
		return NewPostgresStore(ctx, cfg.DSN)
	case KindGData:
		return NewGDataStore(cfg.App)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
}
