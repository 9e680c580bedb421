package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgen/export"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps levels in a PostgreSQL table, one JSONB document per row.
type PostgresStore struct {
	db *sql.DB
}

const levelsSchema = `
CREATE TABLE IF NOT EXISTS levels (
	name TEXT PRIMARY KEY,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	seed BIGINT NOT NULL,
	document JSONB NOT NULL,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`

// NewPostgresStore connects to dsn and creates the levels table if needed.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, levelsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// SaveLevel upserts doc under name.
func (ps *PostgresStore) SaveLevel(ctx context.Context, name string, doc export.Document) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", name, err)
	}

	query := `
	INSERT INTO levels (name, width, height, seed, document)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (name)
	DO UPDATE SET
		width = $2, height = $3, seed = $4, document = $5,
		updated_at = NOW()
	`
	if _, err := ps.db.ExecContext(ctx, query, name, doc.Width, doc.Height, doc.Seed, string(body)); err != nil {
		return fmt.Errorf("store: save %s: %w", name, err)
	}
	return nil
}

// LoadLevel fetches and validates the level stored under name.
func (ps *PostgresStore) LoadLevel(ctx context.Context, name string) (export.Document, error) {
	if err := ValidateName(name); err != nil {
		return export.Document{}, err
	}
	var body string
	err := ps.db.QueryRowContext(ctx, `SELECT document FROM levels WHERE name = $1`, name).Scan(&body)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return export.Document{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	case err != nil:
		return export.Document{}, fmt.Errorf("store: load %s: %w", name, err)
	}

	var doc export.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return export.Document{}, fmt.Errorf("store: decode %s: %w", name, err)
	}
	if err := doc.Validate(); err != nil {
		return export.Document{}, err
	}
	return doc, nil
}

// ListLevels returns the stored names in ascending order.
func (ps *PostgresStore) ListLevels(ctx context.Context) ([]string, error) {
	rows, err := ps.db.QueryContext(ctx, `SELECT name FROM levels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list levels: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: list levels: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close releases the connection pool.
func (ps *PostgresStore) Close() error { return ps.db.Close() }
