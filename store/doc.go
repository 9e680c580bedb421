// Package store archives exported levels under short names.
//
// Three backends implement Storage:
//
//   - JSONStore: one indented JSON file holding every level, guarded by a
//     RWMutex and rewritten atomically on each save.
//   - PostgresStore: a "levels" table with the document in a JSONB column,
//     upserted by name (lib/pq).
//   - GDataStore: msgpack blobs in the per-user data directory managed by
//     quasilyte/gdata, plus an index item listing the saved names.
//
// Names must match [A-Za-z0-9_-]{1,64}; anything else fails with
// ErrInvalidName before touching the backend. Missing levels fail with
// ErrNotFound on every backend.
package store
