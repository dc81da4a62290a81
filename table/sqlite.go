// This file implements the SQLite-backed store: random access by key
// plus ordered sequential scans, using the shared text codec for the
// serialized entries.
package table

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver
)

// Store is a keyed lattice collection in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the store at path and ensures
// its schema.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("table: open store: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS lattices (
		key  TEXT PRIMARY KEY,
		data TEXT NOT NULL
	)`
	if _, err = db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("table: migrate store: %w", err)
	}

	return &Store{db: db}, nil
}

// Put stores lat under key, replacing any previous entry.
func (s *Store) Put(key string, lat *Lattice) error {
	data := strings.Join(Encode(lat), "\n")
	if _, err := s.db.Exec(
		`INSERT INTO lattices (key, data) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
		key, data,
	); err != nil {
		return fmt.Errorf("table: put %q: %w", key, err)
	}

	return nil
}

// Get returns the lattice stored under key.
// Returns ErrKeyNotFound when the key is absent.
func (s *Store) Get(key string) (*Lattice, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM lattices WHERE key = ?`, key).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	case err != nil:
		return nil, fmt.Errorf("table: get %q: %w", key, err)
	}
	lat, err := Decode(splitEntry(data))
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", key, err)
	}

	return lat, nil
}

// Keys returns all stored keys in lexicographic order.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM lattices ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("table: list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err = rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("table: list keys: %w", err)
		}
		keys = append(keys, k)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("table: list keys: %w", err)
	}

	return keys, nil
}

// Close closes the database handle.
func (s *Store) Close() error { return s.db.Close() }

// splitEntry recovers entry lines from the stored text. An empty blob
// is an empty entry, not [""].
func splitEntry(data string) []string {
	if data == "" {
		return nil
	}

	return strings.Split(data, "\n")
}

// storeReader adapts a Store to the sequential Reader interface by
// scanning its keys in order.
type storeReader struct {
	store *Store
	keys  []string
	pos   int // index of the current key + 1; 0 before first Next
	err   error
}

// openStoreReader opens the store at path for a full ordered scan.
func openStoreReader(path string) (Reader, error) {
	store, err := OpenStore(path)
	if err != nil {
		return nil, err
	}
	keys, err := store.Keys()
	if err != nil {
		store.Close()

		return nil, err
	}

	return &storeReader{store: store, keys: keys}, nil
}

func (r *storeReader) Next() bool {
	if r.err != nil || r.pos >= len(r.keys) {
		return false
	}
	r.pos++

	return true
}

func (r *storeReader) Key() string {
	if r.pos == 0 || r.pos > len(r.keys) {
		return ""
	}

	return r.keys[r.pos-1]
}

func (r *storeReader) Lattice() (*Lattice, error) { return r.store.Get(r.Key()) }

func (r *storeReader) Err() error { return r.err }

func (r *storeReader) Close() error { return r.store.Close() }

// storeWriter adapts a Store to the Writer interface.
type storeWriter struct {
	store *Store
}

// openStoreWriter opens (creating if needed) the store at path for writing.
func openStoreWriter(path string) (Writer, error) {
	store, err := OpenStore(path)
	if err != nil {
		return nil, err
	}

	return &storeWriter{store: store}, nil
}

func (w *storeWriter) Write(key string, lat *Lattice) error { return w.store.Put(key, lat) }

func (w *storeWriter) Close() error { return w.store.Close() }
