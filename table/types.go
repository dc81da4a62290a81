// This file declares the Lattice value type, the Reader/Writer
// collection interfaces, specifier classification, and the sentinel
// errors of package table.
package table

import (
	"errors"
	"strings"

	"github.com/katalvlaran/lvlfst/fst"
	"github.com/katalvlaran/lvlfst/semiring"
)

// Lattice is the table value type: a weighted automaton over
// graph/acoustic cost pairs.
type Lattice = fst.Automaton[semiring.LatticeWeight]

// LatticeSemiring is the weight algebra of every table value.
var LatticeSemiring = semiring.Lattice{}

// Sentinel errors for table access.
var (
	// ErrBadSpecifier indicates a specifier that names no supported table
	// kind. Only "ark:<path>" and "sqlite:<path>" are tables.
	ErrBadSpecifier = errors.New("table: specifier must be ark:<path> or sqlite:<path>")

	// ErrKeyNotFound indicates a random-access lookup for an absent key.
	ErrKeyNotFound = errors.New("table: key not found")

	// ErrBadEntry indicates a malformed serialized lattice entry.
	ErrBadEntry = errors.New("table: malformed lattice entry")
)

// Reader iterates a keyed lattice collection in storage order.
//
// Usage mirrors bufio.Scanner: Next advances to the following entry and
// reports whether one is available; Key and Lattice then access it.
// After Next returns false, Err distinguishes end-of-table (nil) from a
// read failure.
type Reader interface {
	// Next advances to the next entry.
	Next() bool

	// Key returns the key of the current entry.
	Key() string

	// Lattice decodes and returns the current entry's lattice.
	Lattice() (*Lattice, error)

	// Err returns the first error encountered while advancing, if any.
	Err() error

	// Close releases the underlying resource.
	Close() error
}

// Writer appends entries to a keyed lattice collection.
type Writer interface {
	// Write stores lat under key, replacing any previous entry with the
	// same key where the backend supports replacement.
	Write(key string, lat *Lattice) error

	// Close flushes and releases the underlying resource.
	Close() error
}

// Kind identifies a table backend named by a specifier.
type Kind int

const (
	// KindNone marks a specifier that names no table.
	KindNone Kind = iota

	// KindArk is a plain-text archive stream.
	KindArk

	// KindSQLite is a SQLite-backed store.
	KindSQLite
)

// Classify splits a specifier into its table kind and path.
// Unrecognized specifiers (including bare paths) yield KindNone.
func Classify(spec string) (Kind, string) {
	switch {
	case strings.HasPrefix(spec, "ark:"):
		return KindArk, strings.TrimPrefix(spec, "ark:")
	case strings.HasPrefix(spec, "sqlite:"):
		return KindSQLite, strings.TrimPrefix(spec, "sqlite:")
	default:
		return KindNone, ""
	}
}

// OpenReader opens the collection named by spec for sequential reading.
// Returns ErrBadSpecifier when spec names no supported table.
func OpenReader(spec string) (Reader, error) {
	switch kind, path := Classify(spec); kind {
	case KindArk:
		return openArkReader(path)
	case KindSQLite:
		return openStoreReader(path)
	default:
		return nil, ErrBadSpecifier
	}
}

// OpenWriter opens (creating if needed) the collection named by spec
// for writing. Returns ErrBadSpecifier when spec names no supported
// table.
func OpenWriter(spec string) (Writer, error) {
	switch kind, path := Classify(spec); kind {
	case KindArk:
		return openArkWriter(path)
	case KindSQLite:
		return openStoreWriter(path)
	default:
		return nil, ErrBadSpecifier
	}
}
