// This file implements the plain-text archive backend: a sequential
// stream of records "key\n<entry lines>\n\n".
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ArkReader streams records from a text archive.
type ArkReader struct {
	sc    *bufio.Scanner
	cl    io.Closer // underlying file when opened by path; nil otherwise
	key   string
	entry []string
	err   error
}

// NewArkReader reads archive records from r.
func NewArkReader(r io.Reader) *ArkReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &ArkReader{sc: sc}
}

// openArkReader opens the archive file at path.
func openArkReader(path string) (*ArkReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open archive: %w", err)
	}
	r := NewArkReader(f)
	r.cl = f

	return r, nil
}

// Next advances to the next record: one key line, entry lines up to a
// blank line or EOF. Leading blank lines between records are skipped.
func (r *ArkReader) Next() bool {
	if r.err != nil {
		return false
	}
	r.key, r.entry = "", nil

	// Seek the key line.
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		r.key = line

		break
	}
	if r.key == "" {
		r.err = r.sc.Err()

		return false
	}

	// Collect entry lines until the blank separator.
	for r.sc.Scan() {
		line := r.sc.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		r.entry = append(r.entry, line)
	}
	if err := r.sc.Err(); err != nil {
		r.err = err

		return false
	}

	return true
}

// Key returns the key of the current record.
func (r *ArkReader) Key() string { return r.key }

// Lattice decodes the current record's entry.
func (r *ArkReader) Lattice() (*Lattice, error) {
	lat, err := Decode(r.entry)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", r.key, err)
	}

	return lat, nil
}

// Err returns the first read error, if any. End of archive is not an error.
func (r *ArkReader) Err() error { return r.err }

// Close closes the underlying file when the reader owns one.
func (r *ArkReader) Close() error {
	if r.cl == nil {
		return nil
	}

	return r.cl.Close()
}

// ArkWriter appends records to a text archive.
type ArkWriter struct {
	w  *bufio.Writer
	cl io.Closer // underlying file when opened by path; nil otherwise
}

// NewArkWriter writes archive records to w.
func NewArkWriter(w io.Writer) *ArkWriter {
	return &ArkWriter{w: bufio.NewWriter(w)}
}

// openArkWriter creates (truncating) the archive file at path.
func openArkWriter(path string) (*ArkWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("table: create archive: %w", err)
	}
	w := NewArkWriter(f)
	w.cl = f

	return w, nil
}

// Write appends one record. Keys must be non-empty and free of
// whitespace; they are written verbatim.
func (w *ArkWriter) Write(key string, lat *Lattice) error {
	if key == "" || strings.ContainsAny(key, " \t\n") {
		return fmt.Errorf("%w: bad archive key %q", ErrBadEntry, key)
	}
	if _, err := fmt.Fprintln(w.w, key); err != nil {
		return fmt.Errorf("table: write archive: %w", err)
	}
	for _, line := range Encode(lat) {
		if _, err := fmt.Fprintln(w.w, line); err != nil {
			return fmt.Errorf("table: write archive: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w.w); err != nil {
		return fmt.Errorf("table: write archive: %w", err)
	}

	return nil
}

// Close flushes buffered records and closes the underlying file when
// the writer owns one.
func (w *ArkWriter) Close() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("table: flush archive: %w", err)
	}
	if w.cl == nil {
		return nil
	}

	return w.cl.Close()
}
