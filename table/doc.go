// Package table reads and writes keyed collections of lattices.
//
// Batch lattice tools never operate on a single bare automaton: they
// stream a table of (key, lattice) entries from one collection into
// another. This package supplies the two collection backends and the
// text codec they share:
//
//   - Archives ("ark:<path>") — a plain-text stream of records, one key
//     line followed by the lattice entry and a blank separator line.
//     Sequential access only; suited to pipelines.
//   - SQLite stores ("sqlite:<path>") — a lattices(key, data) table in a
//     SQLite database, random access by key plus ordered scans.
//
// Both backends serialize a lattice in the conventional text format:
// one line per arc "from to ilabel olabel graph,acoustic" and one line
// per final state "state graph,acoustic", weights omitted when One.
// The start state is the source state of the first line.
//
// OpenReader and OpenWriter classify a specifier string and return the
// matching backend; anything that is not a recognized table specifier
// is rejected with ErrBadSpecifier — there is no bare-file fallback.
//
// Table values are Lattice automata: fst.Automaton over the
// graph/acoustic LatticeWeight pair semiring.
package table
