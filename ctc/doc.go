// Package ctc collapses CTC-decoded lattices: it removes blank labels
// and merges runs of identical consecutive labels, the standard CTC
// decoding rule.
//
// CTC (Connectionist Temporal Classification) models emit a designated
// blank symbol between and around real labels, and may emit a label
// several times in a row for one intended occurrence. Recovering the
// intended sequence from a recognition lattice means rewriting every
// path by the collapse rule while keeping the path weights intact.
//
// The package does this with a small filter transducer composed against
// the input:
//
//   - BlankFilter builds the filter for the label alphabet actually
//     observed in one lattice. The filter has one state per distinct
//     non-blank label plus a blank state; its arcs consume blanks and
//     repeats silently and pass first occurrences through unchanged.
//   - RemoveBlank builds the filter and composes it with the input in
//     one call — the batch-tool entry point.
//
// The input must be an acyclic acceptor; callers validate this with
// fst.IsAcceptor and fst.IsAcyclic before invoking the package. The
// filter never matches Epsilon, so input paths containing epsilon arcs
// are dropped from the result — a deliberate property of the filter
// construction, inherited from the filter having arcs only for the
// observed alphabet plus the blank.
//
// Adjacent identical labels collapse even without an intervening blank.
// Under this convention two back-to-back emissions of one symbol are
// indistinguishable from one long emission; blanks are what separate
// repeated occurrences.
package ctc
