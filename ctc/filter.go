// This file builds the blank-removal filter transducer.
//
// The filter tracks one fact along a path: which label was emitted
// last. A blank state means "blank or nothing yet"; one symbol state
// per distinct observed label means "that label was emitted last".
// Arcs then encode the collapse rule:
//
//	blank state:  blank/ε self-loop; s/s to the state of s.
//	state of s:   s/ε self-loop (repeat collapses); blank/ε back to the
//	              blank state; s2/s2 to the state of s2 for every other
//	              observed label (no blank needed between distinct labels).
//
// Every state is final with weight One, and every arc weighs One: the
// filter is weight-neutral, it only rewrites labels.
//
// Complexity: O(E) to scan the alphabet, O(n²) arcs for n distinct
// labels. n is a label-alphabet count, small in practice.
package ctc

import (
	"github.com/katalvlaran/lvlfst/fst"
)

// filterBuilder accumulates the filter for one input lattice.
// Symbol states are addressed through the label→state table, never by
// assumed numeric position, so the state arena layout stays an
// implementation detail.
type filterBuilder[W any] struct {
	f          *fst.Automaton[W]
	one        W
	blank      fst.Label
	blankState fst.StateID
	symbols    []fst.Label               // distinct observed labels, first-seen order
	symState   map[fst.Label]fst.StateID // observed label → its filter state
}

// BlankFilter builds the collapse filter for the label alphabet observed
// in lat, with the given blank label.
//
// Every distinct output label of lat other than blank and Epsilon gets a
// symbol state; a lattice observing no such label yields the one-state
// filter that only consumes blanks. The filter accepts at every state
// with weight One.
//
// Returns ErrEpsilonBlank if blank is Epsilon, ErrNilLattice if lat is nil.
func BlankFilter[W any](lat *fst.Automaton[W], blank fst.Label) (*fst.Automaton[W], error) {
	if blank == fst.Epsilon {
		return nil, ErrEpsilonBlank
	}
	if lat == nil {
		return nil, ErrNilLattice
	}

	b := &filterBuilder[W]{
		one:      lat.Semiring().One(),
		blank:    blank,
		symState: make(map[fst.Label]fst.StateID),
	}
	b.collectAlphabet(lat)
	b.build(lat)

	return b.f, nil
}

// collectAlphabet records every distinct non-blank, non-epsilon output
// label of lat in first-seen order. Scanning states in ID order keeps
// the resulting filter deterministic for a given lattice.
func (b *filterBuilder[W]) collectAlphabet(lat *fst.Automaton[W]) {
	var s fst.StateID
	for s = 0; int(s) < lat.NumStates(); s++ {
		for _, arc := range lat.Arcs(s) {
			if arc.Out == b.blank || arc.Out == fst.Epsilon {
				continue
			}
			if _, seen := b.symState[arc.Out]; seen {
				continue
			}
			// State IDs are assigned in build; reserve the slot now so the
			// scan alone fixes the alphabet order.
			b.symState[arc.Out] = fst.NoState
			b.symbols = append(b.symbols, arc.Out)
		}
	}
}

// build materializes states and arcs. All states exist before any arc is
// added, so the fst construction-time checks cannot fire; errors from
// AddArc/SetFinal are impossible here and intentionally not propagated.
func (b *filterBuilder[W]) build(lat *fst.Automaton[W]) {
	b.f = fst.MustNew(lat.Semiring(), fst.WithStateHint(len(b.symbols)+1))

	// One state per tag: the blank state first, then one per symbol.
	b.blankState = b.f.AddState()
	_ = b.f.SetFinal(b.blankState, b.one)
	for _, sym := range b.symbols {
		st := b.f.AddState()
		b.symState[sym] = st
		_ = b.f.SetFinal(st, b.one)
	}
	_ = b.f.SetStart(b.blankState)

	// Blank state: consume blanks silently.
	_ = b.f.AddArc(b.blankState, fst.Arc[W]{In: b.blank, Out: fst.Epsilon, Weight: b.one, To: b.blankState})

	for _, sym := range b.symbols {
		st := b.symState[sym]

		// First occurrence after blank/start passes through unchanged.
		_ = b.f.AddArc(b.blankState, fst.Arc[W]{In: sym, Out: sym, Weight: b.one, To: st})

		// Immediate repeat collapses: consumed, nothing emitted.
		_ = b.f.AddArc(st, fst.Arc[W]{In: sym, Out: fst.Epsilon, Weight: b.one, To: st})

		// Blank returns to the blank state.
		_ = b.f.AddArc(st, fst.Arc[W]{In: b.blank, Out: fst.Epsilon, Weight: b.one, To: b.blankState})

		// A different label follows directly: passes through unchanged.
		for _, other := range b.symbols {
			if other == sym {
				continue
			}
			_ = b.f.AddArc(st, fst.Arc[W]{In: other, Out: other, Weight: b.one, To: b.symState[other]})
		}
	}
}
