package ctc

import (
	"github.com/katalvlaran/lvlfst/compose"
	"github.com/katalvlaran/lvlfst/fst"
)

// RemoveBlank rewrites every path of lat by the CTC collapse rule:
// blank labels are deleted and maximal runs of identical consecutive
// labels merge into one occurrence. Path weights are untouched — the
// filter composed against lat carries weight One everywhere, so the
// result combines weights exactly as composition does (⊗ with One).
//
// lat must be an acyclic acceptor with a start state; acceptor and
// acyclicity are the caller's contract (validate with lat.IsAcceptor
// and lat.IsAcyclic at the boundary), blank must not be Epsilon.
// Input paths containing epsilon arcs are dropped from the result;
// see the package documentation.
//
// RemoveBlank is a pure function of its inputs: the filter is built
// fresh for lat's alphabet, used once, and discarded. Independent
// lattices may be processed concurrently.
//
// Complexity: O(E) alphabet scan + composition of lat with an
// (n+1)-state filter, n = distinct non-blank labels in lat.
func RemoveBlank[W any](lat *fst.Automaton[W], blank fst.Label) (*fst.Automaton[W], error) {
	// The blank check comes first: a bad blank is a configuration error
	// and must surface before anything else.
	if blank == fst.Epsilon {
		return nil, ErrEpsilonBlank
	}
	if lat == nil {
		return nil, ErrNilLattice
	}
	if lat.Start() == fst.NoState {
		return nil, ErrNoStartState
	}

	filter, err := BlankFilter(lat, blank)
	if err != nil {
		return nil, err
	}

	return compose.Compose(lat, filter)
}
