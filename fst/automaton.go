package fst

import (
	"fmt"

	"github.com/katalvlaran/lvlfst/semiring"
)

// Automaton is a weighted finite-state machine over semiring W.
//
// States are dense integers handed out by AddState. Each state owns an
// ordered slice of outgoing arcs; arc order is preserved exactly as
// added, which keeps path enumeration deterministic. A state is final
// iff a final weight was set for it; absence of a final weight means
// non-final (there is no "final with Zero" distinction).
type Automaton[W any] struct {
	sr     semiring.Semiring[W] // weight algebra; never nil after New
	start  StateID              // NoState until SetStart
	arcs   [][]Arc[W]           // arcs[s] = outgoing arcs of state s, in insertion order
	finals map[StateID]W        // state → final weight; absent = non-final
}

// New creates an empty automaton over the given semiring.
// Complexity: O(1).
func New[W any](sr semiring.Semiring[W], opts ...Option) (*Automaton[W], error) {
	if sr == nil {
		return nil, ErrNilSemiring
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Automaton[W]{
		sr:     sr,
		start:  NoState,
		arcs:   make([][]Arc[W], 0, cfg.stateHint),
		finals: make(map[StateID]W),
	}, nil
}

// MustNew is New for static semirings that cannot be nil; it panics on
// error and exists for terse construction in examples and tests.
func MustNew[W any](sr semiring.Semiring[W], opts ...Option) *Automaton[W] {
	a, err := New(sr, opts...)
	if err != nil {
		panic(err)
	}

	return a
}

// Semiring returns the weight algebra this automaton was built over.
func (a *Automaton[W]) Semiring() semiring.Semiring[W] { return a.sr }

// AddState creates a new non-final state with no arcs and returns its ID.
// IDs are dense and increasing: the first state is 0.
// Complexity: amortized O(1).
func (a *Automaton[W]) AddState() StateID {
	a.arcs = append(a.arcs, nil)

	return StateID(len(a.arcs) - 1)
}

// NumStates returns the number of states created so far.
func (a *Automaton[W]) NumStates() int { return len(a.arcs) }

// Has reports whether s is an existing state of the automaton.
func (a *Automaton[W]) Has(s StateID) bool { return s >= 0 && int(s) < len(a.arcs) }

// SetStart designates s as the start state.
// Returns ErrStateNotFound if s was never created.
func (a *Automaton[W]) SetStart(s StateID) error {
	if !a.Has(s) {
		return fmt.Errorf("%w: start %d", ErrStateNotFound, s)
	}
	a.start = s

	return nil
}

// Start returns the start state, or NoState if none was set.
func (a *Automaton[W]) Start() StateID { return a.start }

// SetFinal marks s final with weight w, replacing any previous final weight.
// Returns ErrStateNotFound if s was never created.
func (a *Automaton[W]) SetFinal(s StateID, w W) error {
	if !a.Has(s) {
		return fmt.Errorf("%w: final %d", ErrStateNotFound, s)
	}
	a.finals[s] = w

	return nil
}

// Final returns the final weight of s and whether s is final.
// A non-final state yields the semiring Zero and false.
func (a *Automaton[W]) Final(s StateID) (W, bool) {
	w, ok := a.finals[s]
	if !ok {
		return a.sr.Zero(), false
	}

	return w, true
}

// IsFinal reports whether s carries a final weight.
func (a *Automaton[W]) IsFinal(s StateID) bool {
	_, ok := a.finals[s]

	return ok
}

// NumFinals returns the number of final states.
func (a *Automaton[W]) NumFinals() int { return len(a.finals) }

// AddArc appends one outgoing arc to state from.
// Both from and arc.To must exist; otherwise ErrStateNotFound is returned
// and the automaton is unchanged. Parallel arcs are allowed and kept
// distinct in insertion order.
// Complexity: amortized O(1).
func (a *Automaton[W]) AddArc(from StateID, arc Arc[W]) error {
	if !a.Has(from) {
		return fmt.Errorf("%w: arc source %d", ErrStateNotFound, from)
	}
	if !a.Has(arc.To) {
		return fmt.Errorf("%w: arc destination %d", ErrStateNotFound, arc.To)
	}
	a.arcs[from] = append(a.arcs[from], arc)

	return nil
}

// Arcs returns the outgoing arcs of s in insertion order.
// The returned slice is the automaton's own storage: treat it as
// read-only. Unknown states yield nil.
func (a *Automaton[W]) Arcs(s StateID) []Arc[W] {
	if !a.Has(s) {
		return nil
	}

	return a.arcs[s]
}

// NumArcs returns the total number of arcs across all states.
// Complexity: O(V).
func (a *Automaton[W]) NumArcs() int {
	n := 0
	for _, out := range a.arcs {
		n += len(out)
	}

	return n
}
