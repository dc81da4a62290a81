// This file declares Label, StateID, Arc, Automaton options,
// and the sentinel errors of package fst.
package fst

import "errors"

// Sentinel errors for automaton construction and inspection.
var (
	// ErrStateNotFound indicates an operation referenced a state ID that
	// was never created with AddState.
	ErrStateNotFound = errors.New("fst: state not found")

	// ErrNoStartState indicates the automaton has no designated start state.
	ErrNoStartState = errors.New("fst: start state not set")

	// ErrCycleDetected indicates the automaton contains a directed cycle
	// where an acyclic one was required.
	ErrCycleDetected = errors.New("fst: cycle detected")

	// ErrNilSemiring indicates New was called with a nil semiring.
	ErrNilSemiring = errors.New("fst: semiring is nil")
)

// Label identifies an input or output symbol on an arc.
// Labels are non-negative; Epsilon (0) means "no symbol".
type Label int64

// Epsilon is the reserved label meaning no symbol is consumed or emitted.
const Epsilon Label = 0

// StateID identifies a state within one Automaton.
// IDs are dense: AddState hands out 0, 1, 2, … in order.
type StateID int

// NoState is the StateID of an unset start state.
const NoState StateID = -1

// Arc is one weighted transition.
//
// In and Out are the consumed and emitted labels (equal on acceptors),
// Weight lives in the automaton's semiring, To is the destination state.
type Arc[W any] struct {
	// In is the input label consumed by this arc.
	In Label

	// Out is the output label emitted by this arc.
	Out Label

	// Weight is the arc weight in the automaton's semiring.
	Weight W

	// To is the destination state.
	To StateID
}

// Option configures an Automaton before creation.
type Option func(*config)

// config holds pre-creation settings applied by New.
type config struct {
	stateHint int // capacity hint for the state table
}

// WithStateHint pre-allocates room for n states. Purely a capacity
// hint; the automaton still grows on demand.
func WithStateHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.stateHint = n
		}
	}
}
