package compose

import "errors"

// Sentinel errors for composition.
var (
	// ErrNilAutomaton is returned when either operand is nil.
	ErrNilAutomaton = errors.New("compose: automaton is nil")

	// ErrNoStartState is returned when either operand has no start state.
	ErrNoStartState = errors.New("compose: automaton has no start state")

	// ErrSemiringMismatch is returned when the operands were built over
	// different semirings.
	ErrSemiringMismatch = errors.New("compose: operands use different semirings")
)
