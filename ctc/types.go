package ctc

import "errors"

// Sentinel errors for CTC lattice collapsing.
var (
	// ErrEpsilonBlank indicates the blank label was Epsilon (0), which is
	// reserved and can never be the CTC blank. Configuration error: fatal,
	// nothing is processed.
	ErrEpsilonBlank = errors.New("ctc: blank label 0 is reserved for epsilon")

	// ErrNilLattice indicates a nil input lattice.
	ErrNilLattice = errors.New("ctc: lattice is nil")

	// ErrNoStartState indicates the input lattice has no start state.
	ErrNoStartState = errors.New("ctc: lattice has no start state")
)
