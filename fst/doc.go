// Package fst defines the central weighted-automaton type used across
// lvlfst: Automaton, Arc, Label, and StateID, plus the structural
// property checks that batch tools run before handing a lattice to the
// algorithms (acceptor test, acyclicity test, topological ordering).
//
// An Automaton[W] is a set of integer-numbered states, a designated
// start state, an optional final weight per state, and an ordered list
// of outgoing arcs per state. Arc weights live in a semiring.Semiring[W]
// supplied at construction, so one automaton type serves tropical
// lattices, graph/acoustic-cost lattices, or any custom algebra.
//
// Labels are non-negative integers; Epsilon (0) is reserved for "no
// symbol". An automaton whose every arc carries identical input and
// output labels is an acceptor.
//
// States are created with AddState and referenced by the returned
// StateID; SetStart, SetFinal and AddArc reject unknown states with
// ErrStateNotFound, so a fully constructed Automaton never contains
// dangling references.
//
// Construction is not goroutine-safe; a finished Automaton is read-only
// for the algorithm packages and may be shared freely.
package fst
