// Package lvlfst is a toolkit for weighted finite-state acceptors and
// transducers ("lattices") as they appear in speech and sequence
// recognition pipelines.
//
// 🚀 What is lvlfst?
//
//	A pure-Go library for post-processing recognition lattices:
//		• Core primitives: weighted automata with semiring-typed arc weights
//		• Semirings: Tropical (min,+) and Lattice (graph/acoustic cost pairs)
//		• Composition: generic weighted automaton composition
//		• CTC: blank-removal and duplicate-collapsing of CTC output lattices
//		• Tables: keyed lattice collections over text archives or SQLite
//
// ✨ Why choose lvlfst?
//
//   - Semiring-generic – algorithms are parameterized over the weight algebra
//   - Deterministic – stable state numbering and arc order everywhere
//   - Practical – ships a ready CLI for batch lattice processing
//
// Everything is organized under small focused subpackages:
//
//	semiring/ — weight algebras: Semiring capability, Tropical, Lattice weights
//	fst/      — Automaton, Arc, Label types and structural properties
//	compose/  — weighted composition of two automata
//	ctc/      — CTC blank filter construction and lattice collapsing
//	table/    — keyed lattice collections: text archives and SQLite stores
//
// Quick ASCII example — collapsing the CTC path b·a·a·b·c (b = blank):
//
//	(0)─b→(1)─a→(2)─a→(3)─b→(4)─c→((5))   ⇒   (0)─a→(1)─c→((2))
//
// See ctc.RemoveBlank for the one-call entry point, and
// cmd/lattice-remove-ctc-blank for the batch tool.
package lvlfst
