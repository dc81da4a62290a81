// Package semiring defines the weight algebras used by lvlfst automata.
//
// A semiring supplies the two operations every weighted-automaton
// algorithm needs: ⊕ (Plus) combines the weights of alternative paths,
// ⊗ (Times) combines the weights of arcs along one path. Zero is the
// weight of "no path" and annihilates under ⊗; One is the neutral
// "no cost" weight.
//
// Two algebras ship with the package:
//
//   - Tropical — float64 costs under (min, +). The standard shortest-path
//     semiring: Plus keeps the cheaper alternative, Times accumulates cost.
//   - Lattice — LatticeWeight pairs of graph and acoustic cost, as used by
//     speech recognition lattices. Plus keeps the pair with the smaller
//     total cost, Times adds component-wise.
//
// Algorithms in fst, compose and ctc accept any Semiring implementation,
// so custom algebras (log, probability, …) drop in without changes there.
//
// Implementations are expected to be stateless comparable values:
// compose.Compose uses == on the Semiring interface to verify both
// operands share one algebra.
package semiring
