package semiring

import "math"

// Semiring is the weight algebra capability required by all lattice
// algorithms.
//
// Laws assumed by the algorithms (not checked at runtime):
//
//   - Plus is commutative and associative with identity Zero.
//   - Times is associative with identity One.
//   - Times distributes over Plus.
//   - Zero annihilates: Times(Zero, w) == Zero for all w.
type Semiring[W any] interface {
	// Plus combines the weights of two alternative paths (⊕).
	Plus(a, b W) W

	// Times combines the weights of two sequential arcs (⊗).
	Times(a, b W) W

	// Zero is the weight of the absent path; identity of Plus.
	Zero() W

	// One is the neutral weight; identity of Times.
	One() W

	// Equal reports whether two weights are the same member.
	Equal(a, b W) bool
}

// Tropical is the (min, +) semiring over float64 costs.
//
// Plus keeps the smaller cost, Times adds costs, Zero is +Inf and One is 0.
// This is the algebra of shortest paths: the combined weight of a set of
// alternatives is the cost of the cheapest one.
type Tropical struct{}

// Plus returns the smaller of the two costs.
func (Tropical) Plus(a, b float64) float64 { return math.Min(a, b) }

// Times returns the sum of the two costs. +Inf absorbs naturally.
func (Tropical) Times(a, b float64) float64 { return a + b }

// Zero returns +Inf, the cost of no path.
func (Tropical) Zero() float64 { return math.Inf(1) }

// One returns 0, the cost of the empty path.
func (Tropical) One() float64 { return 0 }

// Equal reports exact equality of costs. Two +Inf values are equal.
func (Tropical) Equal(a, b float64) bool { return a == b }
