package semiring

import "math"

// LatticeWeight is the weight carried by recognition-lattice arcs:
// a pair of tropical costs, conventionally the graph (language model)
// cost and the acoustic cost. Both components accumulate additively
// along a path; alternatives compete on their total.
type LatticeWeight struct {
	// Graph is the graph / language-model cost component.
	Graph float64

	// Acoustic is the acoustic-score cost component.
	Acoustic float64
}

// Total returns the combined cost Graph + Acoustic used to rank
// alternative paths.
func (w LatticeWeight) Total() float64 { return w.Graph + w.Acoustic }

// Lattice is the semiring of LatticeWeight pairs.
//
// Times adds the pairs component-wise; Plus keeps the pair with the
// smaller Total, breaking exact ties toward the smaller Graph cost so
// that Plus stays deterministic.
type Lattice struct{}

// Plus returns the pair with the smaller total cost.
// On an exact total tie the pair with the smaller Graph cost wins.
func (Lattice) Plus(a, b LatticeWeight) LatticeWeight {
	ta, tb := a.Total(), b.Total()
	switch {
	case ta < tb:
		return a
	case tb < ta:
		return b
	case a.Graph <= b.Graph:
		return a
	default:
		return b
	}
}

// Times adds the two pairs component-wise.
func (Lattice) Times(a, b LatticeWeight) LatticeWeight {
	return LatticeWeight{Graph: a.Graph + b.Graph, Acoustic: a.Acoustic + b.Acoustic}
}

// Zero returns the absent-path weight (+Inf, +Inf).
func (Lattice) Zero() LatticeWeight {
	return LatticeWeight{Graph: math.Inf(1), Acoustic: math.Inf(1)}
}

// One returns the no-cost weight (0, 0).
func (Lattice) One() LatticeWeight { return LatticeWeight{} }

// Equal reports component-wise equality.
func (Lattice) Equal(a, b LatticeWeight) bool {
	return a.Graph == b.Graph && a.Acoustic == b.Acoustic
}
