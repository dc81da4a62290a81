// Package compose builds the label-matched product of two weighted
// automata.
//
// Algorithm outline:
//  1. Seed the frontier with the pair (start(a), start(b)).
//  2. For each pair (p, q), match every arc of a out of p whose output
//     label equals the input label of an arc of b out of q.
//  3. Each match emits one arc to the pair of destinations, creating
//     the destination pair state on first sight.
//  4. A pair is final iff both components are final; its final weight
//     is the ⊗-product of the component final weights.
//
// Complexity:
//
//   - Time:   O(P · d_a · d_b)  with P reachable pairs, d the max
//     out-degree of each operand (label matching is a nested scan per
//     pair; operand arc lists are small for filter transducers).
//   - Memory: O(P) for the pair table plus the output arcs.
package compose

import (
	"github.com/katalvlaran/lvlfst/fst"
)

// pair is one state of the product: a state of each operand.
type pair struct {
	a, b fst.StateID
}

// composer holds the mutable state of a single composition run.
type composer[W any] struct {
	a, b  *fst.Automaton[W]
	out   *fst.Automaton[W]
	ids   map[pair]fst.StateID // discovered pairs → output state
	queue []pair               // pairs whose outgoing arcs are still unexplored
}

// Compose returns the weighted composition of a and b.
//
// Both operands must be non-nil, have a start state, and share the same
// semiring value. The operands are read-only during the call; the result
// is a fresh automaton over the same semiring.
//
// Malformed operands (dangling state references) cannot occur for
// automata built through the fst constructors, which validate at
// construction time; Compose therefore performs no structural re-checks.
func Compose[W any](a, b *fst.Automaton[W]) (*fst.Automaton[W], error) {
	if a == nil || b == nil {
		return nil, ErrNilAutomaton
	}
	if a.Start() == fst.NoState || b.Start() == fst.NoState {
		return nil, ErrNoStartState
	}
	if a.Semiring() != b.Semiring() {
		return nil, ErrSemiringMismatch
	}

	c := &composer[W]{
		a:   a,
		b:   b,
		out: fst.MustNew(a.Semiring(), fst.WithStateHint(a.NumStates())),
		ids: make(map[pair]fst.StateID),
	}

	// Seed with the start pair; it always exists in the result, even when
	// no arcs survive matching.
	start := c.state(pair{a: a.Start(), b: b.Start()})
	if err := c.out.SetStart(start); err != nil {
		return nil, err
	}

	// Forward exploration over reachable pairs.
	for len(c.queue) > 0 {
		p := c.queue[0]
		c.queue = c.queue[1:]
		c.expand(p)
	}

	return c.out, nil
}

// state returns the output state for p, creating and enqueueing it on
// first sight. Finality is settled at creation: final iff both
// components are final, with ⊗-combined weight.
func (c *composer[W]) state(p pair) fst.StateID {
	if s, ok := c.ids[p]; ok {
		return s
	}
	s := c.out.AddState()
	c.ids[p] = s
	if wa, oka := c.a.Final(p.a); oka {
		if wb, okb := c.b.Final(p.b); okb {
			// Both constituents final: states created by AddState always
			// exist, so SetFinal cannot fail here.
			_ = c.out.SetFinal(s, c.out.Semiring().Times(wa, wb))
		}
	}
	c.queue = append(c.queue, p)

	return s
}

// expand emits every label-matched arc pair out of p.
// Matches with identical labels and destinations stay distinct arcs.
func (c *composer[W]) expand(p pair) {
	src := c.ids[p]
	sr := c.out.Semiring()
	for _, arcA := range c.a.Arcs(p.a) {
		for _, arcB := range c.b.Arcs(p.b) {
			if arcA.Out != arcB.In {
				continue
			}
			dst := c.state(pair{a: arcA.To, b: arcB.To})
			_ = c.out.AddArc(src, fst.Arc[W]{
				In:     arcA.In,
				Out:    arcB.Out,
				Weight: sr.Times(arcA.Weight, arcB.Weight),
				To:     dst,
			})
		}
	}
}
