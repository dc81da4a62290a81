// Tests for the structural property checks: acceptor detection,
// acyclicity, and topological ordering.
package fst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfst/fst"
	"github.com/katalvlaran/lvlfst/semiring"
)

// chain builds a linear acceptor s0 -l0-> s1 -l1-> … with unit weights.
func chain(t *testing.T, labels ...fst.Label) *fst.Automaton[float64] {
	t.Helper()
	sr := semiring.Tropical{}
	a := fst.MustNew[float64](sr)
	cur := a.AddState()
	require.NoError(t, a.SetStart(cur))
	for _, l := range labels {
		next := a.AddState()
		require.NoError(t, a.AddArc(cur, fst.Arc[float64]{In: l, Out: l, Weight: sr.One(), To: next}))
		cur = next
	}
	require.NoError(t, a.SetFinal(cur, sr.One()))

	return a
}

func TestIsAcceptor(t *testing.T) {
	a := chain(t, 1, 2, 3)
	assert.True(t, a.IsAcceptor())

	// One transducing arc breaks the acceptor property.
	s := a.AddState()
	require.NoError(t, a.AddArc(0, fst.Arc[float64]{In: 4, Out: 5, To: s}))
	assert.False(t, a.IsAcceptor())
}

func TestIsAcceptor_EmptyAutomaton(t *testing.T) {
	a := fst.MustNew[float64](semiring.Tropical{})
	assert.True(t, a.IsAcceptor())
	assert.True(t, a.IsAcyclic())
}

func TestIsAcyclic_Chain(t *testing.T) {
	assert.True(t, chain(t, 1, 2, 3, 4).IsAcyclic())
}

func TestIsAcyclic_SelfLoop(t *testing.T) {
	a := chain(t, 1)
	require.NoError(t, a.AddArc(1, fst.Arc[float64]{In: 2, Out: 2, To: 1}))
	assert.False(t, a.IsAcyclic())
}

func TestIsAcyclic_BackEdge(t *testing.T) {
	a := chain(t, 1, 2, 3)
	// Arc from the last state back to the first closes a cycle.
	require.NoError(t, a.AddArc(3, fst.Arc[float64]{In: 9, Out: 9, To: 0}))
	assert.False(t, a.IsAcyclic())
}

func TestIsAcyclic_DiamondIsNotACycle(t *testing.T) {
	// Two paths meeting at the same state must not be mistaken for a cycle.
	sr := semiring.Tropical{}
	a := fst.MustNew[float64](sr)
	s0, s1, s2, s3 := a.AddState(), a.AddState(), a.AddState(), a.AddState()
	require.NoError(t, a.SetStart(s0))
	require.NoError(t, a.AddArc(s0, fst.Arc[float64]{In: 1, Out: 1, To: s1}))
	require.NoError(t, a.AddArc(s0, fst.Arc[float64]{In: 2, Out: 2, To: s2}))
	require.NoError(t, a.AddArc(s1, fst.Arc[float64]{In: 3, Out: 3, To: s3}))
	require.NoError(t, a.AddArc(s2, fst.Arc[float64]{In: 3, Out: 3, To: s3}))
	assert.True(t, a.IsAcyclic())
}

func TestTopologicalOrder_Chain(t *testing.T) {
	a := chain(t, 1, 2, 3)
	order, err := a.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []fst.StateID{0, 1, 2, 3}, order)
}

func TestTopologicalOrder_RespectsArcs(t *testing.T) {
	sr := semiring.Tropical{}
	a := fst.MustNew[float64](sr)
	// States created out of topological order on purpose: 2 → 0 → 1.
	s0, s1, s2 := a.AddState(), a.AddState(), a.AddState()
	require.NoError(t, a.SetStart(s2))
	require.NoError(t, a.AddArc(s2, fst.Arc[float64]{In: 1, Out: 1, To: s0}))
	require.NoError(t, a.AddArc(s0, fst.Arc[float64]{In: 2, Out: 2, To: s1}))

	order, err := a.TopologicalOrder()
	require.NoError(t, err)

	pos := make(map[fst.StateID]int, len(order))
	for i, s := range order {
		pos[s] = i
	}
	assert.Less(t, pos[s2], pos[s0])
	assert.Less(t, pos[s0], pos[s1])
}

func TestTopologicalOrder_CycleError(t *testing.T) {
	a := chain(t, 1, 2)
	require.NoError(t, a.AddArc(2, fst.Arc[float64]{In: 5, Out: 5, To: 1}))
	order, err := a.TopologicalOrder()
	assert.Nil(t, order)
	assert.ErrorIs(t, err, fst.ErrCycleDetected)
}

func TestTopologicalOrder_CoversUnreachableStates(t *testing.T) {
	a := chain(t, 1)
	// A detached state still appears in the ordering.
	iso := a.AddState()
	order, err := a.TopologicalOrder()
	require.NoError(t, err)
	assert.Len(t, order, 3)
	assert.Contains(t, order, iso)
}
