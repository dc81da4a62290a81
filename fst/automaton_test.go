// Package fst_test covers automaton construction: state and arc
// bookkeeping, start/final handling, and the construction-time
// validation that keeps automata free of dangling state references.
package fst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfst/fst"
	"github.com/katalvlaran/lvlfst/semiring"
)

func TestNew_NilSemiring(t *testing.T) {
	a, err := fst.New[float64](nil)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, fst.ErrNilSemiring)
}

func TestNew_Empty(t *testing.T) {
	a := fst.MustNew[float64](semiring.Tropical{})
	assert.Equal(t, 0, a.NumStates())
	assert.Equal(t, 0, a.NumArcs())
	assert.Equal(t, fst.NoState, a.Start())
}

func TestAddState_DenseIDs(t *testing.T) {
	a := fst.MustNew[float64](semiring.Tropical{}, fst.WithStateHint(4))
	for want := 0; want < 4; want++ {
		assert.Equal(t, fst.StateID(want), a.AddState())
	}
	assert.Equal(t, 4, a.NumStates())
	assert.True(t, a.Has(3))
	assert.False(t, a.Has(4))
	assert.False(t, a.Has(fst.NoState))
}

func TestSetStart(t *testing.T) {
	a := fst.MustNew[float64](semiring.Tropical{})
	s := a.AddState()

	require.NoError(t, a.SetStart(s))
	assert.Equal(t, s, a.Start())

	// Unknown states are rejected and the start is unchanged.
	err := a.SetStart(7)
	assert.ErrorIs(t, err, fst.ErrStateNotFound)
	assert.Equal(t, s, a.Start())
}

func TestSetFinal_AndFinal(t *testing.T) {
	sr := semiring.Tropical{}
	a := fst.MustNew[float64](sr)
	s := a.AddState()

	// Non-final state reports Zero and false.
	w, ok := a.Final(s)
	assert.False(t, ok)
	assert.Equal(t, sr.Zero(), w)
	assert.False(t, a.IsFinal(s))

	require.NoError(t, a.SetFinal(s, 1.5))
	w, ok = a.Final(s)
	assert.True(t, ok)
	assert.Equal(t, 1.5, w)
	assert.Equal(t, 1, a.NumFinals())

	// SetFinal replaces the previous weight.
	require.NoError(t, a.SetFinal(s, 2.5))
	w, _ = a.Final(s)
	assert.Equal(t, 2.5, w)
	assert.Equal(t, 1, a.NumFinals())

	assert.ErrorIs(t, a.SetFinal(9, 0), fst.ErrStateNotFound)
}

func TestAddArc_Validation(t *testing.T) {
	a := fst.MustNew[float64](semiring.Tropical{})
	s0 := a.AddState()
	s1 := a.AddState()

	require.NoError(t, a.AddArc(s0, fst.Arc[float64]{In: 3, Out: 3, Weight: 0.5, To: s1}))

	// Unknown source and unknown destination are both rejected.
	assert.ErrorIs(t, a.AddArc(5, fst.Arc[float64]{To: s1}), fst.ErrStateNotFound)
	assert.ErrorIs(t, a.AddArc(s0, fst.Arc[float64]{To: 5}), fst.ErrStateNotFound)
	assert.Equal(t, 1, a.NumArcs())
}

func TestArcs_InsertionOrderAndParallelArcs(t *testing.T) {
	a := fst.MustNew[float64](semiring.Tropical{})
	s0 := a.AddState()
	s1 := a.AddState()

	// Two parallel arcs with the same labels stay distinct, in order.
	require.NoError(t, a.AddArc(s0, fst.Arc[float64]{In: 1, Out: 1, Weight: 0.25, To: s1}))
	require.NoError(t, a.AddArc(s0, fst.Arc[float64]{In: 1, Out: 1, Weight: 0.75, To: s1}))
	require.NoError(t, a.AddArc(s0, fst.Arc[float64]{In: 2, Out: 2, Weight: 1.0, To: s1}))

	arcs := a.Arcs(s0)
	require.Len(t, arcs, 3)
	assert.Equal(t, 0.25, arcs[0].Weight)
	assert.Equal(t, 0.75, arcs[1].Weight)
	assert.Equal(t, fst.Label(2), arcs[2].In)

	assert.Nil(t, a.Arcs(9))
	assert.Equal(t, 3, a.NumArcs())
}

func TestAutomaton_LatticeWeights(t *testing.T) {
	// The same Automaton type carries LatticeWeight arcs unchanged.
	a := fst.MustNew[semiring.LatticeWeight](semiring.Lattice{})
	s0 := a.AddState()
	s1 := a.AddState()
	require.NoError(t, a.SetStart(s0))
	require.NoError(t, a.AddArc(s0, fst.Arc[semiring.LatticeWeight]{
		In: 7, Out: 7,
		Weight: semiring.LatticeWeight{Graph: 1, Acoustic: 2},
		To:     s1,
	}))
	require.NoError(t, a.SetFinal(s1, semiring.Lattice{}.One()))

	arcs := a.Arcs(s0)
	require.Len(t, arcs, 1)
	assert.Equal(t, 3.0, arcs[0].Weight.Total())
}
