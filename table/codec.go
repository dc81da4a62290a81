// This file implements the shared text codec for one lattice entry.
//
// Format, one item per line:
//
//	<from> <to> <ilabel> <olabel> [<graph>,<acoustic>]   arc
//	<state> [<graph>,<acoustic>]                         final state
//
// Weights default to One when omitted. The source state of the first
// line is the start state. States are materialized as referenced, with
// dense IDs equal to the numbers in the entry.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlfst/fst"
	"github.com/katalvlaran/lvlfst/semiring"
)

// Encode serializes lat into the text entry format.
// The start state's arcs are emitted first so decoding recovers the
// same start; remaining states follow in increasing ID order.
func Encode(lat *Lattice) []string {
	if lat == nil || lat.NumStates() == 0 {
		return nil
	}

	// Emission order: start state first, then everything else ascending.
	states := make([]fst.StateID, 0, lat.NumStates())
	if lat.Start() != fst.NoState {
		states = append(states, lat.Start())
	}
	var s fst.StateID
	for s = 0; int(s) < lat.NumStates(); s++ {
		if s != lat.Start() {
			states = append(states, s)
		}
	}

	one := LatticeSemiring.One()
	lines := make([]string, 0, lat.NumArcs()+lat.NumFinals())
	for _, src := range states {
		for _, arc := range lat.Arcs(src) {
			if LatticeSemiring.Equal(arc.Weight, one) {
				lines = append(lines, fmt.Sprintf("%d %d %d %d", src, arc.To, arc.In, arc.Out))
			} else {
				lines = append(lines, fmt.Sprintf("%d %d %d %d %s", src, arc.To, arc.In, arc.Out, formatWeight(arc.Weight)))
			}
		}
	}
	for _, src := range states {
		w, ok := lat.Final(src)
		if !ok {
			continue
		}
		if LatticeSemiring.Equal(w, one) {
			lines = append(lines, strconv.Itoa(int(src)))
		} else {
			lines = append(lines, fmt.Sprintf("%d %s", src, formatWeight(w)))
		}
	}

	return lines
}

// Decode parses a text entry into a Lattice.
// An empty entry decodes to an empty automaton with no start state.
func Decode(lines []string) (*Lattice, error) {
	lat := fst.MustNew[semiring.LatticeWeight](LatticeSemiring)
	ensure := func(id int) fst.StateID {
		for lat.NumStates() <= id {
			lat.AddState()
		}

		return fst.StateID(id)
	}

	for i, line := range lines {
		fields := strings.Fields(line)
		switch len(fields) {
		case 0:
			continue
		case 1, 2:
			// Final-state line.
			id, err := strconv.Atoi(fields[0])
			if err != nil || id < 0 {
				return nil, fmt.Errorf("%w: line %d: bad state %q", ErrBadEntry, i+1, fields[0])
			}
			w := LatticeSemiring.One()
			if len(fields) == 2 {
				if w, err = parseWeight(fields[1]); err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrBadEntry, i+1, err)
				}
			}
			s := ensure(id)
			if lat.Start() == fst.NoState {
				_ = lat.SetStart(s)
			}
			_ = lat.SetFinal(s, w)
		case 4, 5:
			// Arc line.
			nums := make([]int64, 4)
			for j := 0; j < 4; j++ {
				n, err := strconv.ParseInt(fields[j], 10, 64)
				if err != nil || n < 0 {
					return nil, fmt.Errorf("%w: line %d: bad field %q", ErrBadEntry, i+1, fields[j])
				}
				nums[j] = n
			}
			w := LatticeSemiring.One()
			if len(fields) == 5 {
				var err error
				if w, err = parseWeight(fields[4]); err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrBadEntry, i+1, err)
				}
			}
			from := ensure(int(nums[0]))
			to := ensure(int(nums[1]))
			if lat.Start() == fst.NoState {
				_ = lat.SetStart(from)
			}
			_ = lat.AddArc(from, fst.Arc[semiring.LatticeWeight]{
				In:     fst.Label(nums[2]),
				Out:    fst.Label(nums[3]),
				Weight: w,
				To:     to,
			})
		default:
			return nil, fmt.Errorf("%w: line %d: %d fields", ErrBadEntry, i+1, len(fields))
		}
	}

	return lat, nil
}

// formatWeight renders a weight pair as "graph,acoustic".
func formatWeight(w semiring.LatticeWeight) string {
	return strconv.FormatFloat(w.Graph, 'g', -1, 64) + "," + strconv.FormatFloat(w.Acoustic, 'g', -1, 64)
}

// parseWeight parses "graph,acoustic".
func parseWeight(s string) (semiring.LatticeWeight, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return semiring.LatticeWeight{}, fmt.Errorf("bad weight %q", s)
	}
	g, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return semiring.LatticeWeight{}, fmt.Errorf("bad weight %q", s)
	}
	a, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return semiring.LatticeWeight{}, fmt.Errorf("bad weight %q", s)
	}

	return semiring.LatticeWeight{Graph: g, Acoustic: a}, nil
}
