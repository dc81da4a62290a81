package compose_test

import (
	"fmt"

	"github.com/katalvlaran/lvlfst/compose"
	"github.com/katalvlaran/lvlfst/fst"
	"github.com/katalvlaran/lvlfst/semiring"
)

// ExampleCompose relabels an acceptor through a one-arc transducer:
// the product consumes the acceptor's label and emits the transducer's.
func ExampleCompose() {
	sr := semiring.Tropical{}

	a := fst.MustNew[float64](sr)
	a0, a1 := a.AddState(), a.AddState()
	_ = a.SetStart(a0)
	_ = a.AddArc(a0, fst.Arc[float64]{In: 5, Out: 5, Weight: 1.0, To: a1})
	_ = a.SetFinal(a1, sr.One())

	b := fst.MustNew[float64](sr)
	b0, b1 := b.AddState(), b.AddState()
	_ = b.SetStart(b0)
	_ = b.AddArc(b0, fst.Arc[float64]{In: 5, Out: 9, Weight: 2.0, To: b1})
	_ = b.SetFinal(b1, sr.One())

	out, err := compose.Compose(a, b)
	if err != nil {
		fmt.Println(err)

		return
	}

	arc := out.Arcs(out.Start())[0]
	fmt.Printf("%d:%d / %g\n", arc.In, arc.Out, arc.Weight)
	// Output: 5:9 / 3
}
