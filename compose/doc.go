// Package compose implements weighted composition of two automata.
//
// Compose(a, b) builds the automaton whose paths are pairs of matching
// paths: an arc of a with output label ℓ pairs with an arc of b with
// input label ℓ. The combined arc consumes a's input label, emits b's
// output label, and carries the ⊗-product of both weights. A pair
// state is final iff both components are final, with the ⊗-product of
// the final weights.
//
// Only pairs reachable from (start(a), start(b)) are materialized, so
// the result never contains dead entry states. Parallel matches are
// kept as distinct arcs; no ⊕-merging of alternatives happens here —
// the result is an exact path-preserving product, and any weight
// summation belongs to a later stage.
//
// Matching is strict on labels, including Epsilon: an epsilon-output
// arc of a only pairs with an epsilon-input arc of b. There is no
// implicit epsilon progression (no epsilon-filter construction); this
// is the right product for label-filtering transducers such as the CTC
// blank filter, which never carry epsilon input labels.
//
// Composition of two acyclic automata is finite and acyclic, so it
// always terminates on lattices.
package compose
