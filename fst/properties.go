// This file implements structural property checks on automata:
// the acceptor test, acyclicity via three-color DFS, and topological
// ordering of states. Batch tools run these before invoking the
// algorithm packages, which assume their preconditions hold.
package fst

// Visitation states for the three-color DFS.
const (
	white = iota // unvisited
	gray         // on the current DFS stack
	black        // fully processed
)

// frame is one explicit DFS stack entry: a state and the index of the
// next outgoing arc to explore.
type frame struct {
	id   StateID
	next int
}

// IsAcceptor reports whether every arc carries identical input and
// output labels.
// Complexity: O(V + E).
func (a *Automaton[W]) IsAcceptor() bool {
	for s := range a.arcs {
		for _, arc := range a.arcs[s] {
			if arc.In != arc.Out {
				return false
			}
		}
	}

	return true
}

// IsAcyclic reports whether the automaton contains no directed cycle.
// All states are considered, reachable from the start or not.
// Complexity: O(V + E).
func (a *Automaton[W]) IsAcyclic() bool {
	_, err := a.TopologicalOrder()

	return err == nil
}

// TopologicalOrder returns all states in an order where every arc goes
// from an earlier state to a later one. Returns ErrCycleDetected if no
// such order exists. The order is deterministic: DFS roots are taken in
// increasing state ID and arcs in insertion order.
// Complexity: O(V + E) time, O(V) memory.
func (a *Automaton[W]) TopologicalOrder() ([]StateID, error) {
	n := len(a.arcs)
	state := make([]int, n)        // all states start white
	order := make([]StateID, 0, n) // post-order accumulator
	stack := make([]frame, 0, n)   // explicit DFS stack; no recursion depth limit

	var root StateID
	for root = 0; int(root) < n; root++ {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack = append(stack, frame{id: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(a.arcs[top.id]) {
				dst := a.arcs[top.id][top.next].To
				top.next++
				switch state[dst] {
				case gray:
					// Back-edge to a state on the DFS stack: directed cycle.
					return nil, ErrCycleDetected
				case white:
					state[dst] = gray
					stack = append(stack, frame{id: dst})
				}

				continue
			}
			// All successors done: blacken and record post-order.
			state[top.id] = black
			order = append(order, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	// Reverse post-order is a topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
