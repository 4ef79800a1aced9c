package engine

import "github.com/skoeber/policykit/core"

// deriveActions computes the next-action map from the search result. The
// scheme depends on which way the strategy ran, because that determines what
// the distance map is anchored to:
//
//   - backward searches yield goal-anchored distances, so the first
//     successor n with dist[n] + cost == dist[s] lies on a shortest path
//     toward a goal
//   - forward searches yield seed-anchored distances, for which that
//     relation points back toward the seeds; instead the parent chains of
//     discovered goals are unwound, assigning each chain state the action on
//     its outgoing shortest-path edge
//
// Either way the result maps every covered non-goal state to an action on a
// shortest path toward a goal. Ties are broken by the order the domain's
// successor generator yields edges (backward) or by goal expansion order
// (forward); determinism therefore rests on the domain's generator contract.
func (e *Engine[S, A]) deriveActions(res *core.Result[S, A]) {
	if e.strat.Direction() == core.DirectionBackward {
		e.deriveFromDistances()
	} else {
		e.deriveFromParents(res)
	}
}

// deriveFromDistances scans, for every discovered non-goal state, the
// forward successor generator and records the first successor on a shortest
// path. O(states x average out-degree).
func (e *Engine[S, A]) deriveFromDistances() {
	for state, dist := range e.distances {
		if e.desc.IsGoal(state) {
			continue
		}

		for _, edge := range e.desc.Successors(state) {
			next, known := e.distances[edge.State]
			if known && next+edge.Cost == dist {
				e.next[state] = edge.Action
				break
			}
		}
	}
}

// deriveFromParents unwinds the parent chain of every goal discovered by a
// forward search, in expansion order (non-decreasing distance, so nearer
// goals claim shared chain prefixes first). A chain state that already has
// an action terminates the walk: the rest of its chain is already covered.
func (e *Engine[S, A]) deriveFromParents(res *core.Result[S, A]) {
	for _, state := range res.Order {
		if !e.desc.IsGoal(state) {
			continue
		}

		current := state
		for i := 0; i <= len(e.distances); i++ {
			parent, ok := e.parents[current]
			if !ok {
				break // reached a seed
			}
			if _, assigned := e.next[parent.State]; assigned {
				break
			}
			e.next[parent.State] = parent.Action
			current = parent.State
		}
	}
}
