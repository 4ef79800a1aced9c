package strategy

import (
	"github.com/gammazero/deque"

	"github.com/skoeber/policykit/core"
)

// ZeroOneBFS generalizes breadth-first search to edge weights restricted to
// {0,1} using a double-ended queue: relaxed states enter at the front for
// zero-cost edges and at the back for unit-cost edges, which keeps the queue
// in non-decreasing distance order without a priority queue. Runtime is
// linear in discovered states plus edges.
//
// A state may be enqueued and relaxed several times before its distance
// stabilizes; only the value present once the queue empties is authoritative.
//
// The forward and backward variants differ only in which generator they
// traverse and in what the seeds mean (start states forward, goal/reference
// states backward).
type ZeroOneBFS[S, A comparable] struct {
	backward bool
}

// NewZeroOneBFSForward creates the forward variant, expanding successors
// from seed start states.
func NewZeroOneBFSForward[S, A comparable]() *ZeroOneBFS[S, A] {
	return &ZeroOneBFS[S, A]{}
}

// NewZeroOneBFSBackward creates the backward variant, expanding predecessors
// from seed goal states. The resulting distances are goal-anchored.
func NewZeroOneBFSBackward[S, A comparable]() *ZeroOneBFS[S, A] {
	return &ZeroOneBFS[S, A]{backward: true}
}

// Name returns the strategy identifier.
func (z *ZeroOneBFS[S, A]) Name() string {
	if z.backward {
		return "zero-one-bfs-backward"
	}
	return "zero-one-bfs-forward"
}

// Direction reports the traversal direction of this variant.
func (z *ZeroOneBFS[S, A]) Direction() core.Direction {
	if z.backward {
		return core.DirectionBackward
	}
	return core.DirectionForward
}

// Compute runs 0/1-BFS over the descriptor's state space.
//
// Termination: the queue empties, or the number of dequeued states reaches
// the descriptor's MaxStates bound. Hitting the bound is not an error; the
// result simply covers only the explored fringe and is marked Truncated.
// The first edge observed with a cost outside {0,1} aborts the search with a
// CostDomainError and no partial result. The backward variant additionally
// refuses a descriptor without a predecessor generator, which descriptor
// validation alone cannot catch when the strategy is chosen explicitly.
func (z *ZeroOneBFS[S, A]) Compute(desc *core.Descriptor[S, A]) (*core.Result[S, A], error) {
	var expand func(S) []core.Edge[S, A] = desc.Successors
	if z.backward {
		if desc.Predecessors == nil {
			return nil, core.NewConfigurationError("predecessors",
				"backward strategy requires a predecessor generator")
		}
		expand = desc.Predecessors
	}

	res := core.NewResult[S, A]()
	queue := deque.New[S]()

	for _, seed := range desc.Seeds {
		if _, seen := res.Distances[seed]; seen {
			continue
		}
		res.Distances[seed] = 0
		queue.PushBack(seed)
	}

	for queue.Len() > 0 {
		if desc.MaxStates > 0 && res.Expanded >= desc.MaxStates {
			res.Truncated = true
			break
		}

		state := queue.PopFront()
		res.Expanded++
		res.Order = append(res.Order, state)
		dist := res.Distances[state]

		for _, edge := range expand(state) {
			if edge.Cost != 0 && edge.Cost != 1 {
				from, to := any(state), any(edge.State)
				if z.backward {
					from, to = to, from
				}
				return nil, core.NewCostDomainError(from, edge.Action, to, edge.Cost)
			}

			candidate := dist + edge.Cost
			if desc.MaxCost > 0 && candidate > core.Cost(desc.MaxCost) {
				continue
			}

			if known, seen := res.Distances[edge.State]; !seen || candidate < known {
				res.Distances[edge.State] = candidate
				res.Parents[edge.State] = core.Parent[S, A]{State: state, Action: edge.Action, Cost: edge.Cost}

				if edge.Cost == 0 {
					queue.PushFront(edge.State)
				} else {
					queue.PushBack(edge.State)
				}
			}
		}
	}

	return res, nil
}
