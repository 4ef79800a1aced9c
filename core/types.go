package core

import "math"

// Cost is a non-negative integer edge weight or accumulated path distance.
// The built-in search strategies additionally require every edge cost to be
// exactly 0 or 1; see CostModel for how a descriptor advertises its weights.
type Cost int

// Infinity is the sentinel distance reported for states the search never
// discovered. Absence from a distance map means "not known reachable", and
// queries translate that absence into Infinity rather than failing.
const Infinity Cost = math.MaxInt

// Direction declares which way a search traverses the state space.
type Direction string

const (
	// DirectionForward searches from seed (start) states along successors.
	DirectionForward Direction = "forward"
	// DirectionBackward searches from seed (goal/reference) states along
	// predecessors, yielding goal-anchored distances.
	DirectionBackward Direction = "backward"
	// DirectionBidirectional advertises that both generators are available.
	// The engine currently runs such descriptors with the forward variant.
	DirectionBidirectional Direction = "bidirectional"
)

// valid reports whether d is one of the declared directions.
func (d Direction) valid() bool {
	switch d {
	case DirectionForward, DirectionBackward, DirectionBidirectional:
		return true
	}
	return false
}

// CostModel hints at the edge-weight structure so the engine can pick an
// appropriate algorithm.
type CostModel string

const (
	// CostUniform means every edge costs the same; the one-weight special
	// case of 0/1 search.
	CostUniform CostModel = "uniform"
	// CostZeroOne means every edge costs 0 or 1.
	CostZeroOne CostModel = "zero_one"
	// CostArbitrary means edge costs are unconstrained non-negative integers.
	// No dedicated algorithm exists for this model yet; the engine falls back
	// to 0/1 search, which fails with a CostDomainError if an out-of-range
	// weight is actually observed. Callers must not assume arbitrary weights
	// are supported in general.
	CostArbitrary CostModel = "arbitrary"
)

func (c CostModel) valid() bool {
	switch c {
	case CostUniform, CostZeroOne, CostArbitrary:
		return true
	}
	return false
}

// Edge describes a single transition touching a state: the state on the far
// side, the action labelling the transition and its cost. Successor
// generators yield outgoing edges, predecessor generators incoming ones.
type Edge[S, A comparable] struct {
	State  S
	Action A
	Cost   Cost
}

// GoalFunc reports whether a state is a goal. Must be pure and total.
type GoalFunc[S comparable] func(S) bool

// SuccessorFunc produces the outgoing edges of a state. Implementations must
// be side-effect free, deterministic and safely re-invocable: the engine
// calls them once per state during search and again during action derivation
// and Step. The yield order breaks ties between equally optimal actions, so
// reproducible policies require a deterministic order.
type SuccessorFunc[S, A comparable] func(S) []Edge[S, A]

// PredecessorFunc produces the incoming edges of a state, shaped like
// SuccessorFunc with Edge.State holding the predecessor. Required exactly
// when the descriptor's direction is not purely forward.
type PredecessorFunc[S, A comparable] func(S) []Edge[S, A]

// Parent records one edge on a shortest path toward the seed side of the
// search: the adjacent state nearer the seeds and the action on that edge.
type Parent[S, A comparable] struct {
	State  S
	Action A
	Cost   Cost
}

// Step is one element of a reconstructed path: the action taken and the
// state it leads to.
type Step[S, A comparable] struct {
	Action A
	State  S
}
