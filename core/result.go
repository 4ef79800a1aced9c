package core

// Result is what a search strategy produces: partial distance and parent
// maps over the discovered portion of the state space, plus bookkeeping the
// engine uses for action derivation and observability.
//
// Distances is partial: a state absent from it is not known reachable, which
// is distinct from being unreachable by fiat. Parents records, for each
// discovered non-seed state, one edge on a shortest path toward the seed
// side of the search.
type Result[S, A comparable] struct {
	Distances map[S]Cost
	Parents   map[S]Parent[S, A]

	// Order lists states in the order they were dequeued. Because 0/1 search
	// processes the queue in non-decreasing distance order, Order gives the
	// engine a deterministic, distance-sorted iteration over expanded states.
	// States re-enqueued during relaxation may appear more than once.
	Order []S

	// Expanded counts dequeued states.
	Expanded int

	// Truncated is set when the MaxStates bound stopped the search before
	// the queue emptied. Not an error: the distance map simply covers only
	// the explored fringe.
	Truncated bool
}

// NewResult creates an empty Result with initialized maps.
func NewResult[S, A comparable]() *Result[S, A] {
	return &Result[S, A]{
		Distances: make(map[S]Cost),
		Parents:   make(map[S]Parent[S, A]),
	}
}
