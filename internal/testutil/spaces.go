package testutil

import "github.com/skoeber/policykit/core"

// Line builds a backward descriptor over the chain 0 -> 1 -> ... -> n with
// unit costs, seeded at the goal n. Distances are therefore goal-anchored:
// Distance(s) == n - s.
func Line(n int) *core.Descriptor[int, string] {
	succ := func(s int) []core.Edge[int, string] {
		if s >= n {
			return nil
		}
		return []core.Edge[int, string]{{State: s + 1, Action: "fwd", Cost: 1}}
	}
	pred := func(s int) []core.Edge[int, string] {
		if s <= 0 {
			return nil
		}
		return []core.Edge[int, string]{{State: s - 1, Action: "fwd", Cost: 1}}
	}

	return NewDescriptorBuilder[int, string]().
		Goal(func(s int) bool { return s == n }).
		Successors(succ).
		Predecessors(pred).
		Seeds(n).
		Direction(core.DirectionBackward).
		Name("line").
		Build()
}

// IncDouble builds a forward descriptor over the naturals with
// successors(n) = {(n+1, "inc", 1), (n*2, "double", 1)}, seeded at start.
// The space is unbounded, so maxStates must be set.
func IncDouble(start, goal, maxStates int) *core.Descriptor[int, string] {
	succ := func(s int) []core.Edge[int, string] {
		return []core.Edge[int, string]{
			{State: s + 1, Action: "inc", Cost: 1},
			{State: s * 2, Action: "double", Cost: 1},
		}
	}

	return NewDescriptorBuilder[int, string]().
		Goal(func(s int) bool { return s == goal }).
		Successors(succ).
		Seeds(start).
		MaxStates(maxStates).
		Name("inc-double").
		Build()
}

// Adjacency turns an explicit edge map into a pair of generators usable as
// successors (and, inverted, predecessors) for hand-built graphs in tests.
func Adjacency(edges map[int][]core.Edge[int, string]) (core.SuccessorFunc[int, string], core.PredecessorFunc[int, string]) {
	succ := func(s int) []core.Edge[int, string] {
		return edges[s]
	}

	inverted := map[int][]core.Edge[int, string]{}
	for from, outs := range edges {
		for _, e := range outs {
			inverted[e.State] = append(inverted[e.State], core.Edge[int, string]{State: from, Action: e.Action, Cost: e.Cost})
		}
	}
	pred := func(s int) []core.Edge[int, string] {
		return inverted[s]
	}

	return succ, pred
}
