package core

// Descriptor is the immutable, declarative statement of a search problem.
// A Domain builds one once; the engine consumes it without ever mutating it.
//
// Contract:
//   - IsGoal, Successors and (when present) Predecessors are pure,
//     deterministic and safely re-invocable
//   - Seeds is non-empty; forward searches read it as start states, backward
//     searches as goal/reference states
//   - Direction backward or bidirectional requires Predecessors
//   - Bounds use zero as "unset": MaxStates > 0 caps the number of expanded
//     states, MaxCost > 0 prunes relaxations beyond that distance
type Descriptor[S, A comparable] struct {
	// IsGoal reports whether a state is a goal state.
	IsGoal GoalFunc[S]

	// Successors yields the outgoing edges of a state.
	Successors SuccessorFunc[S, A]

	// Predecessors yields the incoming edges of a state. Optional; required
	// for backward and bidirectional directions.
	Predecessors PredecessorFunc[S, A]

	// Seeds are the states the search starts from, at distance 0.
	Seeds []S

	// Direction hints which way the search should run.
	Direction Direction

	// CostModel hints at the edge-weight structure for algorithm selection.
	CostModel CostModel

	// MaxStates caps how many states the search may expand. Zero means
	// unbounded. Hitting the cap silently truncates the explored space:
	// states beyond it are reported unreachable even if a path exists.
	MaxStates int

	// MaxCost prunes relaxations whose candidate distance exceeds the bound.
	// Zero means unbounded. Same degraded-completeness trade-off as MaxStates.
	MaxCost int

	// DomainName identifies the problem in logs and errors.
	DomainName string

	// Metadata carries free-form, engine-opaque problem information.
	Metadata map[string]any
}

// Validate checks the descriptor's internal consistency. It is side-effect
// free and safe to call repeatedly; engine construction invokes it
// automatically, and domains may call it standalone for early feedback.
func (d *Descriptor[S, A]) Validate() error {
	if d.IsGoal == nil {
		return NewConfigurationError("goal", "goal predicate must not be nil")
	}

	if d.Successors == nil {
		return NewConfigurationError("successors", "successor generator must not be nil")
	}

	if d.Direction != "" && !d.Direction.valid() {
		return NewConfigurationError("direction", "unknown direction %q", d.Direction)
	}

	if (d.Direction == DirectionBackward || d.Direction == DirectionBidirectional) && d.Predecessors == nil {
		return NewConfigurationError("predecessors",
			"direction %q requires a predecessor generator", d.Direction)
	}

	if len(d.Seeds) == 0 {
		return NewConfigurationError("seeds", "seed-state set must not be empty")
	}

	if d.CostModel != "" && !d.CostModel.valid() {
		return NewConfigurationError("cost_model", "unknown cost model %q", d.CostModel)
	}

	if d.MaxStates < 0 {
		return NewConfigurationError("max_states", "max states must be >= 0, got %d", d.MaxStates)
	}

	if d.MaxCost < 0 {
		return NewConfigurationError("max_cost", "max cost must be >= 0, got %d", d.MaxCost)
	}

	return nil
}

// EffectiveDirection returns the descriptor's direction, defaulting to forward.
func (d *Descriptor[S, A]) EffectiveDirection() Direction {
	if d.Direction == "" {
		return DirectionForward
	}
	return d.Direction
}

// EffectiveCostModel returns the descriptor's cost model, defaulting to uniform.
func (d *Descriptor[S, A]) EffectiveCostModel() CostModel {
	if d.CostModel == "" {
		return CostUniform
	}
	return d.CostModel
}
