package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/skoeber/policykit/core"
	"github.com/skoeber/policykit/logging"
	"github.com/skoeber/policykit/strategy"
)

// maxPathSteps caps path reconstruction. A correctly derived policy follows
// a DAG of shortest-path edges and cannot cycle, so hitting the cap means
// the domain's generators violated their purity/determinism contract.
const maxPathSteps = 10000

// Options configures an Engine instance using the functional options pattern.
type Options[S, A comparable] struct {
	// Strategy overrides the automatic cost-model/direction selection rule.
	// When set it is used unconditionally. Nil selects automatically.
	Strategy strategy.Strategy[S, A]

	// Logger receives construction and search diagnostics.
	// Defaults to NoOpLogger if nil.
	Logger logging.Logger
}

// Engine is a computed shortest-cost policy over one descriptor's state
// space. All fields are written during New and read-only afterwards.
type Engine[S, A comparable] struct {
	id    string
	desc  *core.Descriptor[S, A]
	strat strategy.Strategy[S, A]

	distances map[S]core.Cost
	parents   map[S]core.Parent[S, A]
	next      map[S]A

	expanded  int
	truncated bool

	logger logging.Logger
}

// New validates the descriptor, runs the selected search strategy once and
// derives the next-action map. It returns a ConfigurationError for an
// invalid descriptor or a CostDomainError if the search observes an edge
// cost outside {0,1}; in both cases no partial engine is produced.
func New[S, A comparable](desc *core.Descriptor[S, A], optFns ...func(*Options[S, A])) (*Engine[S, A], error) {
	opts := Options[S, A]{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	strat := opts.Strategy
	if strat == nil {
		strat = selectStrategy(desc)
	}

	e := &Engine[S, A]{
		id:     uuid.NewString(),
		desc:   desc,
		strat:  strat,
		next:   make(map[S]A),
		logger: opts.Logger,
	}

	e.logger.Debug("computing policy",
		"engine_id", e.id,
		"domain", desc.DomainName,
		"strategy", strat.Name(),
		"direction", string(desc.EffectiveDirection()),
		"cost_model", string(desc.EffectiveCostModel()),
	)

	start := time.Now()
	res, err := strat.Compute(desc)
	if err != nil {
		e.logger.Error("search failed",
			"engine_id", e.id,
			"domain", desc.DomainName,
			"strategy", strat.Name(),
			"error", err.Error(),
		)
		return nil, err
	}

	e.distances = res.Distances
	e.parents = res.Parents
	e.expanded = res.Expanded
	e.truncated = res.Truncated

	e.deriveActions(res)

	e.logger.Info("policy ready",
		"engine_id", e.id,
		"domain", desc.DomainName,
		"strategy", strat.Name(),
		"expanded_states", res.Expanded,
		"discovered_states", len(res.Distances),
		"next_actions", len(e.next),
		"truncated", res.Truncated,
		"duration", time.Since(start),
	)

	return e, nil
}

// selectStrategy implements the automatic selection rule. Cost models
// uniform and zero-one map to 0/1-BFS (uniform being its one-weight special
// case). The arbitrary model has no dedicated algorithm yet and falls back
// to 0/1-BFS, which fails with a CostDomainError only if an out-of-range
// edge weight is actually observed. Direction backward picks the backward
// variant; forward and bidirectional run forward, matching seeds that
// represent start states.
func selectStrategy[S, A comparable](desc *core.Descriptor[S, A]) strategy.Strategy[S, A] {
	if desc.EffectiveDirection() == core.DirectionBackward {
		return strategy.NewZeroOneBFSBackward[S, A]()
	}
	return strategy.NewZeroOneBFSForward[S, A]()
}

// ID returns the engine's unique instance identifier.
func (e *Engine[S, A]) ID() string { return e.id }

// StrategyName returns the name of the strategy that computed this policy.
func (e *Engine[S, A]) StrategyName() string { return e.strat.Name() }

// Expanded returns how many states the search dequeued.
func (e *Engine[S, A]) Expanded() int { return e.expanded }

// Truncated reports whether the MaxStates bound stopped the search before
// the state space was exhausted.
func (e *Engine[S, A]) Truncated() bool { return e.truncated }

// Step returns the locally optimal next action from state and the state it
// leads to. The boolean is false, with the state returned unchanged, when
// state is a goal or has no recorded next action (unreachable, unknown or
// excluded by an exploration bound).
//
// The next state is resolved by re-scanning the successor generator for the
// edge matching the recorded action, so the returned action and state are
// always mutually consistent even when several successors share a distance.
func (e *Engine[S, A]) Step(state S) (A, S, bool) {
	var zero A

	if e.desc.IsGoal(state) {
		return zero, state, false
	}

	action, ok := e.next[state]
	if !ok {
		return zero, state, false
	}

	for _, edge := range e.desc.Successors(state) {
		if edge.Action == action {
			return action, edge.State, true
		}
	}

	// The generator no longer yields the recorded action, violating the
	// re-invocability contract. Degrade rather than panic.
	return zero, state, false
}

// Distance returns the recorded cost for state, or Infinity if the search
// never discovered it.
func (e *Engine[S, A]) Distance(state S) core.Cost {
	if d, ok := e.distances[state]; ok {
		return d
	}
	return core.Infinity
}

// HasPath reports whether state was discovered by the search. States beyond
// an exploration bound report false even if a path exists in the unbounded
// space.
func (e *Engine[S, A]) HasPath(state S) bool {
	_, ok := e.distances[state]
	return ok
}

// FullPath repeatedly applies Step from state and returns the ordered
// sequence of (action, resulting state) until a goal is reached or no
// action is recorded. Reconstruction stops at a hard iteration cap; reaching
// it means the domain's generators are defective, and the steps accumulated
// so far are returned.
func (e *Engine[S, A]) FullPath(state S) []core.Step[S, A] {
	var path []core.Step[S, A]

	current := state
	for i := 0; i < maxPathSteps; i++ {
		if e.desc.IsGoal(current) {
			break
		}

		action, next, ok := e.Step(current)
		if !ok {
			break
		}

		path = append(path, core.Step[S, A]{Action: action, State: next})
		current = next
	}

	return path
}
