package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skoeber/policykit/core"
	"github.com/skoeber/policykit/internal/testutil"
	"github.com/skoeber/policykit/strategy"
)

// MockStrategy for verifying strategy override and selection behavior.
type MockStrategy struct {
	mock.Mock
	direction core.Direction
}

func (m *MockStrategy) Name() string { return "mock" }

func (m *MockStrategy) Direction() core.Direction { return m.direction }

func (m *MockStrategy) Compute(desc *core.Descriptor[int, string]) (*core.Result[int, string], error) {
	args := m.Called(desc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Result[int, string]), args.Error(1)
}

func TestEngine_InvalidDescriptorFailsConstruction(t *testing.T) {
	desc := testutil.NewDescriptorBuilder[int, string]().
		Goal(func(s int) bool { return s == 1 }).
		Successors(func(s int) []core.Edge[int, string] { return nil }).
		Direction(core.DirectionBackward).
		Seeds(1).
		Build()

	eng, err := New(desc)
	require.Error(t, err)
	assert.Nil(t, eng, "no partial engine from a failed construction")

	var cfgErr *core.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "predecessors", cfgErr.Rule)
}

func TestEngine_AutoSelectsVariantByDirection(t *testing.T) {
	forward, err := New(testutil.IncDouble(1, 10, 100))
	require.NoError(t, err)
	assert.Equal(t, "zero-one-bfs-forward", forward.StrategyName())

	backward, err := New(testutil.Line(5))
	require.NoError(t, err)
	assert.Equal(t, "zero-one-bfs-backward", backward.StrategyName())
}

func TestEngine_ExplicitStrategyBypassesSelection(t *testing.T) {
	// A backward descriptor that auto-selection would run backward; the
	// override must be used unconditionally instead.
	desc := testutil.Line(3)

	res := core.NewResult[int, string]()
	res.Distances[3] = 0

	strat := &MockStrategy{direction: core.DirectionBackward}
	strat.On("Compute", desc).Return(res, nil)

	eng, err := New(desc, func(o *Options[int, string]) { o.Strategy = strat })
	require.NoError(t, err)

	assert.Equal(t, "mock", eng.StrategyName())
	strat.AssertNumberOfCalls(t, "Compute", 1)
}

func TestEngine_BackwardOverrideWithoutPredecessorsErrors(t *testing.T) {
	// Forward descriptors validate without a predecessor generator, so an
	// explicit backward override is only caught inside the strategy. It must
	// surface as a configuration error, not a nil dereference.
	desc := testutil.IncDouble(1, 10, 100)

	eng, err := New(desc, func(o *Options[int, string]) {
		o.Strategy = strategy.NewZeroOneBFSBackward[int, string]()
	})
	require.Error(t, err)
	assert.Nil(t, eng)

	var cfgErr *core.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "predecessors", cfgErr.Rule)
}

func TestEngine_SearchErrorAbortsConstruction(t *testing.T) {
	desc := testutil.Line(3)

	strat := &MockStrategy{direction: core.DirectionBackward}
	strat.On("Compute", desc).Return(nil, core.NewCostDomainError(1, "x", 2, 7))

	eng, err := New(desc, func(o *Options[int, string]) { o.Strategy = strat })
	require.Error(t, err)
	assert.Nil(t, eng)

	var costErr *core.CostDomainError
	require.True(t, errors.As(err, &costErr))
}

func TestEngine_ForwardEndToEnd(t *testing.T) {
	eng, err := New(testutil.IncDouble(1, 10, 100))
	require.NoError(t, err)

	assert.Equal(t, core.Cost(4), eng.Distance(10))

	path := eng.FullPath(1)
	require.Len(t, path, 4)
	assert.Equal(t, 10, path[len(path)-1].State, "path must end at the goal")

	// Each step must follow an edge the generator actually yields.
	current := 1
	for _, step := range path {
		action, next, ok := eng.Step(current)
		require.True(t, ok)
		assert.Equal(t, step.Action, action)
		assert.Equal(t, step.State, next)
		current = next
	}
}

func TestEngine_BackwardShortestPathConsistency(t *testing.T) {
	desc := testutil.Line(6)
	eng, err := New(desc)
	require.NoError(t, err)

	// For every finite-distance non-goal state there is a successor n with
	// dist(n) + cost == dist(s), and Step returns that successor's action.
	for s := 0; s < 6; s++ {
		dist := eng.Distance(s)
		require.NotEqual(t, core.Infinity, dist)

		action, next, ok := eng.Step(s)
		require.True(t, ok, "state %d", s)
		assert.Equal(t, "fwd", action)
		assert.Equal(t, eng.Distance(next)+1, dist)
	}
}

func TestEngine_UnitCostPathLengthEqualsDistance(t *testing.T) {
	eng, err := New(testutil.Line(9))
	require.NoError(t, err)

	for s := 0; s <= 9; s++ {
		assert.Equal(t, int(eng.Distance(s)), len(eng.FullPath(s)), "state %d", s)
	}
}

func TestEngine_StepAtGoal(t *testing.T) {
	eng, err := New(testutil.Line(4))
	require.NoError(t, err)

	action, state, ok := eng.Step(4)
	assert.False(t, ok)
	assert.Equal(t, 4, state, "goal state returned unchanged")
	assert.Empty(t, action)
	assert.Empty(t, eng.FullPath(4))
}

func TestEngine_UnknownStateDegradesGracefully(t *testing.T) {
	eng, err := New(testutil.Line(4))
	require.NoError(t, err)

	assert.Equal(t, core.Infinity, eng.Distance(42))
	assert.False(t, eng.HasPath(42))

	_, state, ok := eng.Step(42)
	assert.False(t, ok)
	assert.Equal(t, 42, state)
	assert.Empty(t, eng.FullPath(42))
}

func TestEngine_TruncationDegradesCompleteness(t *testing.T) {
	// The goal needs two expansions but the bound allows one: the goal must
	// be reported unreachable without any error.
	desc := testutil.Line(2)
	desc.MaxStates = 1

	eng, err := New(desc)
	require.NoError(t, err)

	assert.True(t, eng.Truncated())
	assert.Equal(t, 1, eng.Expanded())
	assert.False(t, eng.HasPath(0), "state beyond the explored fringe")
	assert.Equal(t, core.Infinity, eng.Distance(0))

	// Same trade-off in forward orientation: the goal 3 exists in the
	// unbounded space but not in the explored fringe.
	forward, err := New(testutil.IncDouble(1, 3, 1))
	require.NoError(t, err)
	assert.False(t, forward.HasPath(3))
}

func TestEngine_QueriesAreIdempotent(t *testing.T) {
	eng, err := New(testutil.IncDouble(1, 10, 100))
	require.NoError(t, err)

	firstDist := eng.Distance(10)
	firstPath := eng.FullPath(1)
	for i := 0; i < 3; i++ {
		assert.Equal(t, firstDist, eng.Distance(10))
		assert.Equal(t, firstPath, eng.FullPath(1))

		action, next, ok := eng.Step(1)
		require.True(t, ok)
		assert.Equal(t, firstPath[0].Action, action)
		assert.Equal(t, firstPath[0].State, next)
	}
}

func TestEngine_FullPathCapStopsDefectiveDomains(t *testing.T) {
	// A manufactured result whose next actions cycle between two states.
	// A correctly computed policy cannot do this; the cap must still stop it.
	desc := testutil.NewDescriptorBuilder[int, string]().
		Goal(func(s int) bool { return s == 99 }).
		Successors(func(s int) []core.Edge[int, string] {
			return []core.Edge[int, string]{{State: 3 - s, Action: "swap", Cost: 0}}
		}).
		Predecessors(func(s int) []core.Edge[int, string] { return nil }).
		Seeds(1).
		Direction(core.DirectionBackward).
		Build()

	res := core.NewResult[int, string]()
	res.Distances[1] = 1
	res.Distances[2] = 1

	strat := &MockStrategy{direction: core.DirectionBackward}
	strat.On("Compute", desc).Return(res, nil)

	eng, err := New(desc, func(o *Options[int, string]) { o.Strategy = strat })
	require.NoError(t, err)

	path := eng.FullPath(1)
	assert.Len(t, path, maxPathSteps)
}
