package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDescriptor() *Descriptor[int, string] {
	return &Descriptor[int, string]{
		IsGoal: func(s int) bool { return s == 0 },
		Successors: func(s int) []Edge[int, string] {
			return []Edge[int, string]{{State: s + 1, Action: "inc", Cost: 1}}
		},
		Predecessors: func(s int) []Edge[int, string] {
			return []Edge[int, string]{{State: s - 1, Action: "inc", Cost: 1}}
		},
		Seeds:      []int{0},
		Direction:  DirectionForward,
		CostModel:  CostUniform,
		DomainName: "test",
	}
}

func TestDescriptor_ValidateOK(t *testing.T) {
	desc := validDescriptor()
	require.NoError(t, desc.Validate())

	// Validate has no side effects and is safe to call repeatedly.
	require.NoError(t, desc.Validate())
}

func TestDescriptor_ValidateRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Descriptor[int, string])
		rule   string
	}{
		{
			name:   "missing goal predicate",
			mutate: func(d *Descriptor[int, string]) { d.IsGoal = nil },
			rule:   "goal",
		},
		{
			name:   "missing successor generator",
			mutate: func(d *Descriptor[int, string]) { d.Successors = nil },
			rule:   "successors",
		},
		{
			name:   "unknown direction",
			mutate: func(d *Descriptor[int, string]) { d.Direction = "sideways" },
			rule:   "direction",
		},
		{
			name: "backward without predecessors",
			mutate: func(d *Descriptor[int, string]) {
				d.Direction = DirectionBackward
				d.Predecessors = nil
			},
			rule: "predecessors",
		},
		{
			name: "bidirectional without predecessors",
			mutate: func(d *Descriptor[int, string]) {
				d.Direction = DirectionBidirectional
				d.Predecessors = nil
			},
			rule: "predecessors",
		},
		{
			name:   "empty seed set",
			mutate: func(d *Descriptor[int, string]) { d.Seeds = nil },
			rule:   "seeds",
		},
		{
			name:   "unknown cost model",
			mutate: func(d *Descriptor[int, string]) { d.CostModel = "negotiable" },
			rule:   "cost_model",
		},
		{
			name:   "negative max states",
			mutate: func(d *Descriptor[int, string]) { d.MaxStates = -1 },
			rule:   "max_states",
		},
		{
			name:   "negative max cost",
			mutate: func(d *Descriptor[int, string]) { d.MaxCost = -5 },
			rule:   "max_cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := validDescriptor()
			tt.mutate(desc)

			err := desc.Validate()
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.rule, cfgErr.Rule)
		})
	}
}

func TestDescriptor_Defaults(t *testing.T) {
	desc := validDescriptor()
	desc.Direction = ""
	desc.CostModel = ""

	require.NoError(t, desc.Validate())
	assert.Equal(t, DirectionForward, desc.EffectiveDirection())
	assert.Equal(t, CostUniform, desc.EffectiveCostModel())
}
