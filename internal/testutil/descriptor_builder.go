package testutil

import "github.com/skoeber/policykit/core"

// DescriptorBuilder provides a fluent helper for constructing descriptors in
// tests. Example:
//
//	desc := NewDescriptorBuilder[int, string]().
//		Goal(func(s int) bool { return s == 10 }).
//		Successors(succ).
//		Seeds(1).
//		MaxStates(100).
//		Build()
//
// Chain only the parts you need; direction defaults to forward and the cost
// model to uniform.
type DescriptorBuilder[S, A comparable] struct {
	desc core.Descriptor[S, A]
}

// NewDescriptorBuilder creates a builder with forward/uniform defaults.
func NewDescriptorBuilder[S, A comparable]() *DescriptorBuilder[S, A] {
	return &DescriptorBuilder[S, A]{desc: core.Descriptor[S, A]{
		Direction:  core.DirectionForward,
		CostModel:  core.CostUniform,
		DomainName: "test",
	}}
}

// Goal sets the goal predicate (chainable).
func (b *DescriptorBuilder[S, A]) Goal(fn core.GoalFunc[S]) *DescriptorBuilder[S, A] {
	b.desc.IsGoal = fn
	return b
}

// Successors sets the successor generator (chainable).
func (b *DescriptorBuilder[S, A]) Successors(fn core.SuccessorFunc[S, A]) *DescriptorBuilder[S, A] {
	b.desc.Successors = fn
	return b
}

// Predecessors sets the predecessor generator (chainable).
func (b *DescriptorBuilder[S, A]) Predecessors(fn core.PredecessorFunc[S, A]) *DescriptorBuilder[S, A] {
	b.desc.Predecessors = fn
	return b
}

// Seeds sets the seed states (chainable).
func (b *DescriptorBuilder[S, A]) Seeds(seeds ...S) *DescriptorBuilder[S, A] {
	b.desc.Seeds = seeds
	return b
}

// Direction sets the search direction (chainable).
func (b *DescriptorBuilder[S, A]) Direction(d core.Direction) *DescriptorBuilder[S, A] {
	b.desc.Direction = d
	return b
}

// CostModel sets the cost-model hint (chainable).
func (b *DescriptorBuilder[S, A]) CostModel(m core.CostModel) *DescriptorBuilder[S, A] {
	b.desc.CostModel = m
	return b
}

// MaxStates sets the expansion bound (chainable).
func (b *DescriptorBuilder[S, A]) MaxStates(n int) *DescriptorBuilder[S, A] {
	b.desc.MaxStates = n
	return b
}

// MaxCost sets the distance bound (chainable).
func (b *DescriptorBuilder[S, A]) MaxCost(n int) *DescriptorBuilder[S, A] {
	b.desc.MaxCost = n
	return b
}

// Name sets the domain name (chainable).
func (b *DescriptorBuilder[S, A]) Name(name string) *DescriptorBuilder[S, A] {
	b.desc.DomainName = name
	return b
}

// Build returns the assembled descriptor.
func (b *DescriptorBuilder[S, A]) Build() *core.Descriptor[S, A] {
	return &b.desc
}
