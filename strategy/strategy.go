package strategy

import "github.com/skoeber/policykit/core"

// Strategy defines the interface for search algorithms.
//
// Compute runs the search described by the descriptor exactly once and
// returns the discovered distances and parents. It must not retain or mutate
// the descriptor. Implementations are expected to be stateless so a single
// Strategy value can serve many descriptors.
type Strategy[S, A comparable] interface {
	// Name returns the strategy's identifier for logs and diagnostics.
	Name() string

	// Direction reports which generator the strategy traverses. The engine
	// uses this to pick the matching action-derivation scheme, independent
	// of the descriptor's own direction hint.
	Direction() core.Direction

	// Compute runs the search and returns distance and parent maps.
	Compute(desc *core.Descriptor[S, A]) (*core.Result[S, A], error)
}
