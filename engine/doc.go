// Package engine implements the policy engine at the heart of policykit.
//
// An Engine consumes exactly one core.Descriptor, validates it, selects a
// search strategy (automatically from the descriptor's cost-model and
// direction hints, or an explicit override), runs the search exactly once
// during construction, and derives a deterministic next-action map. After
// construction the engine is immutable: Step, Distance, HasPath and FullPath
// may be called indefinitely, concurrently and in any order, provided the
// domain's callbacks are side-effect free and deterministic (the engine
// re-invokes them at query time).
//
// The whole search runs synchronously inside New. Callers that need
// responsiveness must run construction off any latency-sensitive path and
// pre-size the descriptor's MaxStates/MaxCost bounds; there is no mid-flight
// cancellation.
//
// Unreachable, unknown or bound-excluded states are not errors: queries
// degrade gracefully (no action, Infinity, false). Replanning after the
// domain's state space changes requires constructing a new Engine from a
// fresh descriptor.
package engine
