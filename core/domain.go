package core

// Domain is the capability contract satisfied by problem adapters. It is the
// engine's only boundary: any value that can build a Descriptor is a Domain,
// no shared ancestor required.
//
// Implementations must uphold the Descriptor callback contract: states and
// actions are comparable values, generators are pure, deterministic and
// re-invocable, and the goal predicate is total.
type Domain[S, A comparable] interface {
	// BuildDescriptor produces the declarative statement of the problem.
	BuildDescriptor() *Descriptor[S, A]
}
