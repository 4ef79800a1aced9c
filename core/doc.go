// Package core provides the foundational types and contracts shared across
// policykit. It defines the central abstractions for:
//
//   - Descriptor (immutable, validated description of a discrete state space)
//   - Domain (the capability contract problem adapters satisfy)
//   - Edges, costs, search directions and cost-model hints
//   - Result (distance/parent maps produced by a search strategy)
//   - The error taxonomy (ConfigurationError, CostDomainError)
//
// The package intentionally keeps algorithmic concerns (search, action
// derivation, querying) out; those live in the strategy and engine packages
// which both consume the types defined here.
package core
