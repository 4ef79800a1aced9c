// Package policykit computes reusable shortest-cost policies over
// declaratively described discrete state spaces: a mapping from any state to
// the locally optimal next action toward a goal, computed once and queried
// many times without re-running a search.
//
// Most applications interact with this package by:
//  1. Implementing core.Domain (a single BuildDescriptor method)
//  2. Calling FromDomain to validate, search and derive the policy
//  3. Querying the returned engine (Step, Distance, HasPath, FullPath)
//
// The façade delegates to engine.New while keeping the common
// domain-to-policy wiring concise. Construction runs the full search
// synchronously; a ready engine is immutable and safe for concurrent
// readers.
package policykit

import (
	"github.com/skoeber/policykit/core"
	"github.com/skoeber/policykit/engine"
)

// FromDomain builds a descriptor from the domain and computes its policy.
// Options are forwarded to engine.New, so callers can supply a logger or an
// explicit strategy override:
//
//	eng, err := policykit.FromDomain(dom, func(o *engine.Options[S, A]) {
//		o.Logger = logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	})
func FromDomain[S, A comparable](d core.Domain[S, A], optFns ...func(*engine.Options[S, A])) (*engine.Engine[S, A], error) {
	return engine.New(d.BuildDescriptor(), optFns...)
}
