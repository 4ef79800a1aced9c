// Package logging provides a minimal logging interface and adapters for policykit.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the engine and domains use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - PolicyLogger with contextual helpers and search-specific log methods
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	eng, err := engine.New(desc, func(o *engine.Options[S, A]) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
