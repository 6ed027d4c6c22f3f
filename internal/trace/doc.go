// Package trace provides the tracing subsystem of jsmin.
//
// It records driver phases, optimizer iterations, per-file processing and
// individual rewrites (such as an inlined parameter) to help diagnose what the
// minifier did and where it spent its time.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	jsmin minify --trace=- --trace-level=debug app.js
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - NopTracer: Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer for crash dumps
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Module-level events
//   - LevelDebug: Everything including AST nodes
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: Top-level CLI operations
//   - ScopePass: Pipeline phases and optimizer iterations
//   - ScopeModule: Per-file processing
//   - ScopeNode: Individual rewrites (trace.Point)
//
// # Context Propagation
//
// Tracers are propagated through the compilation pipeline via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
