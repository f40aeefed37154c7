// Package audit provides the audit event model and sink implementations
// used by the engine's asynchronous audit dispatcher.
//
// # Architecture boundaries
//
// This package owns the Event shape and the built-in sinks (no-op,
// channel, JSON writer). Dispatch buffering and drop accounting live in
// the root package.
//
// # What this package must NOT do
//
//   - Import localAuth or any sibling package.
//   - Block the caller: sinks that can block must be driven through the
//     dispatcher, never called inline from engine operations.
package audit
