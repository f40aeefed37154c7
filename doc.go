// Package localAuth provides a client-side account management engine that
// simulates a backend against a local key-value store: user registration,
// credential checks, a single persisted session, and profile mutation.
//
// It is the account core of a browser-style demo application. All state
// lives in two records of an injected [store.KV] (a user directory document
// and a current-session record), so the same engine runs against an
// in-memory map, a JSON file, or Redis. Each mutating operation suspends
// once for a configurable simulated network latency before touching the
// store, mirroring the request round-trip the engine stands in for.
//
// # Architecture boundaries
//
// localAuth is the public surface. It exposes [Engine], [Builder], [Config],
// sentinel errors, and value types (UserProfile, MetricsSnapshot, audit
// sinks). Form-level validation rules live in validate/ and storage drivers
// in store/; internal coordination such as audit dispatch lives under
// internal/ and is never exported.
//
// # What this package must NOT do
//
//   - Talk to a real network or identity provider. The engine is a local
//     simulation; the only I/O is the injected store.
//   - Hash or otherwise protect credentials. Passwords are stored as
//     submitted. This is a demo store, not a security boundary.
//   - Track more than one session. The engine models a single browser tab
//     with a single current user.
//
// # Consistency contract
//
// Directory writes are whole-document: every mutation reads the full users
// record, applies the change, and writes the full record back. Engine
// methods serialize their read-mutate-write section behind a mutex, so
// concurrent callers degrade to last-write-wins rather than corruption.
package localAuth
