// Package store defines the durable key-value abstraction the engine
// persists into, plus three drivers: an in-memory map for tests, a JSON
// file for single-machine persistence, and Redis.
//
// # Design
//
// The engine treats the store as a browser's localStorage: opaque string
// values under string keys, no TTLs, no transactions. Whole-document
// consistency is the engine's responsibility; drivers only guarantee that
// a single Get/Set/Remove is atomic.
//
// # What this package must NOT do
//
//   - Interpret stored values. Serialization belongs to the engine.
//   - Import localAuth or any sibling package.
package store
