package store

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the backing store cannot be reached or
// cannot complete the request. It never means "key absent"; absence is
// reported through Get's boolean.
var ErrUnavailable = errors.New("store unavailable")

// KV is the durable key-value store the engine persists into. Implementations
// must treat values as opaque strings and must make each call atomic with
// respect to other calls on the same instance.
//
// Remove on an absent key is a no-op, not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
