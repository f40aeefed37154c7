package localAuth

import (
	"io"
	"time"

	internalaudit "github.com/MrEthical07/localAuth/internal/audit"
)

// UserProfile is the account record returned by engine operations and held
// by the active session. ID and Email are fixed at registration; the
// remaining fields are mutable through [Engine.UpdateProfile]. The
// credential is never part of a profile.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterRequest is the input for [Engine.Register]. Email is stored as
// submitted (after trimming); only the directory key is lower-cased.
type RegisterRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// ProfileUpdate carries the mutable profile fields for
// [Engine.UpdateProfile]. Nil fields are left unchanged; there is no way
// to update ID, Email, or CreatedAt.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// String is a convenience for building ProfileUpdate literals.
func String(v string) *string {
	return &v
}

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
