package localAuth

import (
	"errors"
	"time"

	"github.com/MrEthical07/localAuth/validate"
)

// Config defines a public type used by localAuth APIs.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable.
type Config struct {
	Store      StoreConfig
	Session    SessionConfig
	Latency    LatencyConfig
	Validation ValidationConfig
	Audit      AuditConfig
	Metrics    MetricsConfig
}

/*
====================================
STORE CONFIG
====================================
*/

// StoreConfig names the two logical records in the key-value store. The
// defaults match the browser application this engine stands in for.
type StoreConfig struct {
	UsersKey   string
	SessionKey string
}

/*
====================================
SESSION CONFIG
====================================
*/

// Session record encodings accepted by [SessionConfig.Encoding].
const (
	SessionEncodingJSON = "json"
	SessionEncodingJWT  = "jwt"
)

// SessionConfig controls how the current-session record is serialized and
// how it is treated on rehydration.
//
// With SessionEncodingJWT the record is an HS256-signed token carrying the
// profile, and a tampered record is rejected as corrupt on rehydration.
// StrictRehydration additionally requires the persisted session's email to
// still resolve in the directory; otherwise the stale session is dropped
// and the engine starts unauthenticated.
type SessionConfig struct {
	Encoding          string // "json" (default) or "jwt"
	SigningKey        []byte // required for "jwt"
	StrictRehydration bool
}

/*
====================================
LATENCY CONFIG
====================================
*/

// LatencyConfig models the network round-trip of the simulated backend:
// one suspension of Delay per mutating operation, before any store access.
// Tests disable it for determinism.
type LatencyConfig struct {
	Enabled bool
	Delay   time.Duration
}

// ValidationConfig controls the engine's defensive input validation.
// Disabled turns it off for callers that validate at the form layer and
// want the raw directory semantics.
type ValidationConfig struct {
	Disabled          bool
	MinPasswordLength int
}

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process metrics counters.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns the configuration the original browser application
// ships with: JSON session records under "current_user", the users document
// under "app_users", 500ms simulated latency, validation on, audit and
// metrics off.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			UsersKey:   "app_users",
			SessionKey: "current_user",
		},
		Session: SessionConfig{
			Encoding: SessionEncodingJSON,
		},
		Latency: LatencyConfig{
			Enabled: true,
			Delay:   500 * time.Millisecond,
		},
		Validation: ValidationConfig{
			MinPasswordLength: validate.MinPasswordLength,
		},
		Audit: AuditConfig{
			BufferSize: 64,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Session.SigningKey != nil {
		out.Session.SigningKey = append([]byte(nil), cfg.Session.SigningKey...)
	}
	return out
}

// Validate checks the configuration for contradictions before the engine
// is built.
func (c Config) Validate() error {
	if c.Store.UsersKey == "" {
		return errors.New("Store.UsersKey must not be empty")
	}
	if c.Store.SessionKey == "" {
		return errors.New("Store.SessionKey must not be empty")
	}
	if c.Store.UsersKey == c.Store.SessionKey {
		return errors.New("Store.UsersKey and Store.SessionKey must differ")
	}

	switch c.Session.Encoding {
	case SessionEncodingJSON:
	case SessionEncodingJWT:
		if len(c.Session.SigningKey) == 0 {
			return errors.New("Session.SigningKey required for jwt encoding")
		}
	default:
		return errors.New("Session.Encoding must be \"json\" or \"jwt\"")
	}

	if c.Latency.Delay < 0 {
		return errors.New("Latency.Delay must not be negative")
	}
	if c.Validation.MinPasswordLength < 0 {
		return errors.New("Validation.MinPasswordLength must not be negative")
	}
	return nil
}
