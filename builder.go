package localAuth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrEthical07/localAuth/store"
)

// Builder assembles an [Engine]. A builder is single-use: Build succeeds
// at most once.
type Builder struct {
	config    Config
	kv        store.KV
	auditSink AuditSink
	clock     func() time.Time
	idGen     func() string

	built bool
}

// New creates a builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStore sets the durable key-value store the engine persists into.
// Required.
func (b *Builder) WithStore(kv store.KV) *Builder {
	b.kv = kv
	return b
}

// WithAuditSink sets the sink that receives audit events when auditing is
// enabled.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithClock overrides the engine's time source. Tests use this for
// deterministic creation timestamps.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.clock = now
	return b
}

// WithIDGenerator overrides profile ID generation. The default produces
// random UUIDs.
func (b *Builder) WithIDGenerator(gen func() string) *Builder {
	b.idGen = gen
	return b
}

// WithMetricsEnabled toggles metric collection.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithSimulatedLatency sets the per-operation artificial delay. A zero
// duration disables the suspension entirely.
func (b *Builder) WithSimulatedLatency(d time.Duration) *Builder {
	b.config.Latency.Enabled = d > 0
	b.config.Latency.Delay = d
	return b
}

// Build validates the configuration, constructs the engine, and rehydrates
// the persisted session if one exists and is well-formed. A malformed
// session record leaves the engine unauthenticated; it never fails Build.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, ErrBuilderReused
	}

	cfg := cloneConfig(b.config)

	if b.kv == nil {
		return nil, errors.New("store required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	codec, err := newSessionCodec(cfg.Session)
	if err != nil {
		return nil, err
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}
	idGen := b.idGen
	if idGen == nil {
		idGen = uuid.NewString
	}

	engine := &Engine{
		config: cfg,
		kv:     b.kv,
		directory: &userDirectory{
			kv:  b.kv,
			key: cfg.Store.UsersKey,
		},
		codec:   codec,
		audit:   newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics: NewMetrics(cfg.Metrics),
		now:     clock,
		newID:   idGen,
	}

	engine.rehydrate(context.Background())

	b.built = true
	return engine, nil
}
