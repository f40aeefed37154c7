package localAuth

import (
	"context"
	"sync"
	"time"

	"github.com/MrEthical07/localAuth/store"
)

// Engine is the account core: it owns the user directory, credential
// checks, and the single active session. Construct it through
// [Builder.Build]; a zero Engine is not usable.
//
// State machine per engine: unauthenticated, or authenticated with a
// profile snapshot. Register and Login success transition to
// authenticated, Logout to unauthenticated, UpdateProfile success
// refreshes the snapshot. Any failed operation leaves state unchanged.
type Engine struct {
	config    Config
	kv        store.KV
	directory *userDirectory
	codec     sessionCodec
	audit     *auditDispatcher
	metrics   *Metrics
	now       func() time.Time
	newID     func() string

	mu      sync.Mutex
	current *UserProfile
}

// Close stops the audit dispatcher, draining buffered events. The engine
// must not be used after Close.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports how many audit events were discarded because the
// dispatcher buffer was full or shutting down.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of the engine's metrics.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) observeOp(start time.Time) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Observe(MetricOpLatency, e.now().Sub(start))
}

// CurrentSession returns a copy of the authenticated profile, or nil when
// no session is active. It reads in-memory state only and never suspends;
// consumers use it to pick authenticated versus guest rendering.
func (e *Engine) CurrentSession() *UserProfile {
	if e == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return nil
	}
	profile := *e.current
	return &profile
}

// simulateLatency is the single artificial suspension point of each
// mutating operation: a fixed delay standing in for the network round-trip
// of the backend this engine simulates. It runs before any store access.
func (e *Engine) simulateLatency(ctx context.Context) error {
	if !e.config.Latency.Enabled || e.config.Latency.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(e.config.Latency.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// setSessionLocked persists the session record and updates the in-memory
// session. Callers hold e.mu. On persist failure the in-memory session is
// left unchanged.
func (e *Engine) setSessionLocked(ctx context.Context, profile UserProfile) error {
	raw, err := e.codec.encode(profile)
	if err != nil {
		return err
	}
	if err := e.kv.Set(ctx, e.config.Store.SessionKey, raw); err != nil {
		return err
	}
	e.current = &profile
	return nil
}

// rehydrate restores the persisted session at engine start. A missing,
// unreadable, or corrupt record leaves the engine unauthenticated; with
// StrictRehydration the persisted email must also still resolve to the
// same account in the directory, and the profile snapshot is refreshed
// from the directory entry.
func (e *Engine) rehydrate(ctx context.Context) {
	raw, ok, err := e.kv.Get(ctx, e.config.Store.SessionKey)
	if err != nil {
		e.metricInc(MetricStoreError)
		return
	}
	if !ok {
		return
	}

	profile, err := e.codec.decode(raw)
	if err != nil {
		e.metricInc(MetricSessionRehydrationRejected)
		e.emitAudit(ctx, auditEventSessionRehydrationRejected, false, "", "", err, func() map[string]string {
			return map[string]string{"reason": "corrupt_record"}
		})
		return
	}

	if e.config.Session.StrictRehydration {
		entry, found, err := e.directory.lookup(ctx, profile.Email)
		if err != nil || !found || entry.Profile.ID != profile.ID {
			e.metricInc(MetricSessionRehydrationRejected)
			e.emitAudit(ctx, auditEventSessionRehydrationRejected, false, profile.ID, profile.Email, err, func() map[string]string {
				return map[string]string{"reason": "stale_session"}
			})
			_ = e.kv.Remove(ctx, e.config.Store.SessionKey)
			return
		}
		profile = entry.Profile
	}

	e.current = &profile
	e.metricInc(MetricSessionRehydrated)
	e.emitAudit(ctx, auditEventSessionRehydrated, true, profile.ID, profile.Email, nil, nil)
}
