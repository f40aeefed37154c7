package localAuth

import (
	"context"
)

// Logout clears the in-memory session and removes the persisted session
// record. It is idempotent: calling it with no active session is a no-op,
// and calling it twice has the same observable effect as calling it once.
// Unlike the other mutating operations it carries no simulated latency,
// matching the instantaneous logout of the browser flow.
func (e *Engine) Logout(ctx context.Context) error {
	if e == nil || e.kv == nil {
		return ErrEngineNotReady
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var userID, email string
	if e.current != nil {
		userID, email = e.current.ID, e.current.Email
	}
	e.current = nil

	if err := e.kv.Remove(ctx, e.config.Store.SessionKey); err != nil {
		e.metricInc(MetricStoreError)
		return err
	}

	e.metricInc(MetricLogout)
	e.emitAudit(ctx, auditEventLogout, true, userID, email, nil, nil)
	return nil
}
