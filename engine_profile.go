package localAuth

import (
	"context"

	"github.com/MrEthical07/localAuth/validate"
)

// UpdateProfile merges the supplied fields into the authenticated user's
// directory entry and refreshes the session snapshot. Only first name,
// last name, and phone are reachable; ID, Email, and CreatedAt never
// change. Both the directory document and the session record are
// re-persisted on success.
//
// UpdateProfile fails with [ErrNotAuthenticated] when no session is
// active and with [ErrAccountNotFound] when the session's email no longer
// resolves in the directory (a stale session edited out-of-band).
func (e *Engine) UpdateProfile(ctx context.Context, update ProfileUpdate) (*UserProfile, error) {
	if e == nil || e.kv == nil {
		return nil, ErrEngineNotReady
	}
	start := e.now()
	defer e.observeOp(start)

	e.mu.Lock()
	current := e.current
	e.mu.Unlock()

	if current == nil {
		e.metricInc(MetricProfileUpdateFailure)
		e.emitAudit(ctx, auditEventProfileUpdateFailure, false, "", "", ErrNotAuthenticated, func() map[string]string {
			return map[string]string{"reason": "not_authenticated"}
		})
		return nil, ErrNotAuthenticated
	}

	if !e.config.Validation.Disabled {
		if err := e.validateUpdate(*current, update); err != nil {
			e.metricInc(MetricProfileUpdateFailure)
			e.emitAudit(ctx, auditEventProfileUpdateFailure, false, current.ID, current.Email, err, func() map[string]string {
				return map[string]string{"reason": "validation"}
			})
			return nil, err
		}
	}

	if err := e.simulateLatency(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Re-read under the lock; the session may have changed during the
	// latency suspension.
	if e.current == nil {
		e.metricInc(MetricProfileUpdateFailure)
		return nil, ErrNotAuthenticated
	}
	current = e.current

	entries, err := e.directory.load(ctx)
	if err != nil {
		e.metricInc(MetricStoreError)
		e.emitAudit(ctx, auditEventProfileUpdateFailure, false, current.ID, current.Email, err, nil)
		return nil, err
	}

	key := normalizeEmail(current.Email)
	entry, found := entries[key]
	if !found {
		e.metricInc(MetricProfileUpdateFailure)
		e.emitAudit(ctx, auditEventProfileUpdateFailure, false, current.ID, current.Email, ErrAccountNotFound, func() map[string]string {
			return map[string]string{"reason": "stale_session"}
		})
		return nil, ErrAccountNotFound
	}

	entry.Profile = merge(entry.Profile, update)
	entries[key] = entry

	if err := e.directory.save(ctx, entries); err != nil {
		e.metricInc(MetricStoreError)
		e.emitAudit(ctx, auditEventProfileUpdateFailure, false, current.ID, current.Email, err, nil)
		return nil, err
	}

	if err := e.setSessionLocked(ctx, entry.Profile); err != nil {
		e.metricInc(MetricStoreError)
		e.emitAudit(ctx, auditEventProfileUpdateFailure, false, current.ID, current.Email, err, func() map[string]string {
			return map[string]string{"reason": "session_persist"}
		})
		return nil, err
	}

	e.metricInc(MetricProfileUpdateSuccess)
	e.emitAudit(ctx, auditEventProfileUpdateSuccess, true, entry.Profile.ID, entry.Profile.Email, nil, nil)

	result := entry.Profile
	return &result, nil
}

// validateUpdate checks the post-merge values so an update that omits a
// field is judged against the value it keeps, not against an empty string.
func (e *Engine) validateUpdate(current UserProfile, update ProfileUpdate) error {
	merged := merge(current, update)
	return validate.Profile(merged.FirstName, merged.LastName, merged.Phone)
}
