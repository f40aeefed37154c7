package localAuth

import (
	"context"

	"github.com/MrEthical07/localAuth/validate"
)

// Login establishes a session for an existing account. The lookup key is
// the normalized email; the credential comparison is an exact string
// match against the stored password.
//
// Login fails with [ErrAccountNotFound] when no entry matches and with
// [ErrInvalidCredential] on a password mismatch. Failures leave any
// existing session untouched.
func (e *Engine) Login(ctx context.Context, email, password string) (*UserProfile, error) {
	if e == nil || e.kv == nil {
		return nil, ErrEngineNotReady
	}
	start := e.now()
	defer e.observeOp(start)

	if !e.config.Validation.Disabled {
		if err := validate.Login(email, password); err != nil {
			e.metricInc(MetricLoginInvalidCredential)
			e.emitAudit(ctx, auditEventLoginFailure, false, "", email, err, func() map[string]string {
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

	entry, found, err := e.directory.lookup(ctx, email)
	if err != nil {
		e.metricInc(MetricStoreError)
		e.emitAudit(ctx, auditEventLoginFailure, false, "", email, err, nil)
		return nil, err
	}
	if !found {
		e.metricInc(MetricLoginNotFound)
		e.emitAudit(ctx, auditEventLoginFailure, false, "", email, ErrAccountNotFound, func() map[string]string {
			return map[string]string{"reason": "account_not_found"}
		})
		return nil, ErrAccountNotFound
	}

	if entry.Credential != password {
		e.metricInc(MetricLoginInvalidCredential)
		e.emitAudit(ctx, auditEventLoginFailure, false, entry.Profile.ID, email, ErrInvalidCredential, func() map[string]string {
			return map[string]string{"reason": "invalid_credential"}
		})
		return nil, ErrInvalidCredential
	}

	if err := e.setSessionLocked(ctx, entry.Profile); err != nil {
		e.metricInc(MetricStoreError)
		e.emitAudit(ctx, auditEventLoginFailure, false, entry.Profile.ID, email, err, func() map[string]string {
			return map[string]string{"reason": "session_persist"}
		})
		return nil, err
	}

	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, entry.Profile.ID, entry.Profile.Email, nil, nil)

	result := entry.Profile
	return &result, nil
}
