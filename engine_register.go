package localAuth

import (
	"context"
	"strings"

	"github.com/MrEthical07/localAuth/validate"
)

// Register creates a new account and signs it in, mirroring the browser
// flow where registration auto-logs-in. The directory key is the
// normalized (trimmed, lower-cased) email; the stored profile keeps the
// email as submitted. On success the new session is persisted and the
// created profile returned; the credential is never part of the result.
//
// Register fails with [ErrDuplicateAccount] when the normalized email
// already has an entry, with a [validate.Error] when defensive validation
// rejects the input, and with [ErrStoreCorrupt] when the users document
// cannot be decoded (in which case nothing is written).
func (e *Engine) Register(ctx context.Context, req RegisterRequest) (*UserProfile, error) {
	if e == nil || e.kv == nil {
		return nil, ErrEngineNotReady
	}
	start := e.now()
	defer e.observeOp(start)

	if !e.config.Validation.Disabled {
		// Confirmation is a form-level rule; the engine receives a single
		// password field, so it enforces everything up to that rule.
		if err := validate.Registration(req.FirstName, req.LastName, req.Email, req.Password, req.Password, e.config.Validation.MinPasswordLength); err != nil {
			e.metricInc(MetricRegistrationInvalid)
			e.emitAudit(ctx, auditEventRegistrationFailure, false, "", req.Email, err, func() map[string]string {
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

	entries, err := e.directory.load(ctx)
	if err != nil {
		e.metricInc(MetricStoreError)
		e.emitAudit(ctx, auditEventRegistrationFailure, false, "", req.Email, err, nil)
		return nil, err
	}

	key := normalizeEmail(req.Email)
	if _, exists := entries[key]; exists {
		e.metricInc(MetricRegistrationDuplicate)
		e.emitAudit(ctx, auditEventRegistrationDuplicate, false, "", req.Email, ErrDuplicateAccount, nil)
		return nil, ErrDuplicateAccount
	}

	profile := UserProfile{
		ID:        e.newID(),
		Email:     strings.TrimSpace(req.Email),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		CreatedAt: e.now().UTC(),
	}

	entries[key] = directoryEntry{Profile: profile, Credential: req.Password}
	if err := e.directory.save(ctx, entries); err != nil {
		e.metricInc(MetricStoreError)
		e.emitAudit(ctx, auditEventRegistrationFailure, false, "", req.Email, err, nil)
		return nil, err
	}

	if err := e.setSessionLocked(ctx, profile); err != nil {
		e.metricInc(MetricStoreError)
		e.emitAudit(ctx, auditEventRegistrationFailure, false, profile.ID, profile.Email, err, func() map[string]string {
			return map[string]string{"reason": "session_persist"}
		})
		return nil, err
	}

	e.metricInc(MetricRegistrationSuccess)
	e.emitAudit(ctx, auditEventRegistrationSuccess, true, profile.ID, profile.Email, nil, nil)

	result := profile
	return &result, nil
}
