package localAuth

import (
	"context"
)

const (
	auditEventRegistrationSuccess        = "registration_success"
	auditEventRegistrationFailure        = "registration_failure"
	auditEventRegistrationDuplicate      = "registration_duplicate"
	auditEventLoginSuccess               = "login_success"
	auditEventLoginFailure               = "login_failure"
	auditEventLogout                     = "logout"
	auditEventProfileUpdateSuccess       = "profile_update_success"
	auditEventProfileUpdateFailure       = "profile_update_failure"
	auditEventSessionRehydrated          = "session_rehydrated"
	auditEventSessionRehydrationRejected = "session_rehydration_rejected"
)

// emitAudit queues an audit event when auditing is enabled. metadata is a
// closure so callers pay for map construction only when an event is
// actually emitted.
func (e *Engine) emitAudit(ctx context.Context, eventType string, success bool, userID, email string, opErr error, metadata func() map[string]string) {
	if e == nil || e.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: e.now(),
		EventType: eventType,
		UserID:    userID,
		Email:     email,
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	e.audit.Emit(ctx, event)
}
