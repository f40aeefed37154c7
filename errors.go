package localAuth

import (
	"errors"

	"github.com/MrEthical07/localAuth/validate"
)

// ErrValidation is the sentinel every validation failure unwraps to. It is
// [validate.ErrInvalid] re-exported so engine callers can branch without
// importing the validate package.
var ErrValidation = validate.ErrInvalid

var (
	// ErrDuplicateAccount is returned by Register when the normalized email
	// already has a directory entry.
	ErrDuplicateAccount = errors.New("an account with this email already exists")
	// ErrAccountNotFound is returned by Login when no directory entry
	// matches the normalized email.
	ErrAccountNotFound = errors.New("no account found with this email address")
	// ErrInvalidCredential is returned by Login when the stored credential
	// does not exactly match the supplied password.
	ErrInvalidCredential = errors.New("incorrect password")
	// ErrNotAuthenticated is returned by UpdateProfile when no session is
	// active.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrStoreCorrupt is returned when a persisted record cannot be decoded.
	// The failing operation aborts without writing; prior state is preserved.
	ErrStoreCorrupt = errors.New("persisted record corrupt")
	// ErrEngineNotReady is returned when an operation is invoked on an
	// engine that was not constructed through [Builder.Build].
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrBuilderReused is returned by Build on a builder that already
	// produced an engine.
	ErrBuilderReused = errors.New("builder already used")
)
