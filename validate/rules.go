package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalid is the sentinel all validation failures unwrap to, so callers
// can branch with errors.Is without matching individual fields.
var ErrInvalid = errors.New("validation failed")

// MinPasswordLength is the default minimum accepted password length.
const MinPasswordLength = 6

// Error describes a single rule violation. Message is user-facing.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

func invalid(field, message string) error {
	return &Error{Field: field, Message: message}
}

var (
	// Two-part local@domain shape with a dotted domain. Deliberately loose;
	// real deliverability checks are out of scope for a local simulation.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits plus common formatting characters.
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

// Email checks that value is non-empty after trimming and matches the
// two-part email shape.
func Email(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return invalid("email", "Please enter your email address.")
	}
	if !emailPattern.MatchString(trimmed) {
		return invalid("email", "Please enter a valid email address.")
	}
	return nil
}

// Password checks that value is non-empty and at least minLength characters.
// Length is counted in bytes, matching what a form submits.
func Password(value string, minLength int) error {
	if minLength <= 0 {
		minLength = MinPasswordLength
	}
	if value == "" {
		return invalid("password", "Please enter a password.")
	}
	if len(value) < minLength {
		return invalid("password", fmt.Sprintf("Password must be at least %d characters long.", minLength))
	}
	return nil
}

// Confirmation checks that confirm equals password exactly.
func Confirmation(password, confirm string) error {
	if password != confirm {
		return invalid("confirmPassword", "Passwords do not match.")
	}
	return nil
}

// Phone checks the optional phone field: empty is valid, otherwise every
// character must be a digit, whitespace, hyphen, plus sign, or parenthesis.
func Phone(value string) error {
	if value == "" {
		return nil
	}
	if !phonePattern.MatchString(value) {
		return invalid("phone", "Please enter a valid phone number.")
	}
	return nil
}

// Registration applies the registration-form rules in priority order:
// first name, last name, email, password, confirmation. The first
// violation is returned; later fields are not inspected.
func Registration(firstName, lastName, email, password, confirm string, minPasswordLength int) error {
	if strings.TrimSpace(firstName) == "" {
		return invalid("firstName", "Please enter your first name.")
	}
	if strings.TrimSpace(lastName) == "" {
		return invalid("lastName", "Please enter your last name.")
	}
	if err := Email(email); err != nil {
		return err
	}
	if err := Password(password, minPasswordLength); err != nil {
		return err
	}
	return Confirmation(password, confirm)
}

// Login applies the login-form rules: email presence and shape, then a
// non-empty password. Password length is not re-checked at login; the
// stored credential decides.
func Login(email, password string) error {
	if err := Email(email); err != nil {
		return err
	}
	if password == "" {
		return invalid("password", "Please enter your password.")
	}
	return nil
}

// Profile applies the profile-edit rules in priority order: first name,
// last name, then the optional phone character set.
func Profile(firstName, lastName, phone string) error {
	if strings.TrimSpace(firstName) == "" {
		return invalid("firstName", "First name is required.")
	}
	if strings.TrimSpace(lastName) == "" {
		return invalid("lastName", "Last name is required.")
	}
	return Phone(phone)
}
