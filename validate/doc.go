// Package validate holds the pure form-validation rules applied before
// account operations reach the engine: required names, a two-part email
// shape, password length, confirmation equality, and the permitted phone
// character set.
//
// Rules are synchronous, side-effect-free, and report the first violation
// in a fixed priority order rather than aggregating. Messages are written
// for direct display to the end user.
package validate
