package service

import (
	"errors"
	"fmt"
)

// ErrAuthInProgress is returned when SignIn, SignUp, or RestoreSession is
// called while another of those calls is still in flight. Overlapping auth
// attempts indicate a UI bug, so they are rejected rather than coalesced.
var ErrAuthInProgress = errors.New("authentication already in progress")

// ErrSignInCanceled is returned when a sign-in completes after the user
// signed out mid-flight. The result is discarded instead of resurrecting
// a session the user just ended.
var ErrSignInCanceled = errors.New("sign-in canceled by sign-out")

// AuthErrorKind classifies authentication failures for callers.
type AuthErrorKind string

const (
	// KindValidation: malformed or missing input, caught before any
	// network call is made.
	KindValidation AuthErrorKind = "validation"
	// KindCredential: the backend rejected the email/password pair.
	KindCredential AuthErrorKind = "credential"
	// KindConflict: the backend refused account creation for an identity
	// that already exists.
	KindConflict AuthErrorKind = "conflict"
	// KindNetwork: transport failure or timeout reaching the backend.
	KindNetwork AuthErrorKind = "network"
)

// AuthError is the typed error returned by session manager auth calls.
// Message is safe to show to the user; Err carries the underlying cause
// for logging.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return e.Err }

// ValidationError builds a KindValidation error.
func ValidationError(msg string) *AuthError {
	return &AuthError{Kind: KindValidation, Message: msg}
}

// CredentialError builds a KindCredential error.
func CredentialError(msg string) *AuthError {
	return &AuthError{Kind: KindCredential, Message: msg}
}

// ConflictError builds a KindConflict error.
func ConflictError(msg string) *AuthError {
	return &AuthError{Kind: KindConflict, Message: msg}
}

// NetworkError wraps a transport failure.
func NetworkError(err error) *AuthError {
	return &AuthError{Kind: KindNetwork, Message: "could not reach the backend service", Err: err}
}

// IsAuthErrorKind reports whether err (or anything in its chain) is an
// *AuthError of the given kind.
func IsAuthErrorKind(err error, kind AuthErrorKind) bool {
	var ae *AuthError
	return errors.As(err, &ae) && ae.Kind == kind
}

// AsAuthError extracts the *AuthError from err's chain, or nil.
func AsAuthError(err error) *AuthError {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
