package ports

import "errors"

// ErrNoSession is returned by IdentityBackend.CurrentSession and
// SessionCache.Load when there is no session to restore. It is the
// expected common case at first startup, not a failure.
var ErrNoSession = errors.New("no session")

// ErrInvalidCredentials is returned by VerifyCredentials when the backend
// rejects the email/password pair (or the account is locked).
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrIdentityExists is returned by CreateAccount when the email is already
// registered.
var ErrIdentityExists = errors.New("identity already exists")
