// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package llave

import (
	"errors"
	"time"
)

var (
	ErrMissingAccessToken = errors.New("access token is required")
	ErrMissingTokenType   = errors.New("token type is required")
)

// Token is an immutable snapshot of an acquired bearer token. Acquirers
// always build a new Token rather than mutating a previous one; a Credential
// replaces its cached Token wholesale on every successful refresh.
type Token struct {
	// AccessToken is the opaque bearer token placed in the Authorization header.
	AccessToken string

	// Type is the authorization scheme for the token, typically "Bearer".
	Type string

	// ExpiresAt is the absolute expiry instant of the token. A zero value
	// means the expiry is unknown, in which case a Credential treats the
	// token as stale on every call and refreshes each time.
	ExpiresAt time.Time

	// Account correlates the token with the account or subscription it was
	// issued for. (Optional) Strategies that have no notion of an account
	// leave it empty.
	Account string
}

// Validate checks that the token carries the fields every strategy must
// produce.
func (t Token) Validate() (errs error) {
	if t.AccessToken == "" {
		errs = errors.Join(errs, ErrMissingAccessToken)
	}
	if t.Type == "" {
		errs = errors.Join(errs, ErrMissingTokenType)
	}

	return errs
}

// Authorization returns the value to place in an Authorization header:
// the token type and the access token joined by a single space.
func (t Token) Authorization() string {
	return t.Type + " " + t.AccessToken
}

// ExpiresIn returns how long after now the token remains valid, truncated to
// second granularity. Expiry decisions compare whole seconds so that a token
// refreshed exactly at the renewal margin is not refreshed again.
func (t Token) ExpiresIn(now time.Time) time.Duration {
	return time.Duration(t.ExpiresAt.Unix()-now.Unix()) * time.Second
}
