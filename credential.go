// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package llave

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultRenewalMargin is the safety window before expiry at which a cached
// token is proactively treated as stale and refreshed.
const DefaultRenewalMargin = 270 * time.Second

// RefreshError is returned by Credential.Token and Credential.Refresh when
// the active acquirer fails to produce a token. The previously cached token,
// if any, is retained so a transient failure does not invalidate an
// otherwise good credential.
type RefreshError struct {
	// Account is the account the credential was refreshing for, empty when
	// no specific account was requested.
	Account string

	// Err is the underlying acquisition failure.
	Err error
}

func (re *RefreshError) Error() string {
	if re.Account == "" {
		return fmt.Sprintf("failed to refresh token: %v", re.Err)
	}

	return fmt.Sprintf("failed to refresh token for account %q: %v", re.Account, re.Err)
}

func (re *RefreshError) Unwrap() error {
	return re.Err
}

// Credential caches the last token produced by its acquirer and decides,
// call by call, whether that token is still usable or must be refreshed.
// Refreshes happen synchronously within Token; there is no background timer.
//
// A Credential serializes refreshes: concurrent callers share a single
// in-flight acquisition instead of racing to overwrite each other's result.
type Credential struct {
	mu       sync.Mutex
	current  *Token
	acquirer Acquirer
	margin   time.Duration
	account  string

	refreshCounter *prometheus.CounterVec
	getLogger      func(context.Context) *zap.Logger
}

// Token returns the currently valid token, refreshing it first when needed.
//
// A refresh is required iff any of the following holds: no token is cached
// yet; the cached token has no known expiry; the desired account (the
// context override from WithAccount, else the credential's account) differs
// from the cached token's account; or the cached token is within the renewal
// margin of its expiry. The expiry comparison is strict and second-granular,
// so a token exactly the margin away from expiry is still valid.
//
// On refresh failure the cached token is left untouched and a *RefreshError
// wrapping the cause is returned.
func (c *Credential) Token(ctx context.Context) (Token, error) {
	account, ok := AccountFrom(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !ok {
		account = c.account
	}

	if !c.stale(account, time.Now()) {
		return *c.current, nil
	}

	if err := c.refresh(ctx, account); err != nil {
		return Token{}, err
	}

	return *c.current, nil
}

// Refresh unconditionally fetches a new token, replacing the cached one on
// success. On failure the cached token, if any, is retained and a
// *RefreshError is returned. Refresh is how an eager initial fetch is done,
// e.g. from an fx start hook.
func (c *Credential) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refresh(ctx, c.account)
}

// SetAccount requests that the next token belong to the given account, e.g.
// after the caller switched the active subscription. A mismatch with the
// cached token forces a refresh even before expiry. An empty account removes
// the request.
func (c *Credential) SetAccount(account string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.account = account
}

// stale reports whether the cached token can no longer be served as-is.
// Callers must hold c.mu.
func (c *Credential) stale(account string, now time.Time) bool {
	switch {
	case c.current == nil:
		return true
	case c.current.ExpiresAt.IsZero():
		// Unknown expiry refreshes every call. Correctness over staleness;
		// do not relax into a cache-forever policy.
		return true
	case account != "" && account != c.current.Account:
		return true
	default:
		return c.current.ExpiresIn(now) < c.margin
	}
}

// refresh fetches and installs a new token. Callers must hold c.mu.
func (c *Credential) refresh(ctx context.Context, account string) error {
	logger := c.getLogger(ctx)

	token, err := c.acquirer.Acquire(ctx, account)
	if err == nil {
		err = token.Validate()
	}

	if err != nil {
		c.count(FailureOutcome)
		logger.Error("Token refresh failed", zap.String("account", account), zap.Error(err))

		return &RefreshError{Account: account, Err: err}
	}

	c.current = &token
	c.count(SuccessOutcome)
	logger.Debug("Token refreshed", zap.String("account", token.Account),
		zap.Time("expiresAt", token.ExpiresAt))

	return nil
}

func (c *Credential) count(outcome string) {
	if c.refreshCounter == nil {
		return
	}

	c.refreshCounter.With(prometheus.Labels{OutcomeLabel: outcome}).Add(1)
}
