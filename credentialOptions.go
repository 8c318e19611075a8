// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package llave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

var (
	ErrMisconfiguredCredential = errors.New("llave credential configuration error")
	ErrNoAcquirerProvided      = errors.New("an acquirer is required")
	ErrNegativeRenewalMargin   = errors.New("renewal margin must not be negative")
)

// Option is a functional option type for Credential.
type Option interface {
	apply(*Credential) error
}

type Options []Option

func (opts Options) apply(c *Credential) (errs error) {
	for _, o := range opts {
		errs = errors.Join(errs, o.apply(c))
	}

	return errs
}

type optionFunc func(*Credential) error

func (f optionFunc) apply(c *Credential) error {
	return f(c)
}

var defaultOptions = Options{
	RenewalMargin(0),
	GetLogger(nil),
}

// NewCredential creates a Credential that caches tokens produced by the
// given acquisition strategy. Configuration problems surface here, before
// any token is fetched.
func NewCredential(opts ...Option) (*Credential, error) {
	var credential Credential

	allOpts := append(defaultOptions, Options(opts)...)
	allOpts = append(allOpts, credentialValidator())

	if errs := allOpts.apply(&credential); errs != nil {
		return nil, errors.Join(ErrMisconfiguredCredential, errs)
	}

	return &credential, nil
}

// WithAcquirer sets the acquisition strategy for the credential. Exactly one
// strategy is active per credential and it is fixed at construction.
func WithAcquirer(acquirer Acquirer) Option {
	return optionFunc(
		func(c *Credential) error {
			c.acquirer = acquirer

			return nil
		})
}

// RenewalMargin sets the window before expiry at which the cached token is
// preemptively refreshed.
// (Optional) Default is DefaultRenewalMargin.
func RenewalMargin(margin time.Duration) Option {
	return optionFunc(
		func(c *Credential) error {
			if margin < 0 {
				return fmt.Errorf("%w: %v", ErrNegativeRenewalMargin, margin)
			}

			c.margin = DefaultRenewalMargin
			if margin > 0 {
				c.margin = margin
			}

			return nil
		})
}

// Account sets the account the next token should belong to.
// (Optional) If empty, the acquirer's default account is used.
func Account(account string) Option {
	return optionFunc(
		func(c *Credential) error {
			c.account = account

			return nil
		})
}

// InitialToken seeds the credential with an already acquired token, e.g. one
// handed over by an external auth library. The token is validated here and
// the normal staleness rules apply to it afterwards.
func InitialToken(token Token) Option {
	return optionFunc(
		func(c *Credential) error {
			if err := token.Validate(); err != nil {
				return err
			}

			c.current = &token

			return nil
		})
}

// RefreshCounter sets the counter tracking refresh outcomes, labeled by
// success/failure.
// (Optional) If not provided, refreshes are not counted.
func RefreshCounter(counter *prometheus.CounterVec) Option {
	return optionFunc(
		func(c *Credential) error {
			c.refreshCounter = counter

			return nil
		})
}

// GetLogger sets the getlogger, a func that returns a logger from the given
// context.
// (Optional) Default is sallust.Get.
func GetLogger(get func(context.Context) *zap.Logger) Option {
	return optionFunc(
		func(c *Credential) error {
			c.getLogger = sallust.Get
			if get != nil {
				c.getLogger = get
			}

			return nil
		})
}

func credentialValidator() Option {
	return optionFunc(
		func(c *Credential) error {
			if c.acquirer == nil {
				return ErrNoAcquirerProvided
			}

			return nil
		})
}
