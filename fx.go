// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package llave

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/touchstone"
	"go.uber.org/fx"
)

var errFailedConfig = errors.New("failed to build credential from fx configuration")

// Config contains config data for a renewable credential.
type Config struct {
	// RenewalMargin is the window before expiry at which the cached token is
	// preemptively refreshed. Accepts a duration string or integer seconds.
	// (Optional) Defaults to 4m30s.
	RenewalMargin CustomDuration `json:"renewalMargin"`

	// Account is the account or subscription the tokens should belong to.
	// (Optional) If empty, the acquirer's default account is used.
	Account string `json:"account"`

	// EagerRefresh fetches the first token at application start instead of
	// on the first request.
	// (Optional) Defaults to false.
	EagerRefresh bool `json:"eagerRefresh"`
}

// CredentialIn contains the dependencies for a renewable credential.
type CredentialIn struct {
	fx.In

	// Config configures the credential.
	Config Config

	// Acquirer is the acquisition strategy producing fresh tokens.
	Acquirer Acquirer

	// RefreshCounter measures the number of token refreshes (and their
	// success/failure outcomes).
	RefreshCounter *prometheus.CounterVec `name:"token_refreshes_total"`
}

// ProvideCredential provides a renewable credential from the given
// configuration.
func ProvideCredential(in CredentialIn) (*Credential, error) {
	credential, err := NewCredential(
		WithAcquirer(in.Acquirer),
		RenewalMargin(time.Duration(in.Config.RenewalMargin)),
		Account(in.Config.Account),
		RefreshCounter(in.RefreshCounter),
	)
	if err != nil {
		return nil, errors.Join(err, errFailedConfig)
	}

	return credential, nil
}

type EagerRefreshIn struct {
	fx.In

	Config     Config
	Credential *Credential
	LC         fx.Lifecycle
}

// ProvideEagerRefresh registers a start hook fetching the initial token when
// Config.EagerRefresh is set. A failed eager fetch fails application start;
// callers preferring lazy behavior leave EagerRefresh unset.
func ProvideEagerRefresh(in EagerRefreshIn) {
	if !in.Config.EagerRefresh {
		return
	}

	in.LC.Append(fx.StartHook(in.Credential.Refresh))
}

// ProvideMetrics provides the metrics relevant to this package.
func ProvideMetrics() fx.Option {
	return fx.Options(
		touchstone.CounterVec(
			prometheus.CounterOpts{
				Name: TokenRefreshesTotalCounterName,
				Help: TokenRefreshesTotalCounterHelp,
			},
			OutcomeLabel,
		),
	)
}
