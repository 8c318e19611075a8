// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package llave

import "context"

// Acquirer knows how to fetch a fresh Token from one specific backend, such
// as a loopback metadata endpoint or a locally installed CLI tool. Exactly
// one Acquirer is active per Credential.
//
// Acquire fetches a token for the given account hint; strategies without a
// notion of accounts ignore the hint. Implementations do not retry: a failed
// fetch surfaces immediately and retry policy belongs to the caller.
type Acquirer interface {
	Acquire(ctx context.Context, account string) (Token, error)
}

// AcquirerFunc adapts an ordinary function, e.g. one wrapping an external
// auth library, to the Acquirer interface.
type AcquirerFunc func(context.Context, string) (Token, error)

func (f AcquirerFunc) Acquire(ctx context.Context, account string) (Token, error) {
	return f(ctx, account)
}
