// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package llave

import "context"

type accountKey struct{}

// WithAccount returns a context requesting that tokens obtained with it
// belong to the given account. The context value overrides the credential's
// own desired account for that call only.
func WithAccount(ctx context.Context, account string) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// AccountFrom gets the desired account from the context provided.
func AccountFrom(ctx context.Context) (account string, ok bool) {
	account, ok = ctx.Value(accountKey{}).(string)
	return
}
