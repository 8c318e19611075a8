// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package acquire

import (
	"context"
	"fmt"

	"github.com/xmidt-org/llave"
)

// Fixed returns an Acquirer that produces the given token on every call,
// wrapping a token minted by an external auth library. The token is
// validated once, here. If it carries no expiry the credential will re-ask
// on every call by policy, which is harmless since Fixed does no I/O.
func Fixed(token llave.Token) (llave.Acquirer, error) {
	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMisconfiguredAcquirer, err.Error())
	}

	return llave.AcquirerFunc(
		func(context.Context, string) (llave.Token, error) {
			return token, nil
		}), nil
}
