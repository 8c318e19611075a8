// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package llave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenValidate(t *testing.T) {
	tcs := []struct {
		Description string
		Token       Token
		ExpectedErr error
	}{
		{
			Description: "Valid",
			Token:       Token{AccessToken: "abc123", Type: "Bearer"},
		},
		{
			Description: "Valid without expiry",
			Token:       Token{AccessToken: "abc123", Type: "Bearer", ExpiresAt: time.Time{}},
		},
		{
			Description: "Missing access token",
			Token:       Token{Type: "Bearer"},
			ExpectedErr: ErrMissingAccessToken,
		},
		{
			Description: "Missing token type",
			Token:       Token{AccessToken: "abc123"},
			ExpectedErr: ErrMissingTokenType,
		},
		{
			Description: "Missing everything",
			Token:       Token{},
			ExpectedErr: ErrMissingAccessToken,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			err := tc.Token.Validate()
			if tc.ExpectedErr == nil {
				assert.NoError(err)
				return
			}
			assert.ErrorIs(err, tc.ExpectedErr)
		})
	}
}

func TestTokenAuthorization(t *testing.T) {
	assert := assert.New(t)
	token := Token{AccessToken: "abc123", Type: "Bearer"}
	assert.Equal("Bearer abc123", token.Authorization())
}

func TestTokenExpiresIn(t *testing.T) {
	assert := assert.New(t)
	now := time.Unix(1000, 0)

	token := Token{ExpiresAt: time.Unix(1270, 0)}
	assert.Equal(270*time.Second, token.ExpiresIn(now))

	// sub-second remainders are floored away
	token = Token{ExpiresAt: time.Unix(1270, int64(999*time.Millisecond))}
	assert.Equal(270*time.Second, token.ExpiresIn(now))

	token = Token{ExpiresAt: time.Unix(730, 0)}
	assert.Equal(-270*time.Second, token.ExpiresIn(now))
}
