// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package acquire

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestTokenExpiration(t *testing.T) {
	tcs := []struct {
		Description string
		Token       func(*testing.T) string
		Expected    time.Time
		ExpectedErr error
		ShouldFail  bool
	}{
		{
			Description: "exp claim present",
			Token: func(t *testing.T) string {
				return signedTestJWT(t, jwt.MapClaims{"exp": 1735689600})
			},
			Expected: time.Unix(1735689600, 0),
		},
		{
			Description: "Missing exp claim",
			Token: func(t *testing.T) string {
				return signedTestJWT(t, jwt.MapClaims{"sub": "someone"})
			},
			ExpectedErr: errMissingExpClaim,
			ShouldFail:  true,
		},
		{
			Description: "Not a jwt",
			Token: func(*testing.T) string {
				return "abc123"
			},
			ShouldFail: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			exp, err := tokenExpiration(tc.Token(t))
			if tc.ShouldFail {
				assert.Error(err)
				if tc.ExpectedErr != nil {
					assert.ErrorIs(err, tc.ExpectedErr)
				}
				assert.True(exp.IsZero())
				return
			}
			assert.NoError(err)
			assert.Equal(tc.Expected, exp)
		})
	}
}
