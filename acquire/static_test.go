// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package acquire

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/llave"
)

func TestFixed(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	token := llave.Token{AccessToken: "abc123", Type: "Bearer", ExpiresAt: time.Now().Add(time.Hour)}

	acquirer, err := Fixed(token)
	require.NoError(err)

	for i := 0; i < 2; i++ {
		got, err := acquirer.Acquire(context.Background(), "ignored")
		assert.NoError(err)
		assert.Equal(token, got)
	}
}

func TestFixedInvalid(t *testing.T) {
	assert := assert.New(t)

	acquirer, err := Fixed(llave.Token{})
	assert.ErrorIs(err, ErrMisconfiguredAcquirer)
	assert.Nil(acquirer)
}
