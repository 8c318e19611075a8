// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/llave"
	"github.com/xmidt-org/llave/acquire"
)

var errFails = errors.New("fails")

func TestNewSigner(t *testing.T) {
	assert := assert.New(t)

	signer, err := NewSigner(nil)
	assert.ErrorIs(err, ErrNoSourceProvided)
	assert.Nil(signer)
}

func TestSignerDecorate(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	acquirer := new(acquire.MockAcquirer)
	acquirer.On("Acquire", mock.Anything, "").
		Return(llave.Token{AccessToken: "abc123", Type: "Bearer", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

	credential, err := llave.NewCredential(llave.WithAcquirer(acquirer))
	require.NoError(err)

	signer, err := NewSigner(credential)
	require.NoError(err)

	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(err)

	require.NoError(signer.Decorate(context.Background(), req))
	assert.Equal("Bearer abc123", req.Header.Get("Authorization"))
}

func TestSignerDecorateRefreshFailure(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	acquirer := new(acquire.MockAcquirer)
	acquirer.On("Acquire", mock.Anything, "").Return(llave.Token{}, errFails)

	credential, err := llave.NewCredential(llave.WithAcquirer(acquirer))
	require.NoError(err)

	signer, err := NewSigner(credential)
	require.NoError(err)

	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(err)

	err = signer.Decorate(context.Background(), req)

	// refresh failures propagate unchanged and nothing is signed
	var refreshErr *llave.RefreshError
	assert.ErrorAs(err, &refreshErr)
	assert.ErrorIs(err, errFails)
	assert.Empty(req.Header.Get("Authorization"))
}
