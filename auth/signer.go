// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/xmidt-org/llave"
)

var ErrNoSourceProvided = errors.New("a token source is required")

// Source provides the current valid token, refreshing it first when needed.
// *llave.Credential satisfies it.
type Source interface {
	Token(ctx context.Context) (llave.Token, error)
}

// Signer decorates outgoing requests with a bearer token obtained from its
// source. Refresh failures propagate unchanged; signing never swallows them.
type Signer struct {
	source Source
}

// NewSigner creates a Signer around the given token source.
func NewSigner(source Source) (*Signer, error) {
	if source == nil {
		return nil, ErrNoSourceProvided
	}

	return &Signer{source: source}, nil
}

// Decorate sets the request's Authorization header to the token type and
// access token joined by a single space, e.g. "Bearer abc123".
func (s *Signer) Decorate(ctx context.Context, req *http.Request) error {
	token, err := s.source.Token(ctx)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", token.Authorization())

	return nil
}
