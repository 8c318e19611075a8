// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package acquire

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/llave"
	"go.uber.org/zap"
)

// Request headers.
const (
	MetadataHeaderKey   = "Metadata"
	MetadataHeaderValue = "true"
)

const (
	metadataTokenPath = "/oauth2/token"

	errWrappedFmt    = "%w: %s"
	errStatusCodeFmt = "%w: received status %v"
)

// Metadata acquires tokens from the loopback metadata service available on
// managed hosts, which issues tokens without requiring embedded secrets.
//
// Each acquisition is a single POST to /oauth2/token with a Metadata: true
// header and a form-encoded resource parameter. The endpoint has no account
// parameter, so the account hint is ignored by this strategy.
type Metadata struct {
	client    httpaux.Client
	port      int
	resource  string
	address   string
	url       string
	getLogger func(context.Context) *zap.Logger
}

// metadataTokenPayload is the JSON body returned by the metadata endpoint.
// token_type and access_token are required; expires_on is seconds since
// epoch, typically encoded as a string.
type metadataTokenPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresOn   any    `json:"expires_on"`
	ExpiresIn   any    `json:"expires_in"`
	Resource    string `json:"resource"`
}

// NewMetadata creates a Metadata acquirer for the configured resource.
// Configuration problems are reported here, before any network activity.
func NewMetadata(opts ...MetadataOption) (*Metadata, error) {
	var m Metadata

	allOpts := append(defaultMetadataOptions, MetadataOptions(opts)...)
	allOpts = append(allOpts, metadataValidator())

	if errs := allOpts.apply(&m); errs != nil {
		return nil, errs
	}

	return &m, nil
}

// Acquire fetches a fresh token for the configured resource.
func (m *Metadata) Acquire(ctx context.Context, _ string) (llave.Token, error) {
	body := url.Values{"resource": []string{m.resource}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, strings.NewReader(body))
	if err != nil {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, errNewRequestFailure, err.Error())
	}

	req.Header.Set(MetadataHeaderKey, MetadataHeaderValue)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, errDoRequestFailure, err.Error())
	}

	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, errReadingBodyFailure, err.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		m.getLogger(ctx).Error("Metadata endpoint responded with a non-success status code",
			zap.Int("code", resp.StatusCode))

		return llave.Token{}, fmt.Errorf(errStatusCodeFmt, errNonSuccessResponse, resp.StatusCode)
	}

	return m.parse(ctx, bodyBytes, time.Now())
}

func (m *Metadata) parse(ctx context.Context, body []byte, now time.Time) (llave.Token, error) {
	var payload metadataTokenPayload

	if err := json.Unmarshal(body, &payload); err != nil {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, errJSONUnmarshal, err.Error())
	}

	if payload.AccessToken == "" {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, ErrMissingField, "access_token")
	}

	if payload.TokenType == "" {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, ErrMissingField, "token_type")
	}

	return llave.Token{
		AccessToken: payload.AccessToken,
		Type:        payload.TokenType,
		ExpiresAt:   m.expiry(ctx, payload, now),
	}, nil
}

// expiry resolves the absolute expiry instant from the payload: expires_on
// wins, expires_in is the relative fallback. Absent or unparseable values
// yield a zero time, which makes the credential refresh on every call.
func (m *Metadata) expiry(ctx context.Context, payload metadataTokenPayload, now time.Time) time.Time {
	if payload.ExpiresOn != nil {
		on, err := cast.ToInt64E(payload.ExpiresOn)
		if err == nil {
			return time.Unix(on, 0)
		}

		m.getLogger(ctx).Debug("Unparseable expires_on in token payload", zap.Error(err))
	}

	if payload.ExpiresIn != nil {
		in, err := cast.ToInt64E(payload.ExpiresIn)
		if err == nil {
			return now.Add(time.Duration(in) * time.Second)
		}

		m.getLogger(ctx).Debug("Unparseable expires_in in token payload", zap.Error(err))
	}

	return time.Time{}
}
