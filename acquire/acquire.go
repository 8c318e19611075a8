// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package acquire provides the concrete token acquisition strategies a
// llave.Credential can be built around: a loopback metadata endpoint, a
// locally installed CLI tool, and a fixed token handed over by an external
// auth library.
package acquire

import "errors"

// Errors that can be returned by this package. Since some of these errors are
// returned wrapped, it is safest to use errors.Is() to check for them.
var (
	ErrMisconfiguredAcquirer = errors.New("llave acquirer configuration error")

	// ErrMissingField is returned wrapped, naming the field, when a token
	// payload lacks a required field.
	ErrMissingField = errors.New("required field missing in token payload")

	errNonSuccessResponse = errors.New("token endpoint responded with a non-success status code")
	errNewRequestFailure  = errors.New("failed creating an HTTP request")
	errDoRequestFailure   = errors.New("http client failed while sending request")
	errReadingBodyFailure = errors.New("failed while reading http response body")
	errJSONUnmarshal      = errors.New("failed unmarshaling JSON token payload")
	errCommandFailure     = errors.New("token command failed")
)
