// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package acquire

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/sallust"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultMetadataPort is the loopback port the metadata service listens on.
const DefaultMetadataPort = 50342

var (
	ErrResourceEmpty  = errors.New("a resource URI is required")
	ErrPortOutOfRange = errors.New("port must be between 1 and 65535")
)

// MetadataOption is a functional option type for Metadata.
type MetadataOption interface {
	apply(*Metadata) error
}

type MetadataOptions []MetadataOption

func (opts MetadataOptions) apply(m *Metadata) (errs error) {
	for _, o := range opts {
		errs = multierr.Append(errs, o.apply(m))
	}

	if errs != nil {
		errs = multierr.Append(ErrMisconfiguredAcquirer, errs)
	}

	return errs
}

type metadataOptionFunc func(*Metadata) error

func (f metadataOptionFunc) apply(m *Metadata) error {
	return f(m)
}

var defaultMetadataOptions = MetadataOptions{
	Port(0),
	HTTPClient(nil),
	GetLogger(nil),
}

// Resource sets the resource URI tokens are requested for. Required.
func Resource(resource string) MetadataOption {
	return metadataOptionFunc(
		func(m *Metadata) error {
			m.resource = resource

			return nil
		})
}

// Port sets the loopback port of the metadata service.
// (Optional) Default is DefaultMetadataPort.
func Port(port int) MetadataOption {
	return metadataOptionFunc(
		func(m *Metadata) error {
			if port < 0 || port > 65535 {
				return fmt.Errorf("%w: %d", ErrPortOutOfRange, port)
			}

			m.port = DefaultMetadataPort
			if port > 0 {
				m.port = port
			}

			return nil
		})
}

// Address overrides the base address of the metadata service, e.g. for
// pointing at a test server. When set, Port is ignored.
// (Optional) Default is http://localhost:{port}.
func Address(address string) MetadataOption {
	return metadataOptionFunc(
		func(m *Metadata) error {
			m.address = address

			return nil
		})
}

// HTTPClient sets the HTTP client.
// (Optional) Default is http.DefaultClient.
func HTTPClient(client httpaux.Client) MetadataOption {
	return metadataOptionFunc(
		func(m *Metadata) error {
			m.client = http.DefaultClient
			if client != nil {
				m.client = client
			}

			return nil
		})
}

// GetLogger sets the getlogger, a func that returns a logger from the given
// context.
// (Optional) Default is sallust.Get.
func GetLogger(get func(context.Context) *zap.Logger) MetadataOption {
	return metadataOptionFunc(
		func(m *Metadata) error {
			m.getLogger = sallust.Get
			if get != nil {
				m.getLogger = get
			}

			return nil
		})
}

func metadataValidator() MetadataOption {
	return metadataOptionFunc(
		func(m *Metadata) (errs error) {
			if m.resource == "" {
				errs = multierr.Append(errs, ErrResourceEmpty)
			}

			if m.address == "" {
				m.address = fmt.Sprintf("http://localhost:%d", m.port)
			}

			u, err := url.JoinPath(m.address, metadataTokenPath)
			if err != nil {
				errs = multierr.Append(errs, errors.Join(errors.New("failed to build metadata endpoint URL"), err))
			}
			m.url = u

			return errs
		})
}
