// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package acquire

import (
	"context"
	"errors"

	"github.com/xmidt-org/sallust"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Default flag names passed to the external tool.
const (
	DefaultResourceFlag = "--resource"
	DefaultAccountFlag  = "--account"
)

var ErrCommandEmpty = errors.New("a command is required")

// CLIOption is a functional option type for CLI.
type CLIOption interface {
	apply(*CLI) error
}

type CLIOptions []CLIOption

func (opts CLIOptions) apply(c *CLI) (errs error) {
	for _, o := range opts {
		errs = multierr.Append(errs, o.apply(c))
	}

	if errs != nil {
		errs = multierr.Append(ErrMisconfiguredAcquirer, errs)
	}

	return errs
}

type cliOptionFunc func(*CLI) error

func (f cliOptionFunc) apply(c *CLI) error {
	return f(c)
}

var defaultCLIOptions = CLIOptions{
	Runner(nil),
	ResourceFlag(""),
	AccountFlag(""),
	CLIGetLogger(nil),
}

// Command sets the external tool and the leading arguments of every
// invocation, e.g. Command("az", "account", "get-access-token", "--output",
// "json"). Required.
func Command(name string, args ...string) CLIOption {
	return cliOptionFunc(
		func(c *CLI) error {
			c.command = name
			c.args = args

			return nil
		})
}

// CLIResource sets the resource URI tokens are requested for, passed to the
// tool via the resource flag.
// (Optional) If empty, no resource flag is passed.
func CLIResource(resource string) CLIOption {
	return cliOptionFunc(
		func(c *CLI) error {
			c.resource = resource

			return nil
		})
}

// ResourceFlag sets the flag name used to pass the resource.
// (Optional) Default is DefaultResourceFlag.
func ResourceFlag(flag string) CLIOption {
	return cliOptionFunc(
		func(c *CLI) error {
			c.resourceFlag = DefaultResourceFlag
			if flag != "" {
				c.resourceFlag = flag
			}

			return nil
		})
}

// AccountFlag sets the flag name used to pass the account hint.
// (Optional) Default is DefaultAccountFlag.
func AccountFlag(flag string) CLIOption {
	return cliOptionFunc(
		func(c *CLI) error {
			c.accountFlag = DefaultAccountFlag
			if flag != "" {
				c.accountFlag = flag
			}

			return nil
		})
}

// Runner sets the command runner used to invoke the tool.
// (Optional) Default is DefaultRunner.
func Runner(runner CommandRunner) CLIOption {
	return cliOptionFunc(
		func(c *CLI) error {
			c.runner = DefaultRunner
			if runner != nil {
				c.runner = runner
			}

			return nil
		})
}

// CLIGetLogger sets the getlogger, a func that returns a logger from the
// given context.
// (Optional) Default is sallust.Get.
func CLIGetLogger(get func(context.Context) *zap.Logger) CLIOption {
	return cliOptionFunc(
		func(c *CLI) error {
			c.getLogger = sallust.Get
			if get != nil {
				c.getLogger = get
			}

			return nil
		})
}

func cliValidator() CLIOption {
	return cliOptionFunc(
		func(c *CLI) error {
			if c.command == "" {
				return ErrCommandEmpty
			}

			return nil
		})
}
