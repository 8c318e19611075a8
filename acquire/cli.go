// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package acquire

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/spf13/cast"
	"github.com/xmidt-org/llave"
	"go.uber.org/zap"
)

// CommandRunner invokes an external command and returns its standard output.
// It is injected into CLI so tests and embedders can substitute the process
// invocation.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// DefaultRunner runs the command with os/exec. On a non-zero exit the
// captured stderr text is folded into the returned error.
func DefaultRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, exitErr.Stderr)
		}

		return nil, err
	}

	return out, nil
}

// CLI acquires tokens by delegating to a locally installed command-line
// tool, the way developer machines authenticate. The tool is expected to
// print a JSON object with at least accessToken and tokenType fields;
// expiresOn (seconds since epoch, string or number) and subscription are
// honored when present.
type CLI struct {
	runner       CommandRunner
	command      string
	args         []string
	resource     string
	resourceFlag string
	accountFlag  string
	getLogger    func(context.Context) *zap.Logger
}

// cliTokenPayload is the JSON object printed by the external tool.
type cliTokenPayload struct {
	AccessToken  string `json:"accessToken"`
	TokenType    string `json:"tokenType"`
	ExpiresOn    any    `json:"expiresOn"`
	Subscription string `json:"subscription"`
}

// NewCLI creates a CLI acquirer around the configured command.
// Configuration problems are reported here, before any process is spawned.
func NewCLI(opts ...CLIOption) (*CLI, error) {
	var c CLI

	allOpts := append(defaultCLIOptions, CLIOptions(opts)...)
	allOpts = append(allOpts, cliValidator())

	if errs := allOpts.apply(&c); errs != nil {
		return nil, errs
	}

	return &c, nil
}

// Acquire runs the external tool once and parses the token it prints. A
// non-empty account hint is passed along via the configured account flag.
func (c *CLI) Acquire(ctx context.Context, account string) (llave.Token, error) {
	args := append([]string{}, c.args...)
	if c.resource != "" {
		args = append(args, c.resourceFlag, c.resource)
	}
	if account != "" {
		args = append(args, c.accountFlag, account)
	}

	out, err := c.runner(ctx, c.command, args...)
	if err != nil {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, errCommandFailure, err.Error())
	}

	return c.parse(ctx, out, account)
}

func (c *CLI) parse(ctx context.Context, out []byte, account string) (llave.Token, error) {
	var payload cliTokenPayload

	if err := json.Unmarshal(out, &payload); err != nil {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, errJSONUnmarshal, err.Error())
	}

	if payload.AccessToken == "" {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, ErrMissingField, "accessToken")
	}

	if payload.TokenType == "" {
		return llave.Token{}, fmt.Errorf(errWrappedFmt, ErrMissingField, "tokenType")
	}

	if payload.Subscription != "" {
		account = payload.Subscription
	}

	return llave.Token{
		AccessToken: payload.AccessToken,
		Type:        payload.TokenType,
		ExpiresAt:   c.expiry(ctx, payload),
		Account:     account,
	}, nil
}

// expiry resolves the expiry instant: the tool's expiresOn wins, with the
// token's own exp claim as the fallback for tools that print bare JWTs. When
// neither is usable the zero time makes the credential refresh every call.
func (c *CLI) expiry(ctx context.Context, payload cliTokenPayload) time.Time {
	if payload.ExpiresOn != nil {
		on, err := cast.ToInt64E(payload.ExpiresOn)
		if err == nil {
			return time.Unix(on, 0)
		}

		c.getLogger(ctx).Debug("Unparseable expiresOn in token payload", zap.Error(err))
	}

	exp, err := tokenExpiration(payload.AccessToken)
	if err != nil {
		c.getLogger(ctx).Debug("No expiration claim in access token", zap.Error(err))

		return time.Time{}
	}

	return exp
}
