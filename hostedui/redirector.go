// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Navigator replaces the current browsing context's location with url.  It
// is the only side effect of a login.
type Navigator func(url string)

// LoginRedirector sends a user to the hosted UI's login page.
type LoginRedirector struct {
	config   Config
	navigate Navigator
	logger   hclog.Logger
}

// NewLoginRedirector creates a LoginRedirector for the config which navigates
// with nav.  The config is not validated.
//
// Supported options: WithLogger
func NewLoginRedirector(c Config, nav Navigator, opt ...Option) (*LoginRedirector, error) {
	const op = "NewLoginRedirector"
	if nav == nil {
		return nil, fmt.Errorf("%s: navigator is nil: %w", op, ErrNilParameter)
	}
	opts := getRedirectorOpts(opt...)
	return &LoginRedirector{
		config:   c,
		navigate: nav,
		logger:   opts.withLogger,
	}, nil
}

// URL returns the login URL that InitiateLogin navigates to.
func (r *LoginRedirector) URL() string {
	return LoginURL(r.config)
}

// InitiateLogin builds a fresh login URL and navigates to it exactly once.
// It cannot fail and cannot be cancelled once called.
func (r *LoginRedirector) InitiateLogin() {
	u := LoginURL(r.config)
	r.logger.Debug("initiating login", "client_id", r.config.ClientId, "domain", r.config.Domain)
	r.navigate(u)
}

// redirectorOptions is the set of available options for LoginRedirector
type redirectorOptions struct {
	withLogger hclog.Logger
}

// redirectorDefaults is a handy way to get the defaults at runtime and during
// unit tests.
func redirectorDefaults() redirectorOptions {
	return redirectorOptions{
		withLogger: hclog.NewNullLogger(),
	}
}

// getRedirectorOpts gets the defaults and applies the opt overrides passed in.
func getRedirectorOpts(opt ...Option) redirectorOptions {
	opts := redirectorDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}
