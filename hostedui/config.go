// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Config represents the configuration of an application registered with a
// hosted login UI.  A Config is read-only once composed and is passed by
// value to everything that builds login URLs.
type Config struct {
	// ClientId is the identifier issued by the identity provider for this
	// application.
	ClientId string

	// Domain is the hostname of the identity provider's hosted UI (no scheme
	// and no path).
	Domain string

	// RedirectUri is the absolute URL the identity provider redirects the
	// browser back to after authentication.  It must be registered with the
	// provider out of band.
	RedirectUri string
}

// NewConfig composes a new Config.  It does not validate its parameters: login
// URLs are built from whatever the configuration source supplied.  See
// Config.Validate for an optional startup check.
func NewConfig(clientId, domain, redirectUri string) Config {
	return Config{
		ClientId:    clientId,
		Domain:      domain,
		RedirectUri: redirectUri,
	}
}

// Validate reports every problem it finds with the configuration.  It is a
// diagnostic only: LoginURL and LoginRedirector never call it.
func (c Config) Validate() error {
	const op = "Config.Validate"
	var retErr *multierror.Error
	if c.ClientId == "" {
		retErr = multierror.Append(retErr, fmt.Errorf("%s: client id is empty: %w", op, ErrInvalidParameter))
	}
	switch {
	case c.Domain == "":
		retErr = multierror.Append(retErr, fmt.Errorf("%s: domain is empty: %w", op, ErrInvalidParameter))
	case strings.Contains(c.Domain, "://"):
		retErr = multierror.Append(retErr, fmt.Errorf("%s: domain %q must not include a scheme: %w", op, c.Domain, ErrInvalidDomain))
	case strings.ContainsAny(c.Domain, "/?# \t"):
		retErr = multierror.Append(retErr, fmt.Errorf("%s: domain %q must be a bare hostname: %w", op, c.Domain, ErrInvalidDomain))
	}
	if c.RedirectUri == "" {
		retErr = multierror.Append(retErr, fmt.Errorf("%s: redirect uri is empty: %w", op, ErrInvalidParameter))
	} else {
		u, err := url.Parse(c.RedirectUri)
		switch {
		case err != nil:
			retErr = multierror.Append(retErr, fmt.Errorf("%s: redirect uri %q is invalid: %w", op, c.RedirectUri, ErrInvalidRedirect))
		case !u.IsAbs() || u.Host == "":
			retErr = multierror.Append(retErr, fmt.Errorf("%s: redirect uri %q is not an absolute url: %w", op, c.RedirectUri, ErrInvalidRedirect))
		}
	}
	return retErr.ErrorOrNil()
}
