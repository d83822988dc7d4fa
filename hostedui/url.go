// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import (
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

const (
	// ResponseType requests the authorization code flow.
	ResponseType = "code"

	// Scope is the space separated scope list requested of the provider.
	Scope = oidc.ScopeOpenID + " email"

	// LoginPath is the path of the hosted UI's login page.
	LoginPath = "/login"
)

// LoginURL returns the hosted UI login URL for the config.  Values are
// substituted verbatim: nothing is percent-encoded, including the space in
// Scope.  The parameter order is client_id, response_type, scope,
// redirect_uri.
func LoginURL(c Config) string {
	return fmt.Sprintf("https://%s%s?client_id=%s&response_type=%s&scope=%s&redirect_uri=%s",
		c.Domain, LoginPath, c.ClientId, ResponseType, Scope, c.RedirectUri)
}
