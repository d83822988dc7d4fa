// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// hostedlogin sends users to an identity provider's hosted login UI with an
// OAuth2/OIDC authorization code request.
//
// The hostedui package builds the login URL and performs the redirect;
// cmd/hostedlogin serves it over http or opens it in a browser.
package hostedlogin
