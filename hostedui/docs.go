// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

/*
hostedui is a package for sending users to an identity provider's hosted login
UI using the OAuth2/OIDC authorization code flow.

Primary types provided by the package

* Config: the client id, hosted UI domain and redirect uri registered with the
identity provider.

* LoginRedirector: builds the login URL from a Config and navigates to it
exactly once per InitiateLogin.

* Navigator: the side effect of a login.  LoginHandler navigates by writing an
HTTP redirect, BrowserNavigator by launching the user's browser, and
TestNavigator records urls for tests.

The login URL has a fixed shape:

	https://<domain>/login?client_id=<client id>&response_type=code&scope=openid email&redirect_uri=<redirect uri>

Values are substituted verbatim and nothing is percent-encoded.
*/
package hostedui
