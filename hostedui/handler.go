// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// DefaultRedirectStatus is the status LoginHandler responds with unless
// WithRedirectStatus is used.
const DefaultRedirectStatus = http.StatusFound

// LoginHandler creates an http.HandlerFunc which redirects the requesting
// browser to the hosted UI's login page.  Every request is one login
// activation: a LoginRedirector navigates once, by writing the redirect.  The
// Location header is exactly LoginURL(c).
//
// Supported options: WithLogger, WithRedirectStatus
func LoginHandler(c Config, opt ...Option) http.HandlerFunc {
	opts := getHandlerOpts(opt...)
	return func(w http.ResponseWriter, req *http.Request) {
		nav := func(u string) {
			http.Redirect(w, req, u, opts.withRedirectStatus)
		}
		// nav is never nil, so the only error NewLoginRedirector returns
		// can't happen here.
		r, _ := NewLoginRedirector(c, nav, WithLogger(opts.withLogger))
		opts.withLogger.Trace("redirecting to hosted ui", "remote_addr", req.RemoteAddr, "status", opts.withRedirectStatus)
		r.InitiateLogin()
	}
}

// handlerOptions is the set of available options for LoginHandler
type handlerOptions struct {
	withLogger         hclog.Logger
	withRedirectStatus int
}

func handlerDefaults() handlerOptions {
	return handlerOptions{
		withLogger:         hclog.NewNullLogger(),
		withRedirectStatus: DefaultRedirectStatus,
	}
}

func getHandlerOpts(opt ...Option) handlerOptions {
	opts := handlerDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}
