// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import (
	"io"
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// Option defines a common functional options type which can be used in a
// variadic parameter pattern.
type Option func(interface{})

// ApplyOpts takes a pointer to the options struct as a set of default options
// and applies the slice of opts as overrides.
func ApplyOpts(opts interface{}, opt ...Option) {
	for _, o := range opt {
		if o == nil { // ignore any nil Options
			continue
		}
		o(opts)
	}
}

// WithLogger provides an optional logger for: LoginRedirector, LoginHandler
// and BrowserNavigator
func WithLogger(l hclog.Logger) Option {
	return func(o interface{}) {
		if l == nil {
			return
		}
		switch v := o.(type) {
		case *redirectorOptions:
			v.withLogger = l
		case *handlerOptions:
			v.withLogger = l
		case *browserOptions:
			v.withLogger = l
		}
	}
}

// WithRedirectStatus provides an optional HTTP status for the LoginHandler's
// redirect.  Codes outside of 300-399 are ignored.
func WithRedirectStatus(code int) Option {
	return func(o interface{}) {
		if code < http.StatusMultipleChoices || code > 399 {
			return
		}
		if v, ok := o.(*handlerOptions); ok {
			v.withRedirectStatus = code
		}
	}
}

// WithOutput provides an optional writer where the BrowserNavigator prints the
// URL it is launching.
func WithOutput(w io.Writer) Option {
	return func(o interface{}) {
		if w == nil {
			return
		}
		if v, ok := o.(*browserOptions); ok {
			v.withOutput = w
		}
	}
}
