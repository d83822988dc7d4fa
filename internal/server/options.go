// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package server

import (
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
)

// Option defines a common functional options type which can be used in a
// variadic parameter pattern.
type Option func(interface{})

func applyOpts(opts interface{}, opt ...Option) {
	for _, o := range opt {
		if o == nil {
			continue
		}
		o(opts)
	}
}

type options struct {
	withLogger         hclog.Logger
	withRedirectStatus int
	withRegistry       *prometheus.Registry
}

func defaults() options {
	return options{
		withLogger: hclog.NewNullLogger(),
	}
}

func getOpts(opt ...Option) options {
	opts := defaults()
	applyOpts(&opts, opt...)
	if opts.withRegistry == nil {
		opts.withRegistry = prometheus.NewRegistry()
	}
	return opts
}

// WithLogger provides an optional logger for the server and its handlers.
func WithLogger(l hclog.Logger) Option {
	return func(o interface{}) {
		if v, ok := o.(*options); ok && l != nil {
			v.withLogger = l
		}
	}
}

// WithRedirectStatus provides an optional status for login redirects.
func WithRedirectStatus(code int) Option {
	return func(o interface{}) {
		if v, ok := o.(*options); ok {
			v.withRedirectStatus = code
		}
	}
}

// WithRegistry provides an optional prometheus registry for the server's
// metrics.  A new registry is used by default.
func WithRegistry(r *prometheus.Registry) Option {
	return func(o interface{}) {
		if v, ok := o.(*options); ok {
			v.withRegistry = r
		}
	}
}
