// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests       *prometheus.CounterVec
	loginRedirects prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	const op = "server.newMetrics"
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hostedlogin",
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		loginRedirects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hostedlogin",
			Name:      "login_redirects_total",
			Help:      "Number of browsers redirected to the hosted login UI.",
		}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.loginRedirects} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("%s: unable to register collector: %w", op, err)
		}
	}
	return m, nil
}

// instrument counts every request once it has been served.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(statusOf(ww))).Inc()
	})
}

// statusOf returns the written status, which is 200 when the handler never
// called WriteHeader.
func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
