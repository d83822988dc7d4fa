// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package server serves the application's home page and the login route which
// redirects browsers to the hosted login UI.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/grittonbelldev/hostedlogin/hostedui"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestIdHeader carries the id assigned to each request.
const RequestIdHeader = "X-Request-Id"

const shutdownTimeout = 5 * time.Second

// Server is the http front end for the hosted login UI.
type Server struct {
	config  hostedui.Config
	logger  hclog.Logger
	metrics *metrics
	handler http.Handler
}

// New creates a Server for the config.  The config is not validated; a
// broken config produces broken login URLs, exactly as configured.
//
// Supported options: WithLogger, WithRedirectStatus, WithRegistry
func New(c hostedui.Config, opt ...Option) (*Server, error) {
	const op = "server.New"
	opts := getOpts(opt...)
	m, err := newMetrics(opts.withRegistry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s := &Server{
		config:  c,
		logger:  opts.withLogger,
		metrics: m,
	}

	r := chi.NewRouter()
	r.Use(s.requestId, s.logRequests, m.instrument)
	r.Get("/", homeHandler)
	r.Get(hostedui.LoginPath, s.loginHandler(opts.withRedirectStatus))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.withRegistry, promhttp.HandlerOpts{}))

	s.handler = cleanhttp.PrintablePathCheckHandler(r, nil)
	return s, nil
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	const op = "Server.Run"
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%s: unable to listen on %q: %w", op, addr, err)
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is done, then shuts down
// gracefully.  Serve closes l.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	const op = "Server.Serve"
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srvCh := make(chan error, 1)
	go func() {
		srvCh <- srv.Serve(l)
	}()
	s.logger.Info("listening", "addr", l.Addr().String(), "domain", s.config.Domain)

	select {
	case err := <-srvCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server closed with error: %w", op, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s: unable to shut down: %w", op, err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) loginHandler(status int) http.HandlerFunc {
	login := hostedui.LoginHandler(s.config,
		hostedui.WithLogger(s.logger.Named("login")),
		hostedui.WithRedirectStatus(status),
	)
	return func(w http.ResponseWriter, r *http.Request) {
		login(w, r)
		s.metrics.loginRedirects.Inc()
	}
}

// requestId assigns every request an id, keeping one sent by the client.
func (s *Server) requestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIdHeader)
		if id == "" {
			var err error
			if id, err = uuid.GenerateUUID(); err != nil {
				s.logger.Error("unable to generate request id", "error", err)
			}
		}
		if id != "" {
			w.Header().Set(RequestIdHeader, id)
			r.Header.Set(RequestIdHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", statusOf(ww),
			"duration", time.Since(start),
			"request_id", r.Header.Get(RequestIdHeader),
		)
	})
}
