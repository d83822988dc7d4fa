// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Command hostedlogin sends users to an identity provider's hosted login UI,
// either by serving a login redirect or by opening a browser.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grittonbelldev/hostedlogin/hostedui"
	"github.com/grittonbelldev/hostedlogin/internal/config"
	"github.com/grittonbelldev/hostedlogin/internal/server"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// flags override values loaded from env files and the environment.
type flags struct {
	envFiles    []string
	clientId    string
	domain      string
	redirectUri string
	logLevel    string
	addr        string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:          "hostedlogin",
		Short:        "Send users to the hosted login UI",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringArrayVar(&f.envFiles, "env-file", []string{config.DefaultEnvFile}, "dotenv file to load, repeatable; missing files are skipped")
	pf.StringVar(&f.clientId, "client-id", "", "client id (env COGNITO_CLIENT_ID)")
	pf.StringVar(&f.domain, "domain", "", "hosted UI domain (env COGNITO_DOMAIN)")
	pf.StringVar(&f.redirectUri, "redirect-uri", "", "redirect uri (env COGNITO_REDIRECT_URI)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (env LOG_LEVEL)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the home page and the login redirect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.load(cmd)
			if err != nil {
				return err
			}
			logger := c.Logger(cmd.ErrOrStderr())
			warnInvalid(logger, c.AuthConfig())

			s, err := server.New(c.AuthConfig(),
				server.WithLogger(logger),
				server.WithRedirectStatus(c.RedirectStatus),
			)
			if err != nil {
				return err
			}
			return s.Run(cmd.Context(), c.Addr)
		},
	}
	serve.Flags().StringVar(&f.addr, "addr", "", "listen address (env HOSTEDLOGIN_ADDR)")

	urlCmd := &cobra.Command{
		Use:   "url",
		Short: "Print the hosted UI login URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.load(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hostedui.LoginURL(c.AuthConfig()))
			return err
		},
	}

	open := &cobra.Command{
		Use:   "open",
		Short: "Open the hosted UI login page in the default browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.load(cmd)
			if err != nil {
				return err
			}
			logger := c.Logger(cmd.ErrOrStderr())
			warnInvalid(logger, c.AuthConfig())
			nav := browserNavigator(hostedui.WithLogger(logger), hostedui.WithOutput(cmd.ErrOrStderr()))
			r, err := hostedui.NewLoginRedirector(c.AuthConfig(), nav, hostedui.WithLogger(logger))
			if err != nil {
				return err
			}
			r.InitiateLogin()
			return nil
		},
	}

	root.AddCommand(serve, urlCmd, open)
	return root
}

// browserNavigator is a var so tests don't launch a browser.
var browserNavigator = hostedui.BrowserNavigator

func (f *flags) load(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Load(f.envFiles...)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("client-id") {
		c.ClientId = f.clientId
	}
	if cmd.Flags().Changed("domain") {
		c.Domain = f.domain
	}
	if cmd.Flags().Changed("redirect-uri") {
		c.RedirectUri = f.redirectUri
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("addr") {
		c.Addr = f.addr
	}
	return c, nil
}

// warnInvalid logs every configuration problem.  Login URLs are still built
// from the configuration as given.
func warnInvalid(logger hclog.Logger, c hostedui.Config) {
	err := c.Validate()
	if err == nil {
		return
	}
	logger.Warn("configuration looks invalid, login urls are built as configured", "error", err)
}
