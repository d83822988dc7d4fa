// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package config loads the hostedlogin configuration from dotenv files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/grittonbelldev/hostedlogin/hostedui"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when no env files are named.
const DefaultEnvFile = ".env"

// Config is the process configuration.
type Config struct {
	ClientId    string `env:"COGNITO_CLIENT_ID"`
	Domain      string `env:"COGNITO_DOMAIN"`
	RedirectUri string `env:"COGNITO_REDIRECT_URI"`

	Addr           string `env:"HOSTEDLOGIN_ADDR"            envDefault:":8080"`
	RedirectStatus int    `env:"HOSTEDLOGIN_REDIRECT_STATUS" envDefault:"302"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON"  envDefault:"false"`
}

// Load reads the named dotenv files, skipping any that don't exist, and then
// parses the environment.  Variables already set in the environment win over
// values from the files, and earlier files win over later ones.
func Load(files ...string) (Config, error) {
	const op = "config.Load"
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("%s: unable to stat env file %q: %w", op, f, err)
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("%s: unable to load env file %q: %w", op, f, err)
		}
	}
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("%s: parse env: %w", op, err)
	}
	return c, nil
}

// AuthConfig returns the hosted UI configuration.
func (c Config) AuthConfig() hostedui.Config {
	return hostedui.NewConfig(c.ClientId, c.Domain, c.RedirectUri)
}

// Logger returns the process logger writing to w.  Unknown levels fall back
// to info.
func (c Config) Logger(w io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(c.LogLevel)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "hostedlogin",
		Level:      lvl,
		Output:     w,
		JSONFormat: c.LogJSON,
	})
}
