// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// these are vars so tests can replace them
var (
	goos            = runtime.GOOS
	procVersionPath = "/proc/version"
	startCommand    = func(name string, args ...string) error { return exec.Command(name, args...).Start() }
)

// BrowserNavigator returns a Navigator which opens the url in the user's
// default browser.  A browser that can't be launched is logged, and the url
// is printed so the user can visit it manually.
//
// Supported options: WithLogger, WithOutput
func BrowserNavigator(opt ...Option) Navigator {
	opts := getBrowserOpts(opt...)
	return func(u string) {
		fmt.Fprintf(opts.withOutput, "Complete the login via your identity provider. Launching browser to:\n\n    %s\n\n", u)
		name, args := openerCommand(u)
		if err := startCommand(name, args...); err != nil {
			opts.withLogger.Error("unable to open browser", "command", name, "error", err)
			fmt.Fprintf(opts.withOutput, "Error attempting to automatically open browser: '%s'.\nPlease visit the login URL manually.\n", err)
		}
	}
}

// openerCommand returns the platform command which opens u in a browser.
func openerCommand(u string) (string, []string) {
	switch {
	case goos == "windows" || isWSL():
		// cmd treats & as a command separator
		return "cmd.exe", []string{"/c", "start", strings.ReplaceAll(u, "&", "^&")}
	case goos == "darwin":
		return "open", []string{u}
	default: // "linux", "freebsd", "openbsd", "netbsd"
		return "xdg-open", []string{u}
	}
}

// isWSL tests if the binary is being run in Windows Subsystem for Linux
func isWSL() bool {
	if goos == "darwin" || goos == "windows" {
		return false
	}
	data, err := os.ReadFile(procVersionPath)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}

// browserOptions is the set of available options for BrowserNavigator
type browserOptions struct {
	withLogger hclog.Logger
	withOutput io.Writer
}

func browserDefaults() browserOptions {
	return browserOptions{
		withLogger: hclog.NewNullLogger(),
		withOutput: os.Stderr,
	}
}

func getBrowserOpts(opt ...Option) browserOptions {
	opts := browserDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}
