// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import "sync"

// TestNavigator records every url it's asked to navigate to.  It's safe for
// concurrent use and intended for tests of code that accepts a Navigator.
type TestNavigator struct {
	mu   sync.Mutex
	urls []string
}

// Navigate records u.  Use it as a Navigator: nav.Navigate
func (n *TestNavigator) Navigate(u string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.urls = append(n.urls, u)
}

// URLs returns a copy of the recorded urls, in order.
func (n *TestNavigator) URLs() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.urls...)
}

// Count returns the number of navigations recorded.
func (n *TestNavigator) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.urls)
}
