// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package server

import (
	"html/template"
	"net/http"

	"github.com/grittonbelldev/hostedlogin/hostedui"
)

var homeTmpl = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Your Health Journal</title>
</head>
<body>
  <main>
    <h1>Your Health Journal</h1>
    <p>Track meals, food and glucose readings in one place.</p>
    <a id="login" href="{{.LoginPath}}">Log in</a>
  </main>
</body>
</html>
`))

// homeHandler renders the landing page.  Its one control sends the browser to
// the login route, so each click is one login.
func homeHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct{ LoginPath string }{hostedui.LoginPath}
	if err := homeTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
