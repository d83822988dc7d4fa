// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui_test

import (
	"fmt"
	"net/http"

	"github.com/grittonbelldev/hostedlogin/hostedui"
)

func ExampleLoginURL() {
	c := hostedui.NewConfig("abc123", "auth.example.com", "https://app.example.com/callback")
	fmt.Println(hostedui.LoginURL(c))
	// Output:
	// https://auth.example.com/login?client_id=abc123&response_type=code&scope=openid email&redirect_uri=https://app.example.com/callback
}

func ExampleLoginRedirector() {
	c := hostedui.NewConfig("abc123", "auth.example.com", "https://app.example.com/callback")
	r, err := hostedui.NewLoginRedirector(c, func(u string) { fmt.Println("navigate:", u) })
	if err != nil {
		// handle error
	}
	r.InitiateLogin()
	// Output:
	// navigate: https://auth.example.com/login?client_id=abc123&response_type=code&scope=openid email&redirect_uri=https://app.example.com/callback
}

func ExampleLoginHandler() {
	c := hostedui.NewConfig("your_client_id", "your-domain.auth.us-east-1.amazoncognito.com", "http://localhost:4200/callback")
	http.HandleFunc("/login", hostedui.LoginHandler(c))
}
