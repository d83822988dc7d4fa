// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yhat/scrape"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()
	c := NewConfig("abc123", "auth.example.com", "https://app.example.com/callback")
	want := LoginURL(c)

	tests := []struct {
		name       string
		c          Config
		method     string
		opt        []Option
		wantStatus int
		wantURL    string
		wantBody   bool
	}{
		{
			name:       "get",
			c:          c,
			method:     http.MethodGet,
			wantStatus: http.StatusFound,
			wantURL:    want,
			wantBody:   true,
		},
		{
			name:       "head",
			c:          c,
			method:     http.MethodHead,
			wantStatus: http.StatusFound,
			wantURL:    want,
		},
		{
			name:       "see-other",
			c:          c,
			method:     http.MethodGet,
			opt:        []Option{WithRedirectStatus(http.StatusSeeOther)},
			wantStatus: http.StatusSeeOther,
			wantURL:    want,
			wantBody:   true,
		},
		{
			name:       "empty-config",
			c:          Config{},
			method:     http.MethodGet,
			wantStatus: http.StatusFound,
			wantURL:    "https:///login?client_id=&response_type=code&scope=openid email&redirect_uri=",
			wantBody:   true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert, require := assert.New(t), require.New(t)
			h := LoginHandler(tt.c, tt.opt...)

			req := httptest.NewRequest(tt.method, "/login", nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()
			assert.Equal(tt.wantStatus, resp.StatusCode)
			require.Len(resp.Header.Values("Location"), 1)
			assert.Equal(tt.wantURL, resp.Header.Get("Location"))

			if !tt.wantBody {
				assert.Empty(rec.Body.String())
				return
			}
			root, err := html.Parse(rec.Body)
			require.NoError(err)
			links := scrape.FindAll(root, scrape.ByTag(atom.A))
			require.Len(links, 1)
			assert.Equal(tt.wantURL, scrape.Attr(links[0], "href"))
		})
	}
}

func TestLoginHandler_EachRequestIsOneLogin(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Debug,
	})
	c := NewConfig("abc123", "auth.example.com", "https://app.example.com/callback")
	h := LoginHandler(c, WithLogger(logger))

	var locations []string
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
		locations = append(locations, rec.Header().Get("Location"))
	}
	assert.Equal([]string{LoginURL(c), LoginURL(c), LoginURL(c)}, locations)
	assert.Equal(3, bytes.Count(buf.Bytes(), []byte("initiating login")))
}
