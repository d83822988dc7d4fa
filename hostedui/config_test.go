// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	got := NewConfig("abc123", "auth.example.com", "https://app.example.com/callback")
	assert.Equal(Config{
		ClientId:    "abc123",
		Domain:      "auth.example.com",
		RedirectUri: "https://app.example.com/callback",
	}, got)

	// composing never validates
	assert.Equal(Config{}, NewConfig("", "", ""))
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		c          Config
		wantErrs   int
		wantIsErrs []error
	}{
		{
			name: "valid",
			c:    NewConfig("abc123", "auth.example.com", "https://app.example.com/callback"),
		},
		{
			name: "valid-localhost-redirect",
			c:    NewConfig("abc123", "auth.example.com", "http://localhost:4200"),
		},
		{
			name:       "empty",
			c:          Config{},
			wantErrs:   3,
			wantIsErrs: []error{ErrInvalidParameter},
		},
		{
			name:       "domain-with-scheme",
			c:          NewConfig("abc123", "https://auth.example.com", "https://app.example.com/callback"),
			wantErrs:   1,
			wantIsErrs: []error{ErrInvalidDomain},
		},
		{
			name:       "domain-with-path",
			c:          NewConfig("abc123", "auth.example.com/login", "https://app.example.com/callback"),
			wantErrs:   1,
			wantIsErrs: []error{ErrInvalidDomain},
		},
		{
			name:       "relative-redirect",
			c:          NewConfig("abc123", "auth.example.com", "/callback"),
			wantErrs:   1,
			wantIsErrs: []error{ErrInvalidRedirect},
		},
		{
			name:       "unparsable-redirect",
			c:          NewConfig("abc123", "auth.example.com", "https://app.example.com/%zz"),
			wantErrs:   1,
			wantIsErrs: []error{ErrInvalidRedirect},
		},
		{
			name:       "all-wrong",
			c:          NewConfig("", "https://auth.example.com", "callback"),
			wantErrs:   3,
			wantIsErrs: []error{ErrInvalidParameter, ErrInvalidDomain, ErrInvalidRedirect},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert, require := assert.New(t), require.New(t)
			err := tt.c.Validate()
			if tt.wantErrs == 0 {
				require.NoError(err)
				return
			}
			require.Error(err)
			var merr *multierror.Error
			require.True(errors.As(err, &merr))
			assert.Len(merr.Errors, tt.wantErrs)
			for _, want := range tt.wantIsErrs {
				assert.ErrorIs(err, want)
			}
		})
	}
}
