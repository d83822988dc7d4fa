// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hostedui

import (
	"errors"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNilParameter     = errors.New("nil parameter")
	ErrInvalidDomain    = errors.New("invalid domain")
	ErrInvalidRedirect  = errors.New("invalid redirect uri")
)
