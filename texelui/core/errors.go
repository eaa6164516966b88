// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/errors.go
// Summary: Error taxonomy shared by widgets and the UI host.

package core

import "errors"

var (
	// ErrInvalidArgument reports a nil widget, an out-of-range value or a
	// widget state that cannot be painted.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports an unknown property name.
	ErrNotFound = errors.New("not found")
)
