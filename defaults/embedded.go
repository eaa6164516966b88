// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration and theme files.

package defaults

import "embed"

//go:embed texelslider.json theme.json
var fs embed.FS

// SystemConfig returns the embedded system config JSON.
func SystemConfig() ([]byte, error) {
	return fs.ReadFile("texelslider.json")
}

// Theme returns the embedded default theme JSON.
func Theme() ([]byte, error) {
	return fs.ReadFile("theme.json")
}
