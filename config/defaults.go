// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration file.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"activeTheme": "",
	})
	cfg.RegisterDefaults("slider", Section{
		"min":      0,
		"max":      100,
		"value":    0,
		"delta":    1,
		"vertical": false,
	})
	cfg.RegisterDefaults("propstore", Section{
		"enabled": true,
		"path":    "",
	})
}
