// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelslider configuration and state.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName = "texelslider"
	stateDBName   = "state.db"
	themesDirName = "themes"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configDirName), nil
}

func systemConfigPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

// StatePath returns the property store database path: the configured
// propstore.path, or state.db in the config directory.
func StatePath(cfg Config) (string, error) {
	if p := cfg.GetString("propstore", "path", ""); p != "" {
		return p, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, stateDBName), nil
}

// ThemePath resolves the activeTheme setting. An empty name selects the
// built-in theme and returns "". Absolute paths are used as given; other
// names are looked up in the themes directory as .json, .yaml or .yml.
func ThemePath(cfg Config) (string, error) {
	name := cfg.GetString("", "activeTheme", "")
	if name == "" {
		return "", nil
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	for _, ext := range []string{"", ".json", ".yaml", ".yml"} {
		p := filepath.Join(root, themesDirName, name+ext)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("theme %q not found in %s", name, filepath.Join(root, themesDirName))
}
