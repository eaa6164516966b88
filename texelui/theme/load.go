// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/theme/load.go
// Summary: Theme file decoding (JSON and YAML).

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/framegrace/texelslider/defaults"
)

// file is the on-disk layout: {"name": "...", "sections": {"slider": {"bg_color": "#hex"}}}.
type file struct {
	Name     string                       `json:"name" yaml:"name"`
	Sections map[string]map[string]string `json:"sections" yaml:"sections"`
}

// Default parses the embedded default theme.
func Default() (*Theme, error) {
	data, err := defaults.Theme()
	if err != nil {
		return nil, fmt.Errorf("theme: read embedded default: %w", err)
	}
	return ParseJSON(data)
}

// LoadFile reads a theme from disk. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON decodes a JSON theme document.
func ParseJSON(data []byte) (*Theme, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: decode json: %w", err)
	}
	return f.build()
}

// ParseYAML decodes a YAML theme document.
func ParseYAML(data []byte) (*Theme, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: decode yaml: %w", err)
	}
	return f.build()
}

func (f file) build() (*Theme, error) {
	name := f.Name
	if name == "" {
		name = "custom"
	}
	t := New(name)
	for section, keys := range f.Sections {
		for key, literal := range keys {
			c, err := ParseColor(literal)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", section, key, err)
			}
			t.Set(section, key, c)
		}
	}
	return t, nil
}
