// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.
// Values decoded from JSON arrive as float64; files written by hand may
// quote numbers and booleans, so getters accept strings too.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing. The empty name
// addresses the top-level keys.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	switch v := c[sectionName].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults adds the keys of defaults missing from the section,
// creating the section when needed. Existing keys are never overwritten.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || len(defaults) == 0 {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section, len(defaults))
		c[sectionName] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) lookup(sectionName, key string) (interface{}, bool) {
	v, ok := c.Section(sectionName)[key]
	return v, ok
}

// GetString returns a string value, or defaultValue when the key is missing
// or not a string.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	if s, ok := c.lookup(sectionName, key); ok {
		if str, ok := s.(string); ok {
			return str
		}
	}
	return defaultValue
}

// GetInt returns an integer value. Fractional numbers are truncated.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	raw, ok := c.lookup(sectionName, key)
	if !ok {
		return defaultValue
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

// GetBool returns a boolean value. Numbers are true when non-zero.
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	raw, ok := c.lookup(sectionName, key)
	if !ok {
		return defaultValue
	}
	switch v := raw.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n != 0
		}
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
