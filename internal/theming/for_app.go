// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theming/for_app.go
// Summary: Merges colour overrides from the config file into a theme.

package theming

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/framegrace/texelslider/config"
	"github.com/framegrace/texelslider/texelui/theme"
)

const overridesKey = "theme_overrides"

// ForConfig returns base merged with the config's theme_overrides section,
// e.g. {"theme_overrides": {"slider": {"border_color": "#ff0000"}}}.
// Unparseable entries are logged and skipped.
func ForConfig(base *theme.Theme, cfg config.Config) *theme.Theme {
	overrides := overridesFromConfig(cfg)
	if overrides == nil {
		return base
	}
	return base.WithOverrides(overrides)
}

func overridesFromConfig(cfg config.Config) *theme.Theme {
	section := cfg.Section(overridesKey)
	if len(section) == 0 {
		return nil
	}
	out := theme.New("overrides")
	names := make([]string, 0, len(section))
	for name := range section {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		var keys map[string]interface{}
		switch v := section[name].(type) {
		case map[string]interface{}:
			keys = v
		case config.Section:
			keys = v
		default:
			log.Printf("Theming: %s.%s is not an object", overridesKey, name)
			continue
		}
		for key, raw := range keys {
			c, err := parse(raw)
			if err != nil {
				log.Printf("Theming: %s.%s.%s: %v", overridesKey, name, key, err)
				continue
			}
			out.Set(name, key, c)
		}
	}
	return out
}

func parse(raw interface{}) (color.NRGBA, error) {
	s, ok := raw.(string)
	if !ok {
		return color.NRGBA{}, fmt.Errorf("colour must be a string, got %T", raw)
	}
	return theme.ParseColor(s)
}
