// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/cell.go
// Summary: Terminal cell stored in the UIManager framebuffer.

package core

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Cell is one character cell of a composed frame.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// cloneBuffer deep-copies a framebuffer.
func cloneBuffer(buf [][]Cell) [][]Cell {
	out := make([][]Cell, len(buf))
	for y, row := range buf {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// TcellColor converts c to a tcell colour; transparent maps to the terminal
// default.
func TcellColor(c color.NRGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
