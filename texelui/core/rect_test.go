// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/rect_test.go
// Summary: Rectangle containment, intersection and dirty-region merging.

package core

import "testing"

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 40, Y: 0, W: 20, H: 20}
	tests := []struct {
		x, y int
		want bool
	}{
		{40, 0, true},
		{59, 19, true},
		{60, 0, false},
		{40, 20, false},
		{39, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if (Rect{X: 1, Y: 1}).Contains(1, 1) {
		t.Errorf("empty rect should contain nothing")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if got := a.Intersect(Rect{X: 5, Y: 5, W: 10, H: 10}); got != (Rect{X: 5, Y: 5, W: 5, H: 5}) {
		t.Fatalf("unexpected overlap %+v", got)
	}
	if got := a.Intersect(Rect{X: 10, Y: 0, W: 5, H: 5}); !got.Empty() {
		t.Fatalf("adjacent rects should not intersect, got %+v", got)
	}
}

func TestMergeRects(t *testing.T) {
	in := []Rect{
		{X: 0, Y: 0, W: 5, H: 2},
		{X: 5, Y: 0, W: 5, H: 2},
		{X: 20, Y: 20, W: 1, H: 1},
		{X: 3, Y: 3, W: 0, H: 4},
	}
	out := mergeRects(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 rects after merge, got %v", out)
	}
	if out[0] != (Rect{X: 0, Y: 0, W: 10, H: 2}) {
		t.Fatalf("adjacent rects not merged: %+v", out[0])
	}
}
