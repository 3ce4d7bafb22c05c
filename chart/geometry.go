// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "cogentcore.org/core/math32"

// IndexRange is a half-open range [Begin, End) of record indexes.
type IndexRange struct {
	Begin, End int
}

// Len returns the number of indexes in the range.
func (r IndexRange) Len() int {
	return max(0, r.End-r.Begin)
}

// Clamp limits the range to [0, n).
func (r IndexRange) Clamp(n int) IndexRange {
	return IndexRange{Begin: clampInt(r.Begin, 0, n), End: clampInt(r.End, 0, n)}
}

// LinePrim is a prepared line.
type LinePrim struct {
	From, To math32.Vector2
	Style    LineStyle
}

// RectPrim is a prepared rectangle. Index is the record it was
// prepared from, or -1.
type RectPrim struct {
	Box   math32.Box2
	Style FillStyle
	Index int
}

// TextPrim is a prepared text with its upper left corner at Pos
// and its measured bounds in Box.
type TextPrim struct {
	Pos   math32.Vector2
	Box   math32.Box2
	Text  string
	Style TextStyle
}

// Geometry is the render-ready output of [Drawer.Prepare]: pixel-space
// primitives drawn in the order lines, rectangles, texts.
type Geometry struct {
	Lines []LinePrim
	Rects []RectPrim
	Texts []TextPrim
}

// Reset empties the geometry, keeping the allocated storage.
func (g *Geometry) Reset() {
	g.Lines = g.Lines[:0]
	g.Rects = g.Rects[:0]
	g.Texts = g.Texts[:0]
}

// Len returns the total number of primitives.
func (g *Geometry) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Lines) + len(g.Rects) + len(g.Texts)
}

// Draw emits all primitives onto the surface.
func (g *Geometry) Draw(s Surface) {
	if g == nil {
		return
	}
	for i := range g.Lines {
		ln := &g.Lines[i]
		s.DrawLine(ln.From, ln.To, ln.Style)
	}
	for i := range g.Rects {
		rc := &g.Rects[i]
		s.DrawRect(rc.Box, rc.Style)
	}
	for i := range g.Texts {
		tx := &g.Texts[i]
		s.DrawText(tx.Pos, tx.Text, tx.Style)
	}
}

// box returns the box spanning two corners in any order.
func box(x0, y0, x1, y1 float32) math32.Box2 {
	return math32.Box2{
		Min: math32.Vec2(min(x0, x1), min(y0, y1)),
		Max: math32.Vec2(max(x0, x1), max(y0, y1)),
	}
}
