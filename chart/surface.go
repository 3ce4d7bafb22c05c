// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Surface is the drawing target provided by the host. All positions
// are in pixels, with Y growing downwards. The engine does no
// rasterization of its own.
type Surface interface {
	// Clear fills the region with bg, or resets it to the surface
	// default if bg is nil.
	Clear(r image.Rectangle, bg color.Color)

	// DrawLine strokes a straight line.
	DrawLine(from, to math32.Vector2, st LineStyle)

	// DrawRect fills and/or strokes a rectangle.
	DrawRect(box math32.Box2, st FillStyle)

	// DrawText draws text with its upper left corner at pos.
	DrawText(pos math32.Vector2, text string, st TextStyle)
}

// LineStyle is the stroke of a line primitive.
type LineStyle struct {
	Color color.Color
	Width float32
	Dash  Dash
}

// FillStyle is the paint of a rectangle primitive. A nil Fill draws
// only the outline and a nil Stroke draws no outline.
type FillStyle struct {
	Fill   color.Color
	Stroke color.Color
	Width  float32
}

// TextStyle is the paint of a text primitive.
type TextStyle struct {
	Color color.Color
	Size  float32
}

// TextMeasurer returns the size of rendered text.
type TextMeasurer interface {
	MeasureText(text string, size float32) math32.Vector2
}

// FaceMeasurer measures text with a fixed [font.Face] scaled to the
// requested size.
type FaceMeasurer struct {
	Face font.Face

	// Height is the pixel height the face is designed at.
	Height float32
}

// DefaultMeasurer measures with the 7x13 basic font, matching the
// text drawn by the raster surface.
var DefaultMeasurer TextMeasurer = FaceMeasurer{Face: basicfont.Face7x13, Height: 13}

func (fm FaceMeasurer) MeasureText(text string, size float32) math32.Vector2 {
	if text == "" {
		return math32.Vector2{}
	}
	sc := float32(1)
	if fm.Height > 0 && size > 0 {
		sc = size / fm.Height
	}
	w := float32(font.MeasureString(fm.Face, text).Ceil())
	return math32.Vec2(w*sc, fm.Height*sc)
}
