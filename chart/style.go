// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "image/color"

// Default colors. The bull/bear defaults follow the red-up, green-down
// convention of the markets this engine was first written for.
var (
	DefaultBullColor   = color.RGBA{0xe0, 0x30, 0x30, 0xff}
	DefaultBearColor   = color.RGBA{0x20, 0xa0, 0x40, 0xff}
	DefaultGridColor   = color.RGBA{0xd3, 0xd3, 0xd3, 0xff}
	DefaultTextColor   = color.RGBA{0x20, 0x20, 0x20, 0xff}
	DefaultBorderColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	DefaultBackground  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	DefaultCursorColor = color.RGBA{0x60, 0x60, 0x60, 0xff}
)

// Stylers is a list of styling functions for a style type S.
// They run in the order added, on top of the style defaults.
type Stylers[S any] []func(s *S)

// Add adds a styling function to the list.
func (st *Stylers[S]) Add(f func(s *S)) {
	*st = append(*st, f)
}

// Run runs the styling functions on the given style.
func (st Stylers[S]) Run(s *S) {
	for _, f := range st {
		f(s)
	}
}

// Dash is the stroke pattern of a line.
type Dash int32

const (
	Solid Dash = iota
	Dashed
	Dotted
)

// Pattern returns the on/off lengths in pixels, nil for solid lines.
func (d Dash) Pattern() []float32 {
	switch d {
	case Dashed:
		return []float32{6, 4}
	case Dotted:
		return []float32{1, 3}
	}
	return nil
}

// Padding is the space between a panel region and its plot area.
type Padding struct {
	Left, Top, Right, Bottom float32
}

// GridStyle has the properties of grid lines.
type GridStyle struct {
	// Color of the lines; nil disables the grid.
	Color color.Color

	// Width in pixels.
	Width float32

	// Dash is the stroke pattern.
	Dash Dash

	// TailLength extends lines past the plot area edge on the
	// label side, in pixels.
	TailLength float32
}

func (gs *GridStyle) Defaults() {
	gs.Color = DefaultGridColor
	gs.Width = 1
	gs.TailLength = 3
}

// LabelStyle has the properties of text labels.
type LabelStyle struct {
	// Color of the text; nil disables the labels.
	Color color.Color

	// Size is the font size in pixels.
	Size float32

	// Spacing is the gap between the labels and the plot area.
	Spacing float32

	// MinSpacing is the minimum gap kept between neighboring labels.
	MinSpacing float32

	// MaxOverlap is how many pixels two labels may overlap (after
	// MinSpacing is added) before the later one is dropped.
	MaxOverlap float32
}

func (ls *LabelStyle) Defaults() {
	ls.Color = DefaultTextColor
	ls.Size = 13
	ls.Spacing = 2
	ls.MinSpacing = 4
}

// CandleStyle has the properties of a [CandleDrawer].
type CandleStyle struct {
	// BullColor is used when close >= open.
	BullColor color.Color

	// BearColor is used when close < open.
	BearColor color.Color

	// BullFill fills bull bodies; otherwise they are outlined.
	BullFill bool

	// BearFill fills bear bodies; otherwise they are outlined.
	BearFill bool

	// WickWidth is the high-low line width in pixels.
	WickWidth float32

	// BodyWidth is the body width as a fraction of one index slot.
	BodyWidth float64 `min:"0.01" max:"1" default:"0.8"`

	// MinBodyHeight keeps doji bodies visible, in pixels.
	MinBodyHeight float32
}

func (cs *CandleStyle) Defaults() {
	cs.BullColor = DefaultBullColor
	cs.BearColor = DefaultBearColor
	cs.BullFill = true
	cs.BearFill = true
	cs.WickWidth = 1
	cs.BodyWidth = 0.8
	cs.MinBodyHeight = 1
}

// HistogramStyle has the properties of a [HistogramDrawer].
type HistogramStyle struct {
	// PositiveColor fills bars at or above the baseline.
	PositiveColor color.Color

	// NegativeColor fills bars below the baseline.
	NegativeColor color.Color

	// Outline strokes the bars if non-nil.
	Outline color.Color

	// BarWidth is the bar width as a fraction of one index slot.
	BarWidth float64 `min:"0.01" max:"1" default:"1"`

	// Baseline is the value bars start from.
	Baseline float64
}

func (hs *HistogramStyle) Defaults() {
	hs.PositiveColor = DefaultBullColor
	hs.NegativeColor = DefaultBearColor
	hs.BarWidth = 1
}

// PanelStyle has the properties of a [Panel].
type PanelStyle struct {
	// Background fills the panel region on every render; nil leaves
	// the clear to the surface default.
	Background color.Color

	// BorderVisible draws a border around the plot area.
	BorderVisible bool

	// BorderColor is the plot area border color.
	BorderColor color.Color

	// BorderWidth is the border width in pixels.
	BorderWidth float32

	// Padding separates the plot area from the region edges
	// and leaves room for axis labels.
	Padding Padding

	// YScale enlarges auto-fitted value ranges around their middle.
	YScale float64 `default:"1.1"`
}

func (ps *PanelStyle) Defaults() {
	ps.Background = DefaultBackground
	ps.BorderVisible = true
	ps.BorderColor = DefaultBorderColor
	ps.BorderWidth = 1
	ps.Padding = Padding{Left: 64, Top: 8, Right: 8, Bottom: 24}
	ps.YScale = 1.1
}

// CrossHairStyle has the properties of a [CrossHair].
type CrossHairStyle struct {
	// Color of the cross-hair lines.
	Color color.Color

	// Width in pixels.
	Width float32

	// Dash is the stroke pattern.
	Dash Dash

	// Labels draws the formatted position next to the plot area.
	Labels bool

	// Label has the style of the position labels.
	Label LabelStyle
}

func (cs *CrossHairStyle) Defaults() {
	cs.Color = DefaultCursorColor
	cs.Width = 1
	cs.Dash = Dashed
	cs.Labels = true
	cs.Label.Defaults()
}
