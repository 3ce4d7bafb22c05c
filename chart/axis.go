// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"cogentcore.org/core/math32/minmax"
)

// Orientation is the direction an [Axis] runs on the surface.
type Orientation int32

const (
	// Horizontal axes map onto surface X, left to right.
	Horizontal Orientation = iota

	// Vertical axes map onto surface Y, bottom to top.
	Vertical
)

// Domain is the kind of values an [Axis] maps.
type Domain int32

const (
	// IndexDomain axes map record indexes; record i occupies [i, i+1).
	IndexDomain Domain = iota

	// ValueDomain axes map record values such as prices.
	ValueDomain
)

// AxisStyle has the decoration settings of an [Axis].
type AxisStyle struct {
	// Grid makes [Panel.AddAxis] add a [LineGridDrawer] on the axis ticks.
	Grid bool

	// Labels makes [Panel.AddAxis] add a tick [TextLabelDrawer].
	Labels bool

	// NiceTicks uses rounded tick values for value axes instead of
	// an even split of the range.
	NiceTicks bool

	// SkipLowestTick drops a tick sitting on the low end of the range,
	// where its label cannot be printed in full.
	SkipLowestTick bool

	// GridStyle has the style of the axis grid lines.
	GridStyle GridStyle

	// Label has the style of the tick labels.
	Label LabelStyle
}

// Axis maps a domain range onto a pixel extent with an affine function.
// The visible range [lo, hi] is only changed through [Axis.SetRange]
// (and Pan/Zoom, which use it), so a range is either fully applied
// or rejected.
type Axis struct {
	// Name identifies the axis in errors and logs.
	Name string

	// Orientation is the direction of the axis on the surface.
	Orientation Orientation

	// Domain is the kind of values mapped.
	Domain Domain

	// LabelCount is the desired number of tick labels.
	LabelCount int

	// AutoFit makes the owning [Panel] fit this axis to the visible
	// data on every render. Only meaningful for value axes.
	AutoFit bool

	// Format formats tick and cross-hair values. Defaults depend on Domain.
	Format func(v float64) string

	// Style has the decoration settings.
	Style AxisStyle

	rng     minmax.F64
	p0, p1  float64
	cursor  bool
	version uint64
}

// NewAxis returns a new axis with defaults for the given orientation
// and domain. Axes support the cross-hair cursor unless turned off with
// [Axis.SetCursor].
func NewAxis(name string, orient Orientation, dom Domain) *Axis {
	ax := &Axis{Name: name, Orientation: orient, Domain: dom, cursor: true}
	ax.Defaults()
	return ax
}

// NewIndexAxis returns a horizontal index axis showing [0, 10).
func NewIndexAxis() *Axis {
	return NewAxis("x", Horizontal, IndexDomain)
}

// NewValueAxis returns a vertical value axis that fits the visible data.
func NewValueAxis() *Axis {
	return NewAxis("y", Vertical, ValueDomain)
}

func (ax *Axis) Defaults() {
	ax.LabelCount = 5
	ax.Style.Grid = true
	ax.Style.Labels = true
	ax.Style.GridStyle.Defaults()
	ax.Style.Label.Defaults()
	if ax.Domain == IndexDomain {
		ax.rng.Set(0, 10)
		ax.Format = FormatIndex
	} else {
		ax.rng.Set(0, 1)
		ax.AutoFit = true
		ax.Style.NiceTicks = true
		ax.Format = FormatValue
	}
	if ax.Orientation == Vertical {
		ax.Style.SkipLowestTick = true
	}
	ax.p0, ax.p1 = 0, 1
}

// Range returns the visible range.
func (ax *Axis) Range() (lo, hi float64) {
	return ax.rng.Min, ax.rng.Max
}

// SetRange replaces the visible range. It returns a [*RangeError]
// wrapping [ErrInvalidRange] if lo > hi or either bound is not finite,
// in which case the range is left unchanged.
func (ax *Axis) SetRange(lo, hi float64) error {
	if !finite(lo) || !finite(hi) || lo > hi {
		return &RangeError{Axis: ax.Name, Lo: lo, Hi: hi}
	}
	if ax.rng.Min == lo && ax.rng.Max == hi {
		return nil
	}
	ax.rng.Set(lo, hi)
	ax.version++
	return nil
}

// SetExtent sets the pixel positions of the low and high end of the
// range. Vertical axes pass the bottom of the plot area as p0.
func (ax *Axis) SetExtent(p0, p1 float64) {
	if ax.p0 == p0 && ax.p1 == p1 {
		return
	}
	ax.p0, ax.p1 = p0, p1
	ax.version++
}

// Extent returns the pixel extent set by [Axis.SetExtent].
func (ax *Axis) Extent() (p0, p1 float64) {
	return ax.p0, ax.p1
}

// Version changes whenever the range or the extent changes.
func (ax *Axis) Version() uint64 {
	return ax.version
}

// span is the domain width used for mapping; an empty range maps
// like a unit range so the mapping stays invertible.
func (ax *Axis) span() float64 {
	if r := ax.rng.Range(); r > 0 {
		return r
	}
	return 1
}

// Scale returns pixels per domain unit.
func (ax *Axis) Scale() float64 {
	return (ax.p1 - ax.p0) / ax.span()
}

// ToPixel maps a domain value to a pixel position.
func (ax *Axis) ToPixel(v float64) float64 {
	return ax.p0 + (v-ax.rng.Min)*ax.Scale()
}

// ToDomain maps a pixel position to a domain value. It is the inverse
// of [Axis.ToPixel]; with an empty pixel extent it returns the low end
// of the range.
func (ax *Axis) ToDomain(px float64) float64 {
	sc := ax.Scale()
	if sc == 0 {
		return ax.rng.Min
	}
	return ax.rng.Min + (px-ax.p0)/sc
}

// PX is [Axis.ToPixel] as float32, for geometry.
func (ax *Axis) PX(v float64) float32 {
	return float32(ax.ToPixel(v))
}

// Contains reports whether v is inside the visible range.
func (ax *Axis) Contains(v float64) bool {
	return ax.rng.InRange(v)
}

// SupportsCursor reports whether a cross-hair can be drawn on this axis.
func (ax *Axis) SupportsCursor() bool {
	return ax.cursor
}

// SetCursor sets the cursor capability.
func (ax *Axis) SetCursor(on bool) *Axis {
	ax.cursor = on
	return ax
}

// Pan shifts the range by delta domain units.
func (ax *Axis) Pan(delta float64) error {
	return ax.SetRange(ax.rng.Min+delta, ax.rng.Max+delta)
}

// Zoom scales the range width by factor around the domain value anchor,
// which keeps its pixel position. A factor below 1 zooms in.
func (ax *Axis) Zoom(factor, anchor float64) error {
	if !finite(factor) || factor <= 0 || !finite(anchor) {
		return &RangeError{Axis: ax.Name, Lo: ax.rng.Min * factor, Hi: ax.rng.Max * factor}
	}
	lo := anchor - (anchor-ax.rng.Min)*factor
	hi := anchor + (ax.rng.Max-anchor)*factor
	return ax.SetRange(lo, hi)
}

// checkCursor returns a [*CapabilityError] if the axis has no cursor.
func (ax *Axis) checkCursor() error {
	if !ax.cursor {
		return &CapabilityError{Axis: ax.Name, Capability: "cross-hair cursor"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
