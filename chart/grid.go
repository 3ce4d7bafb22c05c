// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"sort"

	"cogentcore.org/core/math32"
)

// gridSettings are the inputs of a [LineGridDrawer] besides the axes.
type gridSettings struct {
	style  GridStyle
	orient Orientation
	ticks  tickSettings
	n      int
}

// LineGridDrawer draws reference lines across the plot area, at the
// ticks of an axis or at the positions held by a float64 source.
// It is drawn in the [Background] layer.
type LineGridDrawer struct {
	drawerBase[gridSettings]

	// Style has the properties used to render the lines.
	Style GridStyle

	// Orientation is the axis the line positions are on: lines at X
	// positions are vertical and lines at Y values are horizontal.
	// The tail extends below the plot area for Horizontal and left
	// of it for Vertical.
	Orientation Orientation

	stylers Stylers[GridStyle]
	rec     Records[float64]
}

// NewLineGridDrawer returns a grid drawer with lines at the ticks
// of the X axis (Horizontal) or the Y axis (Vertical).
func NewLineGridDrawer(orient Orientation) *LineGridDrawer {
	gd := &LineGridDrawer{Orientation: orient}
	gd.kind = "LineGridDrawer"
	gd.Defaults()
	return gd
}

// NewLineGridSourceDrawer returns a grid drawer with lines at the
// positions in a float64 source, which must be appended in
// non-decreasing order.
func NewLineGridSourceDrawer(src Source, orient Orientation) *LineGridDrawer {
	gd := NewLineGridDrawer(orient)
	gd.src = src
	return gd
}

func (gd *LineGridDrawer) Defaults() {
	gd.Style.Defaults()
}

// Styler adds a styling function, run before each prepare.
func (gd *LineGridDrawer) Styler(f func(s *GridStyle)) *LineGridDrawer {
	gd.stylers.Add(f)
	return gd
}

func (gd *LineGridDrawer) ApplyStyle() {
	gd.stylers.Run(&gd.Style)
}

func (gd *LineGridDrawer) Layer() Layer { return Background }

func (gd *LineGridDrawer) Bind() error {
	if gd.src == nil {
		return nil
	}
	rec, err := bindRecords[float64](&gd.drawerBase)
	if err != nil {
		return err
	}
	gd.rec = rec
	return nil
}

// positions appends the visible line positions to dst.
func (gd *LineGridDrawer) positions(ax *Axis, dst []float64) []float64 {
	if gd.rec == nil {
		return append(dst, ax.Ticks()...)
	}
	lo, hi := ax.Range()
	all := gd.rec.Slice(0, gd.rec.Len())
	i := sort.SearchFloat64s(all, lo)
	for ; i < len(all) && all[i] <= hi; i++ {
		dst = append(dst, all[i])
	}
	return dst
}

func (gd *LineGridDrawer) Prepare(vr IndexRange, x, y *Axis) (*Geometry, error) {
	if gd.src != nil && gd.rec == nil {
		return nil, ErrUnbound
	}
	if err := checkAxes(gd.kind, x, y, true); err != nil {
		return nil, err
	}
	gd.ApplyStyle()
	st := &gd.Style
	vert := gd.Orientation == Vertical
	ax := x
	if vert {
		ax = y
	}
	set := gridSettings{style: *st, orient: gd.Orientation, n: gd.n}
	if gd.rec == nil {
		set.ticks = ax.tickSettings()
	}
	g, ok := gd.cached(gd.makeKey(vr, x, y, set))
	if ok || st.Color == nil {
		return g, nil
	}
	left, right := x.Extent()
	bottom, top := y.Extent()
	ls := LineStyle{Color: st.Color, Width: st.Width, Dash: st.Dash}
	var pos [16]float64
	for _, v := range gd.positions(ax, pos[:0]) {
		p := ax.PX(v)
		if vert {
			g.Lines = append(g.Lines, LinePrim{
				From:  math32.Vec2(float32(left)-st.TailLength, p),
				To:    math32.Vec2(float32(right), p),
				Style: ls,
			})
			continue
		}
		g.Lines = append(g.Lines, LinePrim{
			From:  math32.Vec2(p, float32(top)),
			To:    math32.Vec2(p, float32(bottom)+st.TailLength),
			Style: ls,
		})
	}
	return g, nil
}
