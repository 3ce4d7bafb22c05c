// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"cogentcore.org/core/math32"
)

// CandleDrawer draws [Candle] records as a wick from low to high
// and a body from open to close, colored by direction.
type CandleDrawer struct {
	drawerBase[CandleStyle]

	// Style has the properties used to render the candles.
	Style CandleStyle

	rec     Records[Candle]
	stylers Stylers[CandleStyle]
}

// NewCandleDrawer returns a new candle drawer for the given source,
// which must hold [Candle] records when the drawer is bound.
func NewCandleDrawer(src Source) *CandleDrawer {
	cd := &CandleDrawer{}
	cd.kind = "CandleDrawer"
	cd.src = src
	cd.indexed = true
	cd.Defaults()
	return cd
}

func (cd *CandleDrawer) Defaults() {
	cd.Style.Defaults()
}

// Styler adds a styling function, run before each prepare.
func (cd *CandleDrawer) Styler(f func(s *CandleStyle)) *CandleDrawer {
	cd.stylers.Add(f)
	return cd
}

func (cd *CandleDrawer) ApplyStyle() {
	cd.stylers.Run(&cd.Style)
}

func (cd *CandleDrawer) Layer() Layer { return Data }

func (cd *CandleDrawer) Bind() error {
	rec, err := bindRecords[Candle](&cd.drawerBase)
	if err != nil {
		return err
	}
	cd.rec = rec
	return nil
}

func (cd *CandleDrawer) Prepare(vr IndexRange, x, y *Axis) (*Geometry, error) {
	if cd.rec == nil {
		return nil, ErrUnbound
	}
	if err := checkAxes(cd.kind, x, y, true); err != nil {
		return nil, err
	}
	cd.ApplyStyle()
	st := &cd.Style
	g, ok := cd.cached(cd.makeKey(vr, x, y, *st))
	if ok {
		return g, nil
	}
	half := st.BodyWidth / 2
	for k, c := range cd.rec.Slice(vr.Begin, vr.End) {
		i := float64(vr.Begin + k)
		clr, fill := st.BearColor, st.BearFill
		if c.Bull() {
			clr, fill = st.BullColor, st.BullFill
		}
		xc := x.PX(i + 0.5)
		g.Lines = append(g.Lines, LinePrim{
			From:  math32.Vec2(xc, y.PX(c.High)),
			To:    math32.Vec2(xc, y.PX(c.Low)),
			Style: LineStyle{Color: clr, Width: st.WickWidth},
		})
		top, bot := y.PX(c.Open), y.PX(c.Close)
		if d := math32.Abs(top - bot); d < st.MinBodyHeight {
			mid := (top + bot) / 2
			top, bot = mid-st.MinBodyHeight/2, mid+st.MinBodyHeight/2
		}
		rs := FillStyle{Stroke: clr, Width: st.WickWidth}
		if fill {
			rs.Fill = clr
		}
		g.Rects = append(g.Rects, RectPrim{
			Box:   box(x.PX(i+0.5-half), top, x.PX(i+0.5+half), bot),
			Style: rs,
			Index: vr.Begin + k,
		})
	}
	return g, nil
}

// ValueRange returns the lowest low and the highest high of the
// visible candles.
func (cd *CandleDrawer) ValueRange(vr IndexRange) (lo, hi float64, ok bool) {
	if cd.rec == nil {
		return 0, 0, false
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range cd.rec.Slice(vr.Begin, vr.End) {
		lo = min(lo, c.Low)
		hi = max(hi, c.High)
	}
	return lo, hi, lo <= hi
}
