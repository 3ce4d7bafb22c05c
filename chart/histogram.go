// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "math"

// HistogramDrawer draws float64 records as bars from a baseline
// to the value. Values below the baseline extend downwards.
// NaN values leave a gap.
type HistogramDrawer struct {
	drawerBase[HistogramStyle]

	// Style has the properties used to render the bars.
	Style HistogramStyle

	rec     Records[float64]
	stylers Stylers[HistogramStyle]
}

// NewHistogramDrawer returns a new histogram drawer for the given
// source, which must hold float64 records when the drawer is bound.
func NewHistogramDrawer(src Source) *HistogramDrawer {
	hd := &HistogramDrawer{}
	hd.kind = "HistogramDrawer"
	hd.src = src
	hd.indexed = true
	hd.Defaults()
	return hd
}

func (hd *HistogramDrawer) Defaults() {
	hd.Style.Defaults()
}

// Styler adds a styling function, run before each prepare.
func (hd *HistogramDrawer) Styler(f func(s *HistogramStyle)) *HistogramDrawer {
	hd.stylers.Add(f)
	return hd
}

func (hd *HistogramDrawer) ApplyStyle() {
	hd.stylers.Run(&hd.Style)
}

func (hd *HistogramDrawer) Layer() Layer { return Data }

func (hd *HistogramDrawer) Bind() error {
	rec, err := bindRecords[float64](&hd.drawerBase)
	if err != nil {
		return err
	}
	hd.rec = rec
	return nil
}

func (hd *HistogramDrawer) Prepare(vr IndexRange, x, y *Axis) (*Geometry, error) {
	if hd.rec == nil {
		return nil, ErrUnbound
	}
	if err := checkAxes(hd.kind, x, y, true); err != nil {
		return nil, err
	}
	hd.ApplyStyle()
	st := &hd.Style
	g, ok := hd.cached(hd.makeKey(vr, x, y, *st))
	if ok {
		return g, nil
	}
	pad := (1 - st.BarWidth) / 2
	base := y.PX(st.Baseline)
	for k, v := range hd.rec.Slice(vr.Begin, vr.End) {
		if math.IsNaN(v) {
			continue
		}
		i := float64(vr.Begin + k)
		fs := FillStyle{Fill: st.PositiveColor, Stroke: st.Outline, Width: 1}
		if v < st.Baseline {
			fs.Fill = st.NegativeColor
		}
		g.Rects = append(g.Rects, RectPrim{
			Box:   box(x.PX(i+pad), base, x.PX(i+1-pad), y.PX(v)),
			Style: fs,
			Index: vr.Begin + k,
		})
	}
	return g, nil
}

// ValueRange returns the range of the visible values, including
// the baseline.
func (hd *HistogramDrawer) ValueRange(vr IndexRange) (lo, hi float64, ok bool) {
	if hd.rec == nil {
		return 0, 0, false
	}
	lo, hi = hd.Style.Baseline, hd.Style.Baseline
	for _, v := range hd.rec.Slice(vr.Begin, vr.End) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, true
}
