// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cmp"
	"slices"
	"sort"

	"cogentcore.org/core/math32"
)

// labelSettings are the inputs of a [TextLabelDrawer] besides the axes.
type labelSettings struct {
	style  LabelStyle
	orient Orientation
	far    bool
	ticks  tickSettings
	n      int
}

// labelFunc appends the labels for the visible range to dst.
type labelFunc func(vr IndexRange, x, y *Axis, dst []TextLabelInfo) []TextLabelInfo

// TextLabelDrawer draws text labels along an axis or inside the plot
// area. The labels come from a [TextLabelInfo] source or are derived
// from the axis ticks or a [Candle] source.
//
// Labels never overlap by more than Style.MaxOverlap pixels in both
// directions, after each is grown by Style.MinSpacing: labels are
// visited in position order along the axis, and a label colliding
// with one already kept is dropped.
type TextLabelDrawer struct {
	drawerBase[labelSettings]

	// Style has the properties used to render the labels.
	Style LabelStyle

	// Orientation is the axis the labels are positioned along:
	// the X axis below the plot area for Horizontal and the Y axis
	// left of the plot area for Vertical.
	Orientation Orientation

	// Far places axis labels above the plot area for Horizontal and
	// right of it for Vertical.
	Far bool

	// Measurer measures the label text; nil uses [DefaultMeasurer].
	Measurer TextMeasurer

	stylers Stylers[LabelStyle]
	layer   Layer
	bind    func() error
	labels  labelFunc
	ticks   bool
	buf     []TextLabelInfo
}

func newTextLabelDrawer(kind string, src Source, orient Orientation) *TextLabelDrawer {
	ld := &TextLabelDrawer{Orientation: orient, layer: Overlay}
	ld.kind = kind
	ld.src = src
	ld.Defaults()
	return ld
}

// NewTextLabelDrawer returns a drawer for a source of [TextLabelInfo]
// records, positioned along the X axis. Records must be appended in
// non-decreasing Pos order.
func NewTextLabelDrawer(src Source) *TextLabelDrawer {
	ld := newTextLabelDrawer("TextLabelDrawer", src, Horizontal)
	var rec Records[TextLabelInfo]
	ld.bind = func() error {
		r, err := bindRecords[TextLabelInfo](&ld.drawerBase)
		rec = r
		return err
	}
	ld.labels = func(vr IndexRange, x, y *Axis, dst []TextLabelInfo) []TextLabelInfo {
		lo, hi := ld.along(x, y).Range()
		all := rec.Slice(0, rec.Len())
		i := sort.Search(len(all), func(i int) bool { return all[i].Pos >= lo })
		for ; i < len(all) && all[i].Pos <= hi; i++ {
			dst = append(dst, all[i])
		}
		return dst
	}
	return ld
}

// NewTickLabelDrawer returns a drawer that labels the ticks of the
// X axis (Horizontal) or the Y axis (Vertical), formatted with the
// axis Format function.
func NewTickLabelDrawer(orient Orientation) *TextLabelDrawer {
	ld := newTextLabelDrawer("TickLabelDrawer", nil, orient)
	ld.ticks = true
	ld.labels = func(vr IndexRange, x, y *Axis, dst []TextLabelInfo) []TextLabelInfo {
		ax := ld.along(x, y)
		for _, v := range ax.Ticks() {
			dst = append(dst, TextLabelInfo{Pos: v, Text: ax.format(v)})
		}
		return dst
	}
	return ld
}

// NewDateLabelDrawer returns a drawer that labels the X axis ticks
// with the time of the [Candle] at each index, formatted with the
// given [time.Time.Format] layout.
func NewDateLabelDrawer(src Source, layout string) *TextLabelDrawer {
	ld := newTextLabelDrawer("DateLabelDrawer", src, Horizontal)
	ld.indexed = true
	ld.ticks = true
	var format func(v float64) string
	ld.bind = func() error {
		rec, err := bindRecords[Candle](&ld.drawerBase)
		if err == nil {
			format = DateFormatter(rec, layout)
		}
		return err
	}
	ld.labels = func(vr IndexRange, x, y *Axis, dst []TextLabelInfo) []TextLabelInfo {
		for _, v := range x.Ticks() {
			dst = append(dst, TextLabelInfo{Pos: v, Text: format(v)})
		}
		return dst
	}
	return ld
}

// NewCandleLabelDrawer returns a drawer that labels each visible
// [Candle] above its high with the text returned by format. A nil
// format labels the close price with [FormatValue].
func NewCandleLabelDrawer(src Source, format func(c Candle) string) *TextLabelDrawer {
	if format == nil {
		format = func(c Candle) string { return FormatValue(c.Close) }
	}
	ld := newTextLabelDrawer("CandleLabelDrawer", src, Horizontal)
	ld.indexed = true
	ld.layer = Data
	var rec Records[Candle]
	ld.bind = func() error {
		r, err := bindRecords[Candle](&ld.drawerBase)
		rec = r
		return err
	}
	ld.labels = func(vr IndexRange, x, y *Axis, dst []TextLabelInfo) []TextLabelInfo {
		for k, c := range rec.Slice(vr.Begin, vr.End) {
			i := float64(vr.Begin + k)
			dst = append(dst, TextLabelInfo{Pos: i + 0.5, Text: format(c), InPlot: true, Anchor: c.High})
		}
		return dst
	}
	return ld
}

func (ld *TextLabelDrawer) Defaults() {
	ld.Style.Defaults()
}

// Styler adds a styling function, run before each prepare.
func (ld *TextLabelDrawer) Styler(f func(s *LabelStyle)) *TextLabelDrawer {
	ld.stylers.Add(f)
	return ld
}

func (ld *TextLabelDrawer) ApplyStyle() {
	ld.stylers.Run(&ld.Style)
}

func (ld *TextLabelDrawer) Layer() Layer { return ld.layer }

func (ld *TextLabelDrawer) Bind() error {
	if ld.bind == nil {
		return nil
	}
	return ld.bind()
}

func (ld *TextLabelDrawer) bound() bool {
	return ld.bind == nil || ld.sub != nil
}

// along returns the axis the labels are positioned along.
func (ld *TextLabelDrawer) along(x, y *Axis) *Axis {
	if ld.Orientation == Vertical {
		return y
	}
	return x
}

func (ld *TextLabelDrawer) measurer() TextMeasurer {
	if ld.Measurer != nil {
		return ld.Measurer
	}
	return DefaultMeasurer
}

func (ld *TextLabelDrawer) Prepare(vr IndexRange, x, y *Axis) (*Geometry, error) {
	if !ld.bound() {
		return nil, ErrUnbound
	}
	if err := checkAxes(ld.kind, x, y, true); err != nil {
		return nil, err
	}
	ld.ApplyStyle()
	set := labelSettings{style: ld.Style, orient: ld.Orientation, far: ld.Far}
	if ld.ticks {
		set.ticks = ld.along(x, y).tickSettings()
	}
	if !ld.indexed {
		set.n = ld.n
	}
	g, ok := ld.cached(ld.makeKey(vr, x, y, set))
	if ok || ld.Style.Color == nil {
		return g, nil
	}
	ld.buf = ld.labels(vr, x, y, ld.buf[:0])
	ld.place(g, x, y)
	ld.dropCollisions(g)
	return g, nil
}

// place appends a text for each label to g.
func (ld *TextLabelDrawer) place(g *Geometry, x, y *Axis) {
	st := &ld.Style
	ms := ld.measurer()
	left, right := x.Extent()
	bottom, top := y.Extent()
	for _, li := range ld.buf {
		if li.Text == "" {
			continue
		}
		sz := ms.MeasureText(li.Text, st.Size)
		var pos math32.Vector2
		switch {
		case li.InPlot:
			px, py := x.PX(li.Pos), y.PX(li.Anchor)
			if ld.Orientation == Vertical {
				px, py = x.PX(li.Anchor), y.PX(li.Pos)
			}
			pos = math32.Vec2(px-sz.X/2, py-st.Spacing-sz.Y)
		case ld.Orientation == Horizontal && ld.Far:
			pos = math32.Vec2(x.PX(li.Pos)-sz.X/2, float32(top)-st.Spacing-sz.Y)
		case ld.Orientation == Horizontal:
			pos = math32.Vec2(x.PX(li.Pos)-sz.X/2, float32(bottom)+st.Spacing)
		case ld.Far:
			pos = math32.Vec2(float32(right)+st.Spacing, y.PX(li.Pos)-sz.Y/2)
		default:
			pos = math32.Vec2(float32(left)-st.Spacing-sz.X, y.PX(li.Pos)-sz.Y/2)
		}
		clr := st.Color
		if li.Color != nil {
			clr = li.Color
		}
		g.Texts = append(g.Texts, TextPrim{
			Pos:   pos,
			Box:   math32.Box2{Min: pos, Max: pos.Add(sz)},
			Text:  li.Text,
			Style: TextStyle{Color: clr, Size: st.Size},
		})
	}
}

// dropCollisions sorts the texts along the label axis and removes
// those colliding with an earlier kept text.
func (ld *TextLabelDrawer) dropCollisions(g *Geometry) {
	vert := ld.Orientation == Vertical
	slices.SortStableFunc(g.Texts, func(a, b TextPrim) int {
		if vert {
			return cmp.Compare(a.Box.Min.Y, b.Box.Min.Y)
		}
		return cmp.Compare(a.Box.Min.X, b.Box.Min.X)
	})
	kept := g.Texts[:0]
	for _, t := range g.Texts {
		if !ld.collides(kept, t.Box) {
			kept = append(kept, t)
		}
	}
	g.Texts = kept
}

func (ld *TextLabelDrawer) collides(kept []TextPrim, b math32.Box2) bool {
	pad := ld.Style.MinSpacing
	lim := ld.Style.MaxOverlap
	for i := len(kept) - 1; i >= 0; i-- {
		k := kept[i].Box
		dx := min(k.Max.X, b.Max.X) - max(k.Min.X, b.Min.X) + pad
		dy := min(k.Max.Y, b.Max.Y) - max(k.Min.Y, b.Min.Y) + pad
		if dx > lim && dy > lim {
			return true
		}
	}
	return false
}
