// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"slices"

	"cogentcore.org/core/math32"
)

// CrossHair is the cursor of a [Panel]: a highlighted position in the
// X and Y domains. Panels linked with [Panel.LinkXTo] or
// [Panel.LinkYTo] share their cursor position along the linked
// dimension, each drawing it through its own axes.
//
// A panel has a cross-hair while it has created one with
// [Panel.CreateCrossHair] or while it takes part in a link.
type CrossHair struct {
	// Style has the cross-hair properties.
	Style CrossHairStyle

	// Active is set while the pointer is over a linked panel.
	Active bool

	// X is the index domain position, valid if HasX.
	X float64

	// Y is the value domain position on the first Y axis, valid if HasY.
	Y float64

	// HasX and HasY report which dimensions are shown.
	HasX, HasY bool

	owned        bool
	xrefs, yrefs int
	geom         Geometry

	// xFrom and yFrom are the panels the shown positions come from.
	xFrom, yFrom *Panel
}

// cursorDim is a dimension of a cross-hair link.
type cursorDim int32

const (
	dimX cursorDim = iota
	dimY
)

// CreateCrossHair returns the cross-hair of the panel, creating it if
// needed. It stays until [Panel.RemoveCrossHair] is called and no
// links remain.
func (p *Panel) CreateCrossHair() *CrossHair {
	ch := p.crossHair()
	ch.owned = true
	return ch
}

// CrossHair returns the cross-hair of the panel, or nil if it has none.
func (p *Panel) CrossHair() *CrossHair { return p.cross }

// RemoveCrossHair releases the cross-hair created by
// [Panel.CreateCrossHair]. It is destroyed once no links remain.
func (p *Panel) RemoveCrossHair() {
	if p.cross == nil {
		return
	}
	p.cross.owned = false
	p.release()
}

func (p *Panel) crossHair() *CrossHair {
	if p.cross == nil {
		p.cross = &CrossHair{}
		p.cross.Style.Defaults()
	}
	return p.cross
}

func (p *Panel) release() {
	ch := p.cross
	if ch != nil && !ch.owned && ch.xrefs == 0 && ch.yrefs == 0 {
		p.cross = nil
		p.dirty = true
	}
}

// LinkXTo makes cursor moves over this panel update the X position
// of the cross-hair of other. Both panels take part in the link and
// get a cross-hair. Links to self and repeated links are ignored.
// Linking always succeeds; an axis without cursor support fails the
// next render of its panel.
func (p *Panel) LinkXTo(other *Panel) {
	p.link(&p.xlinks, other, dimX)
}

// LinkYTo is [Panel.LinkXTo] for the Y position, which each panel maps
// through its own first Y axis.
func (p *Panel) LinkYTo(other *Panel) {
	p.link(&p.ylinks, other, dimY)
}

// UnlinkX removes a link made with [Panel.LinkXTo].
func (p *Panel) UnlinkX(other *Panel) {
	p.unlink(&p.xlinks, other, dimX)
}

// UnlinkY removes a link made with [Panel.LinkYTo].
func (p *Panel) UnlinkY(other *Panel) {
	p.unlink(&p.ylinks, other, dimY)
}

func (p *Panel) link(links *[]*Panel, other *Panel, dim cursorDim) {
	if other == nil || other == p || slices.Contains(*links, other) {
		return
	}
	*links = append(*links, other)
	p.crossHair().addRef(dim, 1)
	other.crossHair().addRef(dim, 1)
}

func (p *Panel) unlink(links *[]*Panel, other *Panel, dim cursorDim) {
	i := slices.Index(*links, other)
	if i < 0 {
		return
	}
	*links = slices.Delete(*links, i, i+1)
	other.retract(dim)
	p.cross.addRef(dim, -1)
	other.cross.addRef(dim, -1)
	p.release()
	other.release()
}

// retract hides the dim position of p and of the panels it passed
// that position on to, when it came over links from a panel that can
// no longer reach them.
func (p *Panel) retract(dim cursorDim) {
	if p.cross == nil {
		return
	}
	from := p.cross.from(dim)
	if from == nil || from == p {
		return
	}
	keep := from.reachable(dim)
	for q := range p.reachable(dim) {
		ch := q.cross
		if keep[q] || ch == nil || ch.from(dim) != from {
			continue
		}
		ch.set(dim, false, 0, nil)
		q.dirty = true
	}
}

// reachable returns p and the panels reachable from it over links
// of dimension dim.
func (p *Panel) reachable(dim cursorDim) map[*Panel]bool {
	seen := map[*Panel]bool{p: true}
	queue := []*Panel{p}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		links := q.xlinks
		if dim == dimY {
			links = q.ylinks
		}
		for _, r := range links {
			if !seen[r] {
				seen[r] = true
				queue = append(queue, r)
			}
		}
	}
	return seen
}

func (ch *CrossHair) from(dim cursorDim) *Panel {
	if dim == dimX {
		return ch.xFrom
	}
	return ch.yFrom
}

// set shows or hides the dim position, which comes from panel from.
func (ch *CrossHair) set(dim cursorDim, on bool, v float64, from *Panel) {
	if !on {
		from = nil
	}
	if dim == dimX {
		ch.HasX, ch.X, ch.xFrom = on, v, from
	} else {
		ch.HasY, ch.Y, ch.yFrom = on, v, from
	}
	ch.Active = ch.HasX || ch.HasY
}

func (ch *CrossHair) addRef(dim cursorDim, d int) {
	if dim == dimX {
		ch.xrefs += d
	} else {
		ch.yrefs += d
	}
}

// PointerEnter activates the cross-hair at pt and propagates it
// along the links.
func (p *Panel) PointerEnter(pt image.Point) {
	p.PointerMove(pt)
}

// PointerMove moves the cross-hair to pt and propagates it along the
// links. Outside the plot area it acts as [Panel.PointerLeave].
func (p *Panel) PointerMove(pt image.Point) {
	if p.cross == nil {
		return
	}
	pa := p.PlotArea()
	if !pa.ContainsPoint(math32.Vec2(float32(pt.X), float32(pt.Y))) {
		p.PointerLeave()
		return
	}
	x := p.x.ToDomain(float64(pt.X))
	y := p.Y().ToDomain(float64(pt.Y))
	p.propagate(true, x, y)
}

// PointerLeave deactivates the cross-hair and the linked ones.
func (p *Panel) PointerLeave() {
	if p.cross == nil {
		return
	}
	p.propagate(false, 0, 0)
}

// visit is a panel dimension reached by a propagation.
type visit struct {
	p   *Panel
	dim cursorDim
}

// propagate sets the cursor of p and of every panel reachable over
// links of the same dimension. Each panel dimension is updated at
// most once, so cycles terminate.
func (p *Panel) propagate(active bool, x, y float64) {
	seen := map[visit]bool{}
	queue := []visit{{p, dimX}, {p, dimY}}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if seen[v] {
			continue
		}
		seen[v] = true
		ch := v.p.cross
		if ch == nil {
			continue
		}
		links, pos := v.p.xlinks, x
		if v.dim == dimY {
			links, pos = v.p.ylinks, y
		}
		ch.set(v.dim, active, pos, p)
		v.p.dirty = true
		for _, q := range links {
			queue = append(queue, visit{q, v.dim})
		}
	}
}

// prepareCursor checks that the axes taking part in the cross-hair
// support a cursor, and returns its geometry while it is active.
func (p *Panel) prepareCursor() (*Geometry, error) {
	ch := p.cross
	if ch == nil {
		return nil, nil
	}
	y := p.Y()
	if ch.owned || ch.xrefs > 0 {
		if err := p.x.checkCursor(); err != nil {
			return nil, err
		}
	}
	if ch.owned || ch.yrefs > 0 {
		if err := y.checkCursor(); err != nil {
			return nil, err
		}
	}
	g := &ch.geom
	g.Reset()
	if !ch.Active {
		return g, nil
	}
	st := &ch.Style
	pa := p.PlotArea()
	ls := LineStyle{Color: st.Color, Width: st.Width, Dash: st.Dash}
	ms := DefaultMeasurer
	if ch.HasX && p.x.Contains(ch.X) {
		px := p.x.PX(ch.X)
		g.Lines = append(g.Lines, LinePrim{From: math32.Vec2(px, pa.Min.Y), To: math32.Vec2(px, pa.Max.Y), Style: ls})
		if st.Labels && st.Label.Color != nil {
			txt := p.x.format(ch.X)
			sz := ms.MeasureText(txt, st.Label.Size)
			pos := math32.Vec2(px-sz.X/2, pa.Max.Y+st.Label.Spacing)
			g.Texts = append(g.Texts, TextPrim{Pos: pos, Box: math32.Box2{Min: pos, Max: pos.Add(sz)}, Text: txt, Style: TextStyle{Color: st.Label.Color, Size: st.Label.Size}})
		}
	}
	if ch.HasY && y.Contains(ch.Y) {
		py := y.PX(ch.Y)
		g.Lines = append(g.Lines, LinePrim{From: math32.Vec2(pa.Min.X, py), To: math32.Vec2(pa.Max.X, py), Style: ls})
		if st.Labels && st.Label.Color != nil {
			txt := y.format(ch.Y)
			sz := ms.MeasureText(txt, st.Label.Size)
			pos := math32.Vec2(pa.Min.X-st.Label.Spacing-sz.X, py-sz.Y/2)
			g.Texts = append(g.Texts, TextPrim{Pos: pos, Box: math32.Box2{Min: pos, Max: pos.Add(sz)}, Text: txt, Style: TextStyle{Color: st.Label.Color, Size: st.Label.Size}})
		}
	}
	return g, nil
}
