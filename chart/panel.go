// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image"
	"math"
	"slices"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Panel is a single chart: drawers sharing one X axis, each mapping
// values through one of the Y axes of the panel. Every [Panel.Render]
// repaints the whole region.
type Panel struct {
	// Name identifies the panel in logs and frame stats.
	Name string

	// Style has the panel properties.
	Style PanelStyle

	// AutoScroll keeps the newest record in view: when records are
	// appended while the end of the data is visible, the X range is
	// panned to show them.
	AutoScroll bool

	// Observer, if set, receives the stats of every frame.
	Observer FrameObserver

	x        *Axis
	ys       []*Axis
	defaultY bool
	entries  []*drawerEntry
	region   image.Rectangle
	sources  map[Source]*Subscription
	dataLen  int
	dirty    bool

	cross          *CrossHair
	xlinks, ylinks []*Panel
}

// drawerEntry is a drawer in a panel with the Y axis it maps through.
type drawerEntry struct {
	d Drawer
	y *Axis

	// owner is the axis a decoration drawer was added for.
	owner *Axis

	geom *Geometry
}

// NewPanel returns a new panel with an index X axis and a value Y
// axis, both decorated with a grid and tick labels. The first call to
// [Panel.AddAxis] with a Y axis replaces the default Y axis.
func NewPanel() *Panel {
	p := &Panel{}
	p.Defaults()
	errors.Log(p.AddAxis(NewIndexAxis(), NewValueAxis()))
	p.defaultY = true
	return p
}

func (p *Panel) Defaults() {
	p.Style.Defaults()
	p.dirty = true
}

// X returns the X axis.
func (p *Panel) X() *Axis { return p.x }

// Y returns the first Y axis, which the cross-hair uses.
func (p *Panel) Y() *Axis {
	if len(p.ys) == 0 {
		return nil
	}
	return p.ys[0]
}

// Ys returns the Y axes.
func (p *Panel) Ys() []*Axis { return slices.Clone(p.ys) }

// AddAxis sets the X axis if x is non-nil and adds y as a Y axis if
// it is non-nil. Axes get a grid and a tick label drawer, shown
// according to their Style.Grid and Style.Labels.
func (p *Panel) AddAxis(x, y *Axis) error {
	if x != nil && x.Orientation != Horizontal {
		return &CapabilityError{Axis: x.Name, Capability: "horizontal mapping"}
	}
	if y != nil && y.Orientation != Vertical {
		return &CapabilityError{Axis: y.Name, Capability: "vertical mapping"}
	}
	if y != nil && !slices.Contains(p.ys, y) {
		if p.defaultY {
			old := p.ys[0]
			p.removeOwned(old)
			p.ys = []*Axis{y}
			p.defaultY = false
			for _, e := range p.entries {
				if e.y == old {
					e.y = y
				}
			}
		} else {
			p.ys = append(p.ys, y)
		}
		p.decorate(y, y, len(p.ys) > 1)
	}
	if x != nil && x != p.x {
		p.removeOwned(p.x)
		p.x = x
		p.decorate(x, p.Y(), false)
	}
	p.layout()
	p.dirty = true
	return nil
}

// decorate adds the grid and tick label drawers of an axis. They are
// hidden while Style.Grid or Style.Labels of the axis is off; styles
// are read from the axis on every frame.
func (p *Panel) decorate(ax, y *Axis, far bool) {
	gd := NewLineGridDrawer(ax.Orientation)
	gd.Styler(func(s *GridStyle) {
		*s = ax.Style.GridStyle
		if !ax.Style.Grid {
			s.Color = nil
		}
	})
	p.insert(&drawerEntry{d: gd, y: y, owner: ax})

	ld := NewTickLabelDrawer(ax.Orientation)
	ld.Far = far
	ld.Styler(func(s *LabelStyle) {
		*s = ax.Style.Label
		if !ax.Style.Labels {
			s.Color = nil
		}
	})
	p.insert(&drawerEntry{d: ld, y: y, owner: ax})
}

func (p *Panel) removeOwned(ax *Axis) {
	if ax == nil {
		return
	}
	p.entries = slices.DeleteFunc(p.entries, func(e *drawerEntry) bool { return e.owner == ax })
}

// insert adds e after the last drawer of the same or a lower layer.
func (p *Panel) insert(e *drawerEntry) {
	ly := e.d.Layer()
	i := len(p.entries)
	for i > 0 && p.entries[i-1].d.Layer() > ly {
		i--
	}
	p.entries = slices.Insert(p.entries, i, e)
}

// AddDrawer binds the drawer and adds it on top of the drawers of its
// layer. It maps values through y if given, which must be one of the
// panel Y axes, and through the first Y axis otherwise. Binding
// errors, such as a [*TypeMismatchError], leave the panel unchanged.
func (p *Panel) AddDrawer(d Drawer, y ...*Axis) error {
	ya := p.Y()
	if len(y) > 0 && y[0] != nil {
		if !slices.Contains(p.ys, y[0]) {
			return fmt.Errorf("%w: %q is not a y axis of panel %q", ErrMissingAxis, y[0].Name, p.Name)
		}
		ya = y[0]
	}
	if err := d.Bind(); err != nil {
		return err
	}
	p.watch(d.Source())
	p.insert(&drawerEntry{d: d, y: ya})
	p.dirty = true
	return nil
}

// RemoveDrawer removes the drawer, reporting whether it was present.
func (p *Panel) RemoveDrawer(d Drawer) bool {
	i := slices.IndexFunc(p.entries, func(e *drawerEntry) bool { return e.d == d })
	if i < 0 {
		return false
	}
	p.entries = slices.Delete(p.entries, i, i+1)
	if ub, ok := d.(interface{ Unbind() }); ok {
		ub.Unbind()
	}
	p.unwatch(d.Source())
	p.dirty = true
	return true
}

// Drawers returns the drawers in drawing order, including the axis
// decorations.
func (p *Panel) Drawers() []Drawer {
	ds := make([]Drawer, len(p.entries))
	for i, e := range p.entries {
		ds[i] = e.d
	}
	return ds
}

func (p *Panel) watch(src Source) {
	if src == nil || p.sources[src] != nil {
		return
	}
	if p.sources == nil {
		p.sources = map[Source]*Subscription{}
	}
	p.dataLen = max(p.dataLen, src.Len())
	p.sources[src] = src.Subscribe(p.dataChanged)
}

// unwatch cancels the subscription to src once no drawer uses it.
func (p *Panel) unwatch(src Source) {
	sub := p.sources[src]
	if sub == nil || slices.ContainsFunc(p.entries, func(e *drawerEntry) bool { return e.d.Source() == src }) {
		return
	}
	sub.Cancel()
	delete(p.sources, src)
	p.dataLen = 0
	for s := range p.sources {
		p.dataLen = max(p.dataLen, s.Len())
	}
}

func (p *Panel) dataChanged(n int) {
	p.dirty = true
	if p.AutoScroll {
		_, hi := p.x.Range()
		if hi >= float64(p.dataLen) && float64(n) > hi {
			errors.Log(p.x.Pan(float64(n) - hi))
		}
	}
	p.dataLen = max(p.dataLen, n)
}

// SetXRange sets the visible range of the X axis. It fails like
// [Axis.SetRange], leaving the range unchanged.
func (p *Panel) SetXRange(lo, hi float64) error {
	if err := p.x.SetRange(lo, hi); err != nil {
		return err
	}
	p.dirty = true
	return nil
}

// maxIndex is the largest index [Panel.VisibleRange] returns; every
// integer up to it is exact as a float64.
const maxIndex = 1 << 53

// VisibleRange returns the indexes of the records at least partly
// inside the X range.
func (p *Panel) VisibleRange() IndexRange {
	lo, hi := p.x.Range()
	lo = math.Min(math.Max(lo, 0), maxIndex)
	hi = math.Min(math.Max(hi, 0), maxIndex)
	b := int(math.Floor(lo))
	e := max(int(math.Ceil(hi)), b)
	return IndexRange{Begin: b, End: e}
}

// Resize sets the region of the surface the panel renders into.
func (p *Panel) Resize(r image.Rectangle) {
	p.region = r.Canon()
	p.layout()
	p.dirty = true
}

// Region returns the region set by [Panel.Resize].
func (p *Panel) Region() image.Rectangle { return p.region }

// PlotArea returns the region minus the padding, where the data is drawn.
func (p *Panel) PlotArea() math32.Box2 {
	pd := p.Style.Padding
	r := p.region
	bx := math32.Box2{
		Min: math32.Vec2(float32(r.Min.X)+pd.Left, float32(r.Min.Y)+pd.Top),
		Max: math32.Vec2(float32(r.Max.X)-pd.Right, float32(r.Max.Y)-pd.Bottom),
	}
	bx.Max.X = max(bx.Max.X, bx.Min.X)
	bx.Max.Y = max(bx.Max.Y, bx.Min.Y)
	return bx
}

// layout maps the axes onto the plot area.
func (p *Panel) layout() {
	pa := p.PlotArea()
	if p.x != nil {
		p.x.SetExtent(float64(pa.Min.X), float64(pa.Max.X))
	}
	for _, y := range p.ys {
		y.SetExtent(float64(pa.Max.Y), float64(pa.Min.Y))
	}
}

// PanPixels pans the X range by dx pixels, as for a drag gesture.
func (p *Panel) PanPixels(dx float64) error {
	sc := p.x.Scale()
	if sc == 0 {
		return nil
	}
	p.dirty = true
	return p.x.Pan(-dx / sc)
}

// ZoomAt scales the X range by factor around the pixel position px,
// which keeps showing the same index.
func (p *Panel) ZoomAt(px, factor float64) error {
	p.dirty = true
	return p.x.Zoom(factor, p.x.ToDomain(px))
}

// NeedsRender reports whether anything changed since the last
// successful render.
func (p *Panel) NeedsRender() bool { return p.dirty }

// Render repaints the panel region: it fits the auto-fit Y axes to
// the visible data, prepares every drawer, clears the region and
// draws every drawer, the plot area border and the cross-hair.
// Errors are returned before the surface is touched, and leave the
// panel ready for the next frame.
func (p *Panel) Render(s Surface) error {
	start := time.Now()
	vr, n, err := p.render(s)
	if p.Observer != nil {
		p.Observer.ObserveFrame(FrameStats{
			Panel:      p.Name,
			Duration:   time.Since(start),
			Visible:    vr,
			Primitives: n,
			Err:        err,
		})
	}
	return err
}

func (p *Panel) render(s Surface) (IndexRange, int, error) {
	p.layout()
	vr := p.VisibleRange()
	p.fitY(vr)
	for _, e := range p.entries {
		g, err := e.d.Prepare(vr, p.x, e.y)
		if err != nil {
			return vr, 0, err
		}
		e.geom = g
	}
	cg, err := p.prepareCursor()
	if err != nil {
		return vr, 0, err
	}

	s.Clear(p.region, p.Style.Background)
	n := 0
	for _, e := range p.entries {
		e.d.Draw(s, e.geom)
		n += e.geom.Len()
	}
	if p.Style.BorderVisible && p.Style.BorderColor != nil {
		s.DrawRect(p.PlotArea(), FillStyle{Stroke: p.Style.BorderColor, Width: p.Style.BorderWidth})
		n++
	}
	if cg != nil {
		cg.Draw(s)
		n += cg.Len()
	}
	p.dirty = false
	return vr, n, nil
}

// fitY sets each auto-fit Y axis to the value range of the visible
// records of its drawers, scaled around the middle by Style.YScale.
func (p *Panel) fitY(vr IndexRange) {
	for _, ya := range p.ys {
		if !ya.AutoFit {
			continue
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, e := range p.entries {
			vg, ok := e.d.(ValueRanger)
			if e.y != ya || !ok {
				continue
			}
			l, h, ok := vg.ValueRange(vr)
			if !ok {
				continue
			}
			lo, hi = min(lo, l), max(hi, h)
		}
		if lo > hi {
			continue
		}
		mid := (lo + hi) / 2
		half := (hi - lo) / 2 * p.Style.YScale
		if half <= 0 {
			half = 0.5
		}
		errors.Log(ya.SetRange(mid-half, mid+half))
	}
}
