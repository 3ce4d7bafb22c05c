// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image"
	"math"
	"slices"

	"cogentcore.org/core/base/errors"
)

// PanelGroup stacks panels vertically, giving each a height
// proportional to its space share, and routes pointer events to the
// panel under the pointer.
type PanelGroup struct {
	// Spacing is the gap between panels in pixels.
	Spacing int

	// AlignPadding gives all panels the largest left and right padding
	// in the group, so that their plot areas line up.
	AlignPadding bool

	entries []groupEntry
	region  image.Rectangle
	hover   *Panel
}

type groupEntry struct {
	p     *Panel
	share float64
}

// NewPanelGroup returns a new empty panel group.
func NewPanelGroup() *PanelGroup {
	return &PanelGroup{AlignPadding: true}
}

// AddPanel adds a panel with the given space share, which is a
// relative weight. It returns an error wrapping [ErrInvalidShare] if
// the share is not positive and finite.
func (pg *PanelGroup) AddPanel(p *Panel, share float64) error {
	if !(share > 0) || math.IsInf(share, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidShare, share)
	}
	if slices.ContainsFunc(pg.entries, func(e groupEntry) bool { return e.p == p }) {
		return fmt.Errorf("chart: panel %q is already in the group", p.Name)
	}
	pg.entries = append(pg.entries, groupEntry{p: p, share: share})
	if !pg.region.Empty() {
		pg.Layout(pg.region)
	}
	return nil
}

// Panels returns the panels in registration order.
func (pg *PanelGroup) Panels() []*Panel {
	ps := make([]*Panel, len(pg.entries))
	for i, e := range pg.entries {
		ps[i] = e.p
	}
	return ps
}

// Layout splits total into one region per panel, top to bottom in
// registration order, and resizes the panels. Heights are proportional
// to the shares and, with the spacing, add up to the height of total.
func (pg *PanelGroup) Layout(total image.Rectangle) []image.Rectangle {
	total = total.Canon()
	pg.region = total
	n := len(pg.entries)
	if n == 0 {
		return nil
	}
	gap := pg.Spacing
	avail := total.Dy() - gap*(n-1)
	if gap < 0 || avail < 0 {
		gap, avail = 0, total.Dy()
	}
	shares := make([]float64, n)
	for i, e := range pg.entries {
		shares[i] = e.share
	}
	if pg.AlignPadding {
		pg.AlignPlotAreas()
	}
	rs := make([]image.Rectangle, n)
	y := total.Min.Y
	for i, h := range splitShares(avail, shares) {
		rs[i] = image.Rect(total.Min.X, y, total.Max.X, y+h)
		pg.entries[i].p.Resize(rs[i])
		y += h + gap
	}
	return rs
}

// splitShares splits total into integer parts proportional to shares
// that add up to total, giving the remainder to the largest fractions.
func splitShares(total int, shares []float64) []int {
	sum := 0.0
	for _, s := range shares {
		sum += s
	}
	parts := make([]int, len(shares))
	frac := make([]float64, len(shares))
	used := 0
	for i, s := range shares {
		q := float64(total) * s / sum
		parts[i] = int(math.Floor(q))
		frac[i] = q - float64(parts[i])
		used += parts[i]
	}
	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case frac[a] > frac[b]:
			return -1
		case frac[a] < frac[b]:
			return 1
		}
		return 0
	})
	for k := 0; used < total; k++ {
		parts[order[k%len(order)]]++
		used++
	}
	return parts
}

// AlignPlotAreas sets the left and right padding of all panels to the
// largest in the group.
func (pg *PanelGroup) AlignPlotAreas() {
	var left, right float32
	for _, e := range pg.entries {
		left = max(left, e.p.Style.Padding.Left)
		right = max(right, e.p.Style.Padding.Right)
	}
	for _, e := range pg.entries {
		e.p.Style.Padding.Left = left
		e.p.Style.Padding.Right = right
	}
}

// RenderAll renders every panel in registration order. A failing
// panel does not stop the others; the errors are joined.
func (pg *PanelGroup) RenderAll(s Surface) error {
	var errs []error
	for _, e := range pg.entries {
		if err := e.p.Render(s); err != nil {
			errs = append(errs, fmt.Errorf("panel %q: %w", e.p.Name, err))
		}
	}
	return errors.Join(errs...)
}

// NeedsRender reports whether any panel needs to be rendered.
func (pg *PanelGroup) NeedsRender() bool {
	return slices.ContainsFunc(pg.entries, func(e groupEntry) bool { return e.p.NeedsRender() })
}

// LinkAll links the X position of the cross-hairs of all panels in
// both directions, the usual setup for stacked charts over the same
// records.
func (pg *PanelGroup) LinkAll() {
	for _, a := range pg.entries {
		for _, b := range pg.entries {
			a.p.LinkXTo(b.p)
		}
	}
}

// SetXRange sets the X range of all panels. The range is checked
// first, so it is applied to all panels or none.
func (pg *PanelGroup) SetXRange(lo, hi float64) error {
	if !finite(lo) || !finite(hi) || lo > hi {
		return &RangeError{Lo: lo, Hi: hi}
	}
	for _, e := range pg.entries {
		if err := e.p.SetXRange(lo, hi); err != nil {
			return err
		}
	}
	return nil
}

// PanelAt returns the panel whose region contains pt, or nil.
func (pg *PanelGroup) PanelAt(pt image.Point) *Panel {
	for _, e := range pg.entries {
		if pt.In(e.p.Region()) {
			return e.p
		}
	}
	return nil
}

// PointerMove sends the pointer position to the panel under it,
// and a leave event to the panel it left.
func (pg *PanelGroup) PointerMove(pt image.Point) {
	p := pg.PanelAt(pt)
	if p != pg.hover {
		if pg.hover != nil {
			pg.hover.PointerLeave()
		}
		pg.hover = p
		if p != nil {
			p.PointerEnter(pt)
		}
		return
	}
	if p != nil {
		p.PointerMove(pt)
	}
}

// PointerLeave sends a leave event to the panel under the pointer.
func (pg *PanelGroup) PointerLeave() {
	if pg.hover != nil {
		pg.hover.PointerLeave()
		pg.hover = nil
	}
}
