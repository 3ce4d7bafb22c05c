// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/fastchart/chart"
)

// ParseDash parses a dash name; the empty string is solid.
func ParseDash(s string) (chart.Dash, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "solid":
		return chart.Solid, nil
	case "dashed":
		return chart.Dashed, nil
	case "dotted":
		return chart.Dotted, nil
	}
	return chart.Solid, fmt.Errorf("grid_dash: unknown dash %q", s)
}

// ApplyPanel applies the theme to the panel, its axes, its cross-hair
// and its candle, histogram and label drawers, setting their style
// fields directly. Applying a theme again, or another theme, replaces
// the colors set before. Stylers added to the drawers still run on
// top, and drawers added later keep their defaults.
func (th *Theme) ApplyPanel(p *chart.Panel) error {
	pl, err := th.Palette()
	if err != nil {
		return err
	}
	dash, _ := ParseDash(th.GridDash)
	set(&p.Style.Background, pl.Background)
	set(&p.Style.BorderColor, pl.Border)

	axes := append([]*chart.Axis{p.X()}, p.Ys()...)
	for _, ax := range axes {
		gs := &ax.Style.GridStyle
		set(&gs.Color, pl.Grid)
		gs.Dash = dash
		th.label(&ax.Style.Label, pl)
	}
	if ch := p.CrossHair(); ch != nil {
		th.cursor(&ch.Style, pl)
	}
	for _, d := range p.Drawers() {
		switch d := d.(type) {
		case *chart.CandleDrawer:
			set(&d.Style.BullColor, pl.Bull)
			set(&d.Style.BearColor, pl.Bear)
			d.Style.BullFill = !th.HollowBull
		case *chart.HistogramDrawer:
			set(&d.Style.PositiveColor, pl.Bull)
			set(&d.Style.NegativeColor, pl.Bear)
		case *chart.TextLabelDrawer:
			// a nil color hides the labels
			if d.Style.Color != nil {
				th.label(&d.Style, pl)
			}
		}
	}
	return nil
}

// ApplyGroup applies the theme to every panel of the group.
func (th *Theme) ApplyGroup(pg *chart.PanelGroup) error {
	for _, p := range pg.Panels() {
		if err := th.ApplyPanel(p); err != nil {
			return err
		}
	}
	return nil
}

func (th *Theme) label(ls *chart.LabelStyle, pl *Palette) {
	set(&ls.Color, pl.Text)
	if th.FontSize > 0 {
		ls.Size = th.FontSize
	}
}

func (th *Theme) cursor(cs *chart.CrossHairStyle, pl *Palette) {
	set(&cs.Color, pl.Cursor)
	th.label(&cs.Label, pl)
}

// set sets dst to c if c is non-nil.
func set(dst *color.Color, c color.Color) {
	if c != nil {
		*dst = c
	}
}
