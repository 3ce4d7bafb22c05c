// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/fastchart/chart"
	"cogentcore.org/fastchart/raster"
	"cogentcore.org/fastchart/theme"
	"github.com/mitchellh/go-homedir"
)

type chartOptions struct {
	Width, Height int
	Visible       int
	Theme         string
	DateLayout    string
}

// candleChart is a price panel over a volume panel with linked
// cross-hairs, fed from one stream of candles.
type candleChart struct {
	opts    chartOptions
	candles *chart.DataSource[chart.Candle]
	volume  *chart.DataSource[float64]
	price   *chart.Panel
	vol     *chart.Panel
	group   *chart.PanelGroup
}

func newCandleChart(opts chartOptions) (*candleChart, error) {
	cc := &candleChart{
		opts:    opts,
		candles: chart.NewDataSource[chart.Candle](),
		volume:  chart.NewDataSource[float64](),
		price:   chart.NewPanel(),
		vol:     chart.NewPanel(),
		group:   chart.NewPanelGroup(),
	}
	cc.price.Name = "price"
	cc.vol.Name = "volume"
	dates := chart.DateFormatter(cc.candles, opts.DateLayout)
	cc.price.X().Format = dates
	cc.vol.X().Format = dates
	cc.vol.Y().Format = chart.FormatCompact

	if err := cc.price.AddDrawer(chart.NewCandleDrawer(cc.candles)); err != nil {
		return nil, err
	}
	if err := cc.vol.AddDrawer(chart.NewHistogramDrawer(cc.volume)); err != nil {
		return nil, err
	}
	errors.Log(cc.group.AddPanel(cc.price, 3))
	errors.Log(cc.group.AddPanel(cc.vol, 1))
	cc.group.LinkAll()

	th, err := loadTheme(opts.Theme)
	if err != nil {
		return nil, err
	}
	if err := th.ApplyGroup(cc.group); err != nil {
		return nil, err
	}
	return cc, nil
}

// loadTheme returns the built-in theme with the given name, or the
// theme in the named file.
func loadTheme(name string) (*theme.Theme, error) {
	if name == "" {
		name = "light"
	}
	path, err := homedir.Expand(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		return theme.Open(path)
	}
	return theme.Builtin(name)
}

// append adds candles to the price and volume sources.
func (cc *candleChart) append(cs ...chart.Candle) error {
	if err := cc.candles.Extend(cs...); err != nil {
		return err
	}
	vs := make([]float64, len(cs))
	for i, c := range cs {
		vs[i] = c.Volume
	}
	return cc.volume.Extend(vs...)
}

// showLast shows the last Visible candles.
func (cc *candleChart) showLast() error {
	n := cc.candles.Len()
	w := max(cc.opts.Visible, 1)
	return cc.group.SetXRange(float64(max(n-w, 0)), float64(max(n, w)))
}

// follow makes the panels scroll to new candles while the newest
// candle is in view.
func (cc *candleChart) follow() {
	for _, p := range cc.group.Panels() {
		p.AutoScroll = true
	}
}

func (cc *candleChart) size() image.Point {
	return image.Pt(max(cc.opts.Width, 1), max(cc.opts.Height, 1))
}

// render draws the chart and saves it to filename.
func (cc *candleChart) render(filename string) error {
	s := raster.New(cc.size())
	cc.group.Layout(s.Bounds())
	if err := cc.group.RenderAll(s); err != nil {
		return err
	}
	if err := s.Save(filename); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	slog.Debug("rendered chart", "file", filename, "candles", cc.candles.Len())
	return nil
}
