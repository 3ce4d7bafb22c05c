// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"strconv"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer measures every character as W by H pixels.
type fixedMeasurer struct{ W, H float32 }

func (fm fixedMeasurer) MeasureText(text string, size float32) math32.Vector2 {
	return math32.Vec2(fm.W*float32(len(text)), fm.H)
}

func TestDefaultMeasurer(t *testing.T) {
	sz := DefaultMeasurer.MeasureText("abc", 13)
	assert.Equal(t, math32.Vec2(21, 13), sz)
	sz = DefaultMeasurer.MeasureText("abc", 26)
	assert.Equal(t, math32.Vec2(42, 26), sz)
	assert.Equal(t, math32.Vector2{}, DefaultMeasurer.MeasureText("", 13))
}

func TestTextLabelSource(t *testing.T) {
	src := NewDataSource[TextLabelInfo]()
	red := color.RGBA{255, 0, 0, 255}
	require.NoError(t, src.Extend(
		TextLabelInfo{Pos: 1, Text: "a"},
		TextLabelInfo{Pos: 3, Text: "b", Color: red},
		TextLabelInfo{Pos: 5, Text: ""},
		TextLabelInfo{Pos: 12, Text: "c"},
	))
	ld := NewTextLabelDrawer(src)
	ld.Measurer = fixedMeasurer{W: 10, H: 10}
	require.NoError(t, ld.Bind())
	x, y := testAxes(t, 10, 0, 1)

	g, err := ld.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	require.Len(t, g.Texts, 2)
	assert.Equal(t, "a", g.Texts[0].Text)
	assert.Equal(t, math32.Vec2(95, 400+ld.Style.Spacing), g.Texts[0].Pos)
	assert.Equal(t, DefaultTextColor, g.Texts[0].Style.Color)
	assert.Equal(t, red, g.Texts[1].Style.Color)

	require.NoError(t, src.Append(TextLabelInfo{Pos: 14, Text: "d"}))
	require.NoError(t, x.SetRange(10, 20))
	g, err = ld.Prepare(IndexRange{10, 20}, x, y)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, []string{g.Texts[0].Text, g.Texts[1].Text})
}

func TestTextLabelTypeMismatch(t *testing.T) {
	pn := NewPanel()
	assert.ErrorIs(t, pn.AddDrawer(NewTextLabelDrawer(NewDataSource[float64]())), ErrTypeMismatch)
	assert.ErrorIs(t, pn.AddDrawer(NewDateLabelDrawer(NewDataSource[TextLabelInfo](), time.DateOnly)), ErrTypeMismatch)
	assert.ErrorIs(t, pn.AddDrawer(NewCandleLabelDrawer(NewDataSource[float64](), nil)), ErrTypeMismatch)
}

func TestTextLabelCollisions(t *testing.T) {
	src := NewDataSource[TextLabelInfo]()
	// labels every index, 30 pixels wide on a 10 pixel slot
	for i := 0; i < 20; i++ {
		require.NoError(t, src.Append(TextLabelInfo{Pos: float64(i), Text: "abc"}))
	}
	ld := NewTextLabelDrawer(src)
	ld.Measurer = fixedMeasurer{W: 10, H: 30}
	require.NoError(t, ld.Bind())
	x := NewIndexAxis()
	require.NoError(t, x.SetRange(0, 20))
	x.SetExtent(0, 200)
	_, y := testAxes(t, 1, 0, 1)

	for _, maxOverlap := range []float32{0, 5, 20} {
		ld.Style.MaxOverlap = maxOverlap
		g, err := ld.Prepare(IndexRange{0, 20}, x, y)
		require.NoError(t, err)
		require.NotEmpty(t, g.Texts)
		assert.Less(t, len(g.Texts), 20)
		for i := 1; i < len(g.Texts); i++ {
			a, b := g.Texts[i-1].Box, g.Texts[i].Box
			overlap := a.Max.X - b.Min.X + ld.Style.MinSpacing
			assert.LessOrEqual(t, overlap, maxOverlap, "max overlap %g", maxOverlap)
			assert.Less(t, a.Min.X, b.Min.X)
		}
	}

	ld.Style.MaxOverlap = 0
	ld.Style.MinSpacing = 0
	g, err := ld.Prepare(IndexRange{0, 20}, x, y)
	require.NoError(t, err)
	// 30 pixel labels 10 pixels apart: every third one fits
	assert.Len(t, g.Texts, 7)
}

func TestTickLabels(t *testing.T) {
	x, y := testAxes(t, 10, 0, 100)
	y.Style.NiceTicks = false

	xl := NewTickLabelDrawer(Horizontal)
	require.NoError(t, xl.Bind())
	g, err := xl.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	var txt []string
	for _, tx := range g.Texts {
		txt = append(txt, tx.Text)
	}
	assert.Equal(t, []string{"0", "2", "4", "6", "8"}, txt)

	yl := NewTickLabelDrawer(Vertical)
	yl.Measurer = fixedMeasurer{W: 5, H: 10}
	g, err = yl.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	txt = txt[:0]
	for _, tx := range g.Texts {
		txt = append(txt, tx.Text)
		assert.Equal(t, float32(0)-yl.Style.Spacing, tx.Box.Max.X)
	}
	assert.ElementsMatch(t, []string{"20.00", "40.00", "60.00", "80.00"}, txt)

	y.LabelCount = 2
	g, err = yl.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	assert.Len(t, g.Texts, 1)

	yl.Far = true
	g, err = yl.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	require.Len(t, g.Texts, 1)
	assert.Equal(t, float32(1000)+yl.Style.Spacing, g.Texts[0].Pos.X)
}

func TestDateLabels(t *testing.T) {
	src := NewDataSource[Candle]()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, src.Append(Candle{Open: 1, High: 1, Low: 1, Close: 1, Time: day.AddDate(0, 0, i)}))
	}
	ld := NewDateLabelDrawer(src, "01-02")
	require.NoError(t, ld.Bind())
	x, y := testAxes(t, 10, 0, 1)
	g, err := ld.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	var txt []string
	for _, tx := range g.Texts {
		txt = append(txt, tx.Text)
	}
	assert.Equal(t, []string{"01-01", "01-03", "01-05"}, txt)

	require.NoError(t, src.Append(Candle{Open: 1, High: 1, Low: 1, Close: 1, Time: day.AddDate(0, 0, 5)}))
	require.NoError(t, src.Append(Candle{Open: 1, High: 1, Low: 1, Close: 1, Time: day.AddDate(0, 0, 6)}))
	g, err = ld.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	assert.Len(t, g.Texts, 4)
}

func TestCandleLabels(t *testing.T) {
	src := testCandles(t)
	ld := NewCandleLabelDrawer(src, func(c Candle) string { return strconv.FormatFloat(c.High, 'f', -1, 64) })
	ld.Measurer = fixedMeasurer{W: 4, H: 8}
	require.NoError(t, ld.Bind())
	assert.Equal(t, Data, ld.Layer())
	x, y := testAxes(t, 4, 0, 20)
	g, err := ld.Prepare(IndexRange{0, 4}, x, y)
	require.NoError(t, err)
	require.Len(t, g.Texts, 4)
	tx := g.Texts[0]
	assert.Equal(t, "14", tx.Text)
	assert.Equal(t, float32(50), (tx.Box.Min.X+tx.Box.Max.X)/2)
	assert.Equal(t, y.PX(14)-ld.Style.Spacing, tx.Box.Max.Y)

	def := NewCandleLabelDrawer(src, nil)
	require.NoError(t, def.Bind())
	g, err = def.Prepare(IndexRange{0, 1}, x, y)
	require.NoError(t, err)
	require.Len(t, g.Texts, 1)
	assert.Equal(t, "13.00", g.Texts[0].Text)
}

func TestLabelsDisabled(t *testing.T) {
	x, y := testAxes(t, 10, 0, 1)
	ld := NewTickLabelDrawer(Horizontal)
	ld.Styler(func(s *LabelStyle) { s.Color = nil })
	g, err := ld.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}
