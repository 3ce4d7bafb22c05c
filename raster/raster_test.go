// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"testing"
	"time"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"cogentcore.org/fastchart/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func newTestSurface() *Surface {
	s := New(image.Pt(40, 40))
	s.Clear(s.Bounds(), white)
	return s
}

func TestClear(t *testing.T) {
	s := New(image.Pt(20, 20))
	assert.Equal(t, color.RGBA{}, s.Image.RGBAAt(5, 5))
	s.Clear(image.Rect(0, 0, 10, 10), red)
	assert.Equal(t, red, s.Image.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, s.Image.RGBAAt(15, 15))
	s.Clear(image.Rect(-5, -5, 100, 100), nil)
	assert.Equal(t, color.RGBA{}, s.Image.RGBAAt(5, 5))
}

func TestDrawLine(t *testing.T) {
	s := newTestSurface()
	s.DrawLine(math32.Vec2(0, 10), math32.Vec2(40, 10), chart.LineStyle{Color: red, Width: 1})
	assert.Equal(t, red, s.Image.RGBAAt(5, 10))
	assert.Equal(t, white, s.Image.RGBAAt(5, 9))
	assert.Equal(t, white, s.Image.RGBAAt(5, 11))

	s.DrawLine(math32.Vec2(20, 0), math32.Vec2(20, 40), chart.LineStyle{Color: blue})
	assert.Equal(t, blue, s.Image.RGBAAt(20, 30))
	assert.Equal(t, white, s.Image.RGBAAt(21, 30))

	s.DrawLine(math32.Vec2(0, 30), math32.Vec2(40, 30), chart.LineStyle{})
	assert.Equal(t, white, s.Image.RGBAAt(5, 30))
}

func TestDrawLineDashed(t *testing.T) {
	s := newTestSurface()
	s.DrawLine(math32.Vec2(0, 5), math32.Vec2(40, 5), chart.LineStyle{Color: red, Width: 1, Dash: chart.Dashed})
	// 6 on, 4 off
	assert.Equal(t, red, s.Image.RGBAAt(2, 5))
	assert.Equal(t, white, s.Image.RGBAAt(8, 5))
	assert.Equal(t, red, s.Image.RGBAAt(12, 5))
}

func TestDrawRect(t *testing.T) {
	s := newTestSurface()
	s.DrawRect(math32.Box2{Min: math32.Vec2(5, 5), Max: math32.Vec2(15, 15)}, chart.FillStyle{Fill: red})
	assert.Equal(t, red, s.Image.RGBAAt(10, 10))
	assert.Equal(t, red, s.Image.RGBAAt(5, 5))
	assert.Equal(t, white, s.Image.RGBAAt(15, 15))

	s.DrawRect(math32.Box2{Min: math32.Vec2(20, 20), Max: math32.Vec2(35, 35)}, chart.FillStyle{Stroke: blue, Width: 1})
	assert.Equal(t, blue, s.Image.RGBAAt(20, 25))
	assert.Equal(t, blue, s.Image.RGBAAt(35, 25))
	assert.Equal(t, blue, s.Image.RGBAAt(25, 20))
	assert.Equal(t, white, s.Image.RGBAAt(27, 27))

	// a flat body still covers a pixel row
	s.DrawRect(math32.Box2{Min: math32.Vec2(2, 30), Max: math32.Vec2(8, 30)}, chart.FillStyle{Fill: red})
	assert.Equal(t, red, s.Image.RGBAAt(4, 30))
}

func TestDrawText(t *testing.T) {
	s := newTestSurface()
	s.DrawText(math32.Vec2(2, 2), "", chart.TextStyle{Color: red, Size: 13})
	s.DrawText(math32.Vec2(2, 2), "8", chart.TextStyle{Size: 13})
	assert.Equal(t, 0, countNot(s.Image, white, s.Bounds()))

	s.DrawText(math32.Vec2(2, 2), "88", chart.TextStyle{Color: red, Size: 13})
	sz := chart.DefaultMeasurer.MeasureText("88", 13)
	box := image.Rect(2, 2, 2+int(sz.X), 2+int(sz.Y))
	assert.NotZero(t, countNot(s.Image, white, box))
	assert.Equal(t, countNot(s.Image, white, s.Bounds()), countNot(s.Image, white, box))
}

func countNot(img *image.RGBA, c color.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != c {
				n++
			}
		}
	}
	return n
}

func TestRenderPanel(t *testing.T) {
	src := chart.NewDataSource[chart.Candle]()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	v := 100.0
	for i := 0; i < 40; i++ {
		d := float64(i%7) - 3
		require.NoError(t, src.Append(chart.Candle{
			Time: day.AddDate(0, 0, i), Open: v, Close: v + d,
			High: max(v, v+d) + 2, Low: min(v, v+d) - 2,
		}))
		v += d / 2
	}
	vol := chart.NewDataSource[float64]()
	for i := 0; i < 40; i++ {
		require.NoError(t, vol.Append(float64(i%5+1)*1000))
	}

	price := chart.NewPanel()
	require.NoError(t, price.AddDrawer(chart.NewCandleDrawer(src)))
	volume := chart.NewPanel()
	require.NoError(t, volume.AddDrawer(chart.NewHistogramDrawer(vol)))
	pg := chart.NewPanelGroup()
	require.NoError(t, pg.AddPanel(price, 3))
	require.NoError(t, pg.AddPanel(volume, 1))
	pg.LinkAll()

	s := New(image.Pt(480, 320))
	pg.Layout(s.Bounds())
	require.NoError(t, pg.SetXRange(0, 40))
	pg.PointerMove(image.Pt(200, 100))
	require.NoError(t, pg.RenderAll(s))
	imagex.Assert(t, s.Image, "candles")

	// every filled bar and candle body shows its fill color at its
	// center, away from the cross-hair lines and labels
	rec := &chart.Recorder{}
	require.NoError(t, pg.RenderAll(rec))
	checked := 0
	for _, op := range rec.Ops {
		if op.Kind != chart.OpRect || op.Fill.Fill == nil {
			continue
		}
		x0, x1 := min(op.Box.Min.X, op.Box.Max.X), max(op.Box.Min.X, op.Box.Max.X)
		y0, y1 := min(op.Box.Min.Y, op.Box.Max.Y), max(op.Box.Min.Y, op.Box.Max.Y)
		if x1-x0 < 4 || y1-y0 < 4 {
			continue
		}
		cx, cy := int((x0+x1)/2), int((y0+y1)/2)
		if abs(cx-200) < 30 || abs(cy-100) < 12 {
			continue
		}
		want := color.RGBAModel.Convert(op.Fill.Fill).(color.RGBA)
		assert.Equal(t, want, s.Image.RGBAAt(cx, cy), "rect %v", op.Box)
		checked++
	}
	assert.Greater(t, checked, 20)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
