// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderDrawer records its calls in a shared log.
type orderDrawer struct {
	name  string
	layer Layer
	log   *[]string
	fail  error
	geom  Geometry
}

func (od *orderDrawer) Bind() error    { return nil }
func (od *orderDrawer) Source() Source { return nil }
func (od *orderDrawer) Layer() Layer   { return od.layer }

func (od *orderDrawer) Prepare(vr IndexRange, x, y *Axis) (*Geometry, error) {
	*od.log = append(*od.log, "prepare "+od.name)
	return &od.geom, od.fail
}

func (od *orderDrawer) Draw(s Surface, g *Geometry) {
	*od.log = append(*od.log, "draw "+od.name)
}

// logSurface logs clears into the same log as orderDrawer.
type logSurface struct {
	Recorder
	log *[]string
}

func (ls *logSurface) Clear(r image.Rectangle, bg color.Color) {
	*ls.log = append(*ls.log, "clear")
	ls.Recorder.Clear(r, bg)
}

func bareTestPanel() *Panel {
	pn := NewPanel()
	pn.X().Style.Grid = false
	pn.X().Style.Labels = false
	pn.Y().Style.Grid = false
	pn.Y().Style.Labels = false
	pn.Resize(image.Rect(0, 0, 400, 300))
	return pn
}

func TestPanelRenderOrder(t *testing.T) {
	var log []string
	pn := NewPanel()
	for _, d := range pn.Drawers() {
		assert.True(t, pn.RemoveDrawer(d))
	}
	assert.False(t, pn.RemoveDrawer(&orderDrawer{}))
	pn.Resize(image.Rect(0, 0, 400, 300))
	a := &orderDrawer{name: "a", layer: Data, log: &log}
	b := &orderDrawer{name: "b", layer: Data, log: &log}
	grid := &orderDrawer{name: "grid", layer: Background, log: &log}
	labels := &orderDrawer{name: "labels", layer: Overlay, log: &log}
	require.NoError(t, pn.AddDrawer(a))
	require.NoError(t, pn.AddDrawer(labels))
	require.NoError(t, pn.AddDrawer(b))
	require.NoError(t, pn.AddDrawer(grid))

	s := &logSurface{log: &log}
	require.NoError(t, pn.Render(s))
	assert.Equal(t, []string{
		"prepare grid", "prepare a", "prepare b", "prepare labels",
		"clear",
		"draw grid", "draw a", "draw b", "draw labels",
	}, log)
}

func TestPanelRenderErrorKeepsState(t *testing.T) {
	var log []string
	pn := bareTestPanel()
	src := NewDataSource[float64]()
	require.NoError(t, src.Extend(1, 2, 3))
	require.NoError(t, pn.AddDrawer(NewHistogramDrawer(src)))
	bad := &orderDrawer{name: "bad", layer: Data, log: &log, fail: ErrMissingAxis}
	require.NoError(t, pn.AddDrawer(bad))
	require.NoError(t, pn.SetXRange(0, 3))

	rec := &Recorder{}
	assert.ErrorIs(t, pn.Render(rec), ErrMissingAxis)
	assert.Empty(t, rec.Ops)
	lo, hi := pn.X().Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 3.0, hi)
	assert.Equal(t, 3, src.Len())

	bad.fail = nil
	require.NoError(t, pn.Render(rec))
	assert.Equal(t, 3+1, rec.Count(OpRect))
	assert.Equal(t, OpClear, rec.Ops[0].Kind)
	assert.False(t, pn.NeedsRender())
}

func TestPanelSetXRange(t *testing.T) {
	pn := bareTestPanel()
	require.NoError(t, pn.SetXRange(0, 7))
	assert.ErrorIs(t, pn.SetXRange(7, 0), ErrInvalidRange)
	assert.ErrorIs(t, pn.SetXRange(0, math.NaN()), ErrInvalidRange)
	lo, hi := pn.X().Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 7.0, hi)

	require.NoError(t, pn.SetXRange(2.5, 6.2))
	assert.Equal(t, IndexRange{2, 7}, pn.VisibleRange())
	require.NoError(t, pn.SetXRange(-3, 1))
	assert.Equal(t, IndexRange{0, 1}, pn.VisibleRange())
}

func TestPanelRemoveDrawerUnsubscribes(t *testing.T) {
	pn := bareTestPanel()
	pn.AutoScroll = true
	src := NewDataSource[float64]()
	other := NewDataSource[float64]()
	h1 := NewHistogramDrawer(src)
	h2 := NewHistogramDrawer(src)
	require.NoError(t, pn.AddDrawer(h1))
	require.NoError(t, pn.AddDrawer(h2))
	require.NoError(t, pn.AddDrawer(NewHistogramDrawer(other)))
	require.NoError(t, pn.SetXRange(0, 10))
	require.NoError(t, pn.Render(&Recorder{}))

	// still used by h2
	assert.True(t, pn.RemoveDrawer(h1))
	require.NoError(t, pn.Render(&Recorder{}))
	require.NoError(t, src.Extend(make([]float64, 12)...))
	assert.True(t, pn.NeedsRender())
	lo, hi := pn.X().Range()
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 12.0, hi)

	assert.True(t, pn.RemoveDrawer(h2))
	require.NoError(t, pn.Render(&Recorder{}))
	require.NoError(t, src.Extend(make([]float64, 8)...))
	assert.False(t, pn.NeedsRender())
	lo, hi = pn.X().Range()
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 12.0, hi)
}

func TestPanelLayout(t *testing.T) {
	pn := NewPanel()
	pn.Style.Padding = Padding{Left: 50, Top: 10, Right: 20, Bottom: 30}
	pn.Resize(image.Rect(100, 200, 600, 500))
	pa := pn.PlotArea()
	assert.Equal(t, float32(150), pa.Min.X)
	assert.Equal(t, float32(210), pa.Min.Y)
	assert.Equal(t, float32(580), pa.Max.X)
	assert.Equal(t, float32(470), pa.Max.Y)

	p0, p1 := pn.X().Extent()
	assert.Equal(t, 150.0, p0)
	assert.Equal(t, 580.0, p1)
	p0, p1 = pn.Y().Extent()
	assert.Equal(t, 470.0, p0)
	assert.Equal(t, 210.0, p1)

	pn.Resize(image.Rect(0, 0, 10, 10))
	pa = pn.PlotArea()
	assert.GreaterOrEqual(t, pa.Max.X, pa.Min.X)
	assert.GreaterOrEqual(t, pa.Max.Y, pa.Min.Y)
}

func TestPanelAutoFit(t *testing.T) {
	pn := bareTestPanel()
	src := testCandles(t)
	require.NoError(t, pn.AddDrawer(NewCandleDrawer(src)))
	require.NoError(t, pn.SetXRange(0, 2))
	require.NoError(t, pn.Render(&Recorder{}))
	lo, hi := pn.Y().Range()
	// lows and highs of the first two candles are 9 and 14
	assert.InDelta(t, 11.5-2.5*1.1, lo, 1e-9)
	assert.InDelta(t, 11.5+2.5*1.1, hi, 1e-9)

	pn.Y().AutoFit = false
	require.NoError(t, pn.SetXRange(0, 4))
	require.NoError(t, pn.Render(&Recorder{}))
	lo2, hi2 := pn.Y().Range()
	assert.Equal(t, lo, lo2)
	assert.Equal(t, hi, hi2)
}

func TestPanelAutoScroll(t *testing.T) {
	pn := bareTestPanel()
	pn.AutoScroll = true
	src := NewDataSource[float64]()
	require.NoError(t, pn.AddDrawer(NewHistogramDrawer(src)))
	require.NoError(t, pn.SetXRange(0, 10))

	for i := 0; i < 10; i++ {
		require.NoError(t, src.Append(float64(i)))
	}
	lo, hi := pn.X().Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)

	require.NoError(t, src.Extend(10, 11, 12))
	lo, hi = pn.X().Range()
	assert.Equal(t, 3.0, lo)
	assert.Equal(t, 13.0, hi)

	// scrolled back: new data does not move the view
	require.NoError(t, pn.SetXRange(0, 5))
	require.NoError(t, src.Append(13))
	lo, hi = pn.X().Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 5.0, hi)
}

func TestPanelAxes(t *testing.T) {
	pn := NewPanel()
	src := NewDataSource[float64]()
	hd := NewHistogramDrawer(src)
	require.NoError(t, pn.AddDrawer(hd))
	assert.Len(t, pn.Drawers(), 5)

	price := NewValueAxis()
	price.Name = "price"
	require.NoError(t, pn.AddAxis(nil, price))
	assert.Equal(t, []*Axis{price}, pn.Ys())
	assert.Len(t, pn.Drawers(), 5)
	for _, e := range pn.entries {
		assert.Equal(t, price, e.y)
	}

	volume := NewValueAxis()
	volume.Style.Grid = false
	require.NoError(t, pn.AddAxis(nil, volume))
	assert.Len(t, pn.Ys(), 2)
	assert.Len(t, pn.Drawers(), 7)
	require.NoError(t, pn.AddDrawer(NewHistogramDrawer(src), volume))
	assert.ErrorIs(t, pn.AddDrawer(NewHistogramDrawer(src), NewValueAxis()), ErrMissingAxis)

	x := NewIndexAxis()
	x.Style.Labels = false
	require.NoError(t, pn.AddAxis(x, nil))
	assert.Equal(t, x, pn.X())
	assert.Len(t, pn.Drawers(), 7)

	assert.ErrorIs(t, pn.AddAxis(NewValueAxis(), nil), ErrUnsupportedCapability)
	assert.ErrorIs(t, pn.AddAxis(nil, NewIndexAxis()), ErrUnsupportedCapability)

	pn.Resize(image.Rect(0, 0, 400, 300))
	require.NoError(t, src.Extend(1, 2, 3))
	require.NoError(t, pn.Render(&Recorder{}))
}

func TestPanelDecorations(t *testing.T) {
	pn := NewPanel()
	pn.Resize(image.Rect(0, 0, 640, 480))
	src := NewDataSource[float64]()
	require.NoError(t, src.Extend(5, 10, 15, 20, 25, 30, 35, 40, 45, 50))
	require.NoError(t, pn.AddDrawer(NewHistogramDrawer(src)))
	require.NoError(t, pn.SetXRange(0, 10))

	rec := &Recorder{}
	require.NoError(t, pn.Render(rec))
	assert.Contains(t, rec.Texts(), "4")
	assert.NotZero(t, rec.Count(OpLine))
	nlines := rec.Count(OpLine)

	pn.X().Style.Grid = false
	pn.X().Style.Labels = false
	rec.Reset()
	require.NoError(t, pn.Render(rec))
	assert.NotContains(t, rec.Texts(), "4")
	assert.Less(t, rec.Count(OpLine), nlines)

	// decorations start hidden on an axis added with them off
	volume := NewValueAxis()
	volume.Style.Grid = false
	volume.Style.Labels = false
	require.NoError(t, pn.AddAxis(nil, volume))
	rec.Reset()
	require.NoError(t, pn.Render(rec))
	hidden := rec.Count(OpLine)
	ntexts := len(rec.Texts())

	volume.Style.Grid = true
	volume.Style.Labels = true
	rec.Reset()
	require.NoError(t, pn.Render(rec))
	assert.Greater(t, rec.Count(OpLine), hidden)
	assert.Greater(t, len(rec.Texts()), ntexts)
}

func TestPanelVisibleRangeHuge(t *testing.T) {
	pn := bareTestPanel()
	src := NewDataSource[float64]()
	require.NoError(t, src.Extend(1, 2, 3, 4, 5))
	require.NoError(t, pn.AddDrawer(NewHistogramDrawer(src)))

	require.NoError(t, pn.SetXRange(0, 1e19))
	vr := pn.VisibleRange()
	assert.Equal(t, 0, vr.Begin)
	assert.Equal(t, maxIndex, vr.End)
	rec := &Recorder{}
	require.NoError(t, pn.Render(rec))
	bars := 0
	for _, op := range rec.Ops {
		if op.Kind == OpRect && op.Fill.Fill != nil {
			bars++
		}
	}
	assert.Equal(t, 5, bars)

	require.NoError(t, pn.SetXRange(-1e19, -5))
	assert.Equal(t, IndexRange{}, pn.VisibleRange())
}

func TestPanelNavigation(t *testing.T) {
	pn := bareTestPanel()
	pn.Style.Padding = Padding{}
	pn.Resize(image.Rect(0, 0, 100, 100))
	require.NoError(t, pn.SetXRange(0, 10))

	require.NoError(t, pn.PanPixels(-20))
	lo, hi := pn.X().Range()
	assert.InDelta(t, 2, lo, 1e-9)
	assert.InDelta(t, 12, hi, 1e-9)

	require.NoError(t, pn.ZoomAt(50, 2))
	lo, hi = pn.X().Range()
	assert.InDelta(t, -3, lo, 1e-9)
	assert.InDelta(t, 17, hi, 1e-9)
	assert.ErrorIs(t, pn.ZoomAt(50, -1), ErrInvalidRange)
}

func TestPanelObserver(t *testing.T) {
	pn := bareTestPanel()
	pn.Name = "main"
	var stats []FrameStats
	pn.Observer = FrameObserverFunc(func(st FrameStats) { stats = append(stats, st) })
	src := NewDataSource[float64]()
	require.NoError(t, src.Extend(1, 2, 3))
	require.NoError(t, pn.AddDrawer(NewHistogramDrawer(src)))
	require.NoError(t, pn.SetXRange(0, 3))
	require.NoError(t, pn.Render(&Recorder{}))

	require.Len(t, stats, 1)
	assert.Equal(t, "main", stats[0].Panel)
	assert.Equal(t, IndexRange{0, 3}, stats[0].Visible)
	assert.Equal(t, 4, stats[0].Primitives)
	assert.NoError(t, stats[0].Err)
}
