// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineGridTicks(t *testing.T) {
	x, y := testAxes(t, 10, 0, 100)
	gd := NewLineGridDrawer(Horizontal)
	require.NoError(t, gd.Bind())
	assert.Equal(t, Background, gd.Layer())
	assert.Nil(t, gd.Source())

	g, err := gd.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	require.Len(t, g.Lines, 5)
	ln := g.Lines[1]
	assert.Equal(t, math32.Vec2(200, 0), ln.From)
	assert.Equal(t, math32.Vec2(200, 400+gd.Style.TailLength), ln.To)
	assert.Equal(t, DefaultGridColor, ln.Style.Color)

	y.Style.NiceTicks = false
	vg := NewLineGridDrawer(Vertical)
	vg.Styler(func(s *GridStyle) {
		s.TailLength = 10
		s.Dash = Dotted
	})
	g, err = vg.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	require.Len(t, g.Lines, 4)
	assert.Equal(t, math32.Vec2(-10, 320), g.Lines[0].From)
	assert.Equal(t, math32.Vec2(1000, 320), g.Lines[0].To)
	assert.Equal(t, Dotted, g.Lines[0].Style.Dash)
}

func TestLineGridSource(t *testing.T) {
	src := NewDataSource[float64]()
	require.NoError(t, src.Extend(10, 25, 50))
	gd := NewLineGridSourceDrawer(src, Vertical)
	x, y := testAxes(t, 10, 0, 100)
	_, err := gd.Prepare(IndexRange{0, 10}, x, y)
	assert.ErrorIs(t, err, ErrUnbound)

	require.NoError(t, gd.Bind())
	g, err := gd.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	require.Len(t, g.Lines, 3)
	assert.Equal(t, y.PX(25), g.Lines[1].From.Y)

	require.NoError(t, src.Extend(75, 120))
	g, err = gd.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	assert.Len(t, g.Lines, 4)

	pn := NewPanel()
	assert.ErrorIs(t, pn.AddDrawer(NewLineGridSourceDrawer(testCandles(t), Horizontal)), ErrTypeMismatch)
}

func TestLineGridDisabled(t *testing.T) {
	x, y := testAxes(t, 10, 0, 100)
	gd := NewLineGridDrawer(Horizontal)
	gd.Style.Color = nil
	g, err := gd.Prepare(IndexRange{0, 10}, x, y)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}
