// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chart is a charting engine for dense financial time series.

A [DataSource] holds an append-only sequence of records ([Candle],
float64 or [TextLabelInfo]). A [Drawer] binds one DataSource to the
[Axis] pair of a [Panel] and turns the visible slice of the data into
[Geometry] that is then emitted onto a [Surface]. Panels repaint fully
on every [Panel.Render] call: only the data inside the visible index
range is touched, so the cost of a frame does not depend on how much
history has been appended or how far the view has been scrolled.

Several panels can be stacked in a [PanelGroup], and their cross-hairs
linked with [Panel.LinkXTo] and [Panel.LinkYTo] so that moving the
pointer over one panel highlights the same position in the others.

A minimal histogram:

	src := chart.NewDataSource[float64]()
	pn := chart.NewPanel()
	pn.AddDrawer(chart.NewHistogramDrawer(src))
	src.Extend(100, 110, 120, 90, 130)
	pn.SetXRange(0, 5)
	pn.Resize(image.Rect(0, 0, 640, 480))
	err := pn.Render(surface)

Nothing in this package is safe for concurrent use: data mutation,
pointer events and rendering all belong on the host's UI goroutine.
*/
package chart
