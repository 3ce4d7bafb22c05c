// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "time"

// FrameStats describes one [Panel.Render] call.
type FrameStats struct {
	// Panel is the Name of the panel.
	Panel string

	// Duration is the wall time of the render.
	Duration time.Duration

	// Visible is the visible index range of the frame.
	Visible IndexRange

	// Primitives is the number of primitives drawn.
	Primitives int

	// Err is the render error, if any.
	Err error
}

// FrameObserver receives the stats of every rendered frame.
type FrameObserver interface {
	ObserveFrame(st FrameStats)
}

// FrameObserverFunc adapts a function to a [FrameObserver].
type FrameObserverFunc func(st FrameStats)

func (f FrameObserverFunc) ObserveFrame(st FrameStats) { f(st) }
