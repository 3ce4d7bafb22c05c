// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

// Candle is a single OHLC record.
type Candle struct {
	Open  float64
	High  float64
	Low   float64
	Close float64

	// Volume is optional and only used by callers that plot it.
	Volume float64

	// Time is the start of the candle period.
	Time time.Time
}

// Validate returns an error if any price is not finite or if
// High and Low do not bound Open and Close.
func (c Candle) Validate() error {
	for _, v := range [4]float64{c.Open, c.High, c.Low, c.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite price in %v", c)
		}
	}
	if c.High < max(c.Open, c.Close) {
		return fmt.Errorf("high %g below body of %v", c.High, c)
	}
	if c.Low > min(c.Open, c.Close) {
		return fmt.Errorf("low %g above body of %v", c.Low, c)
	}
	return nil
}

// Bull reports whether the candle closed at or above its open.
func (c Candle) Bull() bool {
	return c.Close >= c.Open
}

func (c Candle) String() string {
	return fmt.Sprintf("Candle{O:%g H:%g L:%g C:%g}", c.Open, c.High, c.Low, c.Close)
}

// TextLabelInfo is a text label placed along an axis or inside the
// plot area.
type TextLabelInfo struct {
	// Pos is the position along the label axis: an index for
	// horizontal labels, a value for vertical labels.
	Pos float64

	// Text is the label text. Empty labels are skipped.
	Text string

	// Color overrides the drawer's label color if non-nil.
	Color color.Color

	// InPlot places the label inside the plot area at (Pos, Anchor)
	// in data coordinates instead of in the axis margin.
	InPlot bool

	// Anchor is the cross-axis data value used when InPlot is set.
	Anchor float64
}
