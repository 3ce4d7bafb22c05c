// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValuePrinter formats values for [FormatValue]. Replace it to change
// the locale of value labels.
var ValuePrinter = message.NewPrinter(language.English)

// FormatValue formats a value with two decimals and digit grouping.
func FormatValue(v float64) string {
	return ValuePrinter.Sprintf("%.2f", v)
}

// FormatIndex formats an index value as an integer.
func FormatIndex(v float64) string {
	return strconv.Itoa(int(math.Floor(v)))
}

// FormatCompact formats a value with a K, M or B suffix above a
// thousand, as for volume axes.
func FormatCompact(v float64) string {
	a := math.Abs(v)
	switch {
	case a >= 1e9:
		return ValuePrinter.Sprintf("%.1fB", v/1e9)
	case a >= 1e6:
		return ValuePrinter.Sprintf("%.1fM", v/1e6)
	case a >= 1e3:
		return ValuePrinter.Sprintf("%.1fK", v/1e3)
	}
	return ValuePrinter.Sprintf("%.0f", v)
}

// DateFormatter returns a formatter for an index axis that prints the
// time of the candle at each index with the given [time.Time.Format]
// layout. Indexes without a candle yield an empty label.
func DateFormatter(src Records[Candle], layout string) func(v float64) string {
	return func(v float64) string {
		i := int(math.Floor(v))
		if i < 0 || i >= src.Len() {
			return ""
		}
		t := src.At(i).Time
		if t.IsZero() {
			return ""
		}
		return t.Format(layout)
	}
}

// DefaultDateLayout is the date layout used by the CLI and examples.
const DefaultDateLayout = time.DateOnly

// tickSettings are the axis settings that determine its ticks
// besides the range.
type tickSettings struct {
	count      int
	nice, skip bool
}

func (ax *Axis) tickSettings() tickSettings {
	if ax == nil {
		return tickSettings{}
	}
	return tickSettings{count: ax.LabelCount, nice: ax.Style.NiceTicks, skip: ax.Style.SkipLowestTick}
}

// format formats v with the axis Format function, or the default
// for its domain.
func (ax *Axis) format(v float64) string {
	switch {
	case ax.Format != nil:
		return ax.Format(v)
	case ax.Domain == IndexDomain:
		return FormatIndex(v)
	}
	return FormatValue(v)
}

// Ticks returns the tick values inside the visible range, according
// to LabelCount and the style settings.
func (ax *Axis) Ticks() []float64 {
	if ax.LabelCount <= 0 {
		return nil
	}
	lo, hi := ax.Range()
	var ticks []float64
	switch {
	case ax.Domain == IndexDomain:
		ticks = indexTicks(lo, hi, ax.LabelCount)
	case ax.Style.NiceTicks:
		ticks = niceTicks(lo, hi, ax.LabelCount)
	default:
		ticks = stepTicks(lo, hi, ax.LabelCount)
	}
	if ax.Style.SkipLowestTick && len(ticks) > 1 && ticks[0]-lo < tickEps*max(1, math.Abs(lo)) {
		ticks = ticks[1:]
	}
	return ticks
}

// indexTicks returns integer ticks in [lo, hi) with an integer step
// that gives at most about count ticks.
func indexTicks(lo, hi float64, count int) []float64 {
	if hi <= lo {
		return nil
	}
	step := math.Max(1, math.Ceil((hi-lo)/float64(count)))
	first := math.Ceil(lo/step) * step
	var ticks []float64
	// far from zero, first+k*step can round back onto the previous tick
	for k := 0; k <= count+1; k++ {
		v := first + float64(k)*step
		if v >= hi {
			break
		}
		if n := len(ticks); n > 0 && ticks[n-1] == v {
			continue
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// stepTicks splits [lo, hi) into count equal steps starting at lo.
func stepTicks(lo, hi float64, count int) []float64 {
	if hi <= lo {
		return nil
	}
	step := (hi - lo) / float64(count)
	ticks := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		ticks = append(ticks, lo+float64(i)*step)
	}
	return ticks
}
