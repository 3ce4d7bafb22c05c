// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tick selection follows the Talbot, Lin and Hanrahan labelling
// algorithm (doi:10.1109/TVCG.2010.130) as implemented in gonum/plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "math"

// tickEps is 100 times the float64 machine epsilon times the radix.
const tickEps = 100 * 2.0 / (1 << 53)

// niceNumbers are the preferred step mantissas, best first.
var niceNumbers = []float64{1, 5, 2, 2.5, 4, 3}

// tickWeights weighs the four scores of a candidate tick set.
type tickWeights struct {
	simplicity, coverage, density, legibility float64
}

var defaultTickWeights = tickWeights{simplicity: 0.25, coverage: 0.2, density: 0.5, legibility: 0.05}

func (w tickWeights) score(s, c, d, l float64) float64 {
	return w.simplicity*s + w.coverage*c + w.density*d + w.legibility*l
}

// tickChoice is the best candidate found so far.
type tickChoice struct {
	n          int
	lMin, step float64
	mag        int
	score      float64
}

// niceTicks returns about want round tick values inside [dMin, dMax].
// It returns nil for an invalid range.
func niceTicks(dMin, dMax float64, want int) []float64 {
	if !finite(dMin) || !finite(dMax) || dMin > dMax {
		return nil
	}
	if want < 2 {
		want = 2
	}
	if dMax-dMin < tickEps {
		return []float64{dMin}
	}
	w := defaultTickWeights
	best := tickChoice{score: -2}

search:
	for skip := 1; ; skip++ {
		for qi, q := range niceNumbers {
			sm := maxSimplicity(qi, skip)
			if w.score(sm, 1, 1, 1) < best.score {
				break search
			}
			for have := 2; ; have++ {
				dm := maxDensity(have, want)
				if w.score(sm, 1, dm, 1) < best.score {
					break
				}
				delta := (dMax - dMin) / float64(have+1) / float64(skip) / q
				for mag := int(math.Ceil(math.Log10(delta))); mag < 309; mag++ {
					step := float64(skip) * q * math.Pow10(mag)
					cm := maxCoverage(dMin, dMax, step*float64(have-1))
					if w.score(sm, cm, dm, 1) < best.score {
						break
					}
					frac := step / float64(skip)
					span := step * float64(have-1)
					first := (math.Floor(dMax/step) - float64(have-1)) * float64(skip)
					last := math.Ceil(dMax/step) * float64(skip)
					for start := first; start <= last && start != start-1; start++ {
						lMin := start * frac
						lMax := lMin + span
						if lMin < dMin || dMax < lMax {
							continue
						}
						sc := w.score(
							simplicity(qi, skip, lMin, lMax, step),
							coverage(dMin, dMax, lMin, lMax),
							density(have, want, dMin, dMax, lMin, lMax),
							1,
						)
						if sc > best.score {
							best = tickChoice{n: have, lMin: lMin, step: float64(skip) * q, mag: mag, score: sc}
						}
					}
				}
			}
		}
	}

	if best.n == 0 {
		return evenTicks(dMin, dMax, want)
	}
	step := best.step * math.Pow10(best.mag)
	ticks := make([]float64, best.n)
	for i := range ticks {
		ticks[i] = best.lMin + float64(i)*step
	}
	return ticks
}

// evenTicks splits [dMin, dMax] into want evenly spaced values.
func evenTicks(dMin, dMax float64, want int) []float64 {
	ticks := make([]float64, want)
	step := (dMax - dMin) / float64(want-1)
	for i := range ticks {
		ticks[i] = dMin + float64(i)*step
	}
	return ticks
}

func simplicity(qi, skip int, lMin, lMax, step float64) float64 {
	zero := 0.0
	m := math.Mod(lMin, step)
	if (m < tickEps || step-m < tickEps) && lMin <= 0 && 0 <= lMax {
		zero = 1
	}
	return 1 - float64(qi)/float64(len(niceNumbers)-1) - float64(skip) + zero
}

func maxSimplicity(qi, skip int) float64 {
	return 1 - float64(qi)/float64(len(niceNumbers)-1) - float64(skip) + 1
}

// coverage scores how closely the extreme ticks match the data range.
func coverage(dMin, dMax, lMin, lMax float64) float64 {
	r := 0.1 * (dMax - dMin)
	hi := dMax - lMax
	lo := dMin - lMin
	return 1 - 0.5*(hi*hi+lo*lo)/(r*r)
}

func maxCoverage(dMin, dMax, span float64) float64 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density scores how close the tick count is to want.
func density(have, want int, dMin, dMax, lMin, lMax float64) float64 {
	rho := float64(have-1) / (lMax - lMin)
	rhot := float64(want-1) / (math.Max(lMax, dMax) - math.Min(dMin, lMin))
	if d := rho / rhot; d >= 1 {
		return 2 - d
	}
	return 2 - rhot/rho
}

func maxDensity(have, want int) float64 {
	if have < want {
		return 1
	}
	return 2 - float64(have-1)/float64(want-1)
}
