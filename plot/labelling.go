// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is an implementation of the Talbot, Lin and Hanrahan algorithm
// described in doi:10.1109/TVCG.2010.130, used here to label colorbars.

package plot

import "github.com/chewxy/math32"

// tickEps is the smallest data range that is labelled with nice numbers.
const tickEps = 1e-6

// niceQ are the nice numbers, in order of preference.
var niceQ = []float32{1, 5, 2, 2.5, 4, 3}

// Score weights from the paper: simplicity, coverage, density.
// Legibility is taken to be 1 for every candidate.
const (
	wSimplicity = 0.25
	wCoverage   = 0.2
	wDensity    = 0.5
	wLegibility = 0.05
)

func tickScore(s, c, d float32) float32 {
	return wSimplicity*s + wCoverage*c + wDensity*d + wLegibility
}

// Ticks returns about want nicely rounded tick values that all lie
// within the data range [dMin, dMax].
func Ticks(dMin, dMax float32, want int) []float32 {
	if dMin > dMax {
		dMin, dMax = dMax, dMin
	}
	want = max(want, 2)
	if dMax-dMin < tickEps {
		return []float32{dMin}
	}

	var best struct {
		n          int
		lMin, step float32
		score      float32
	}
	best.score = -2

outer:
	for skip := 1; ; skip++ {
		for qi, q := range niceQ {
			sm := maxSimplicity(qi, skip)
			if tickScore(sm, 1, 1) < best.score {
				break outer
			}
			for have := 2; ; have++ {
				dm := maxDensity(have, want)
				if tickScore(sm, 1, dm) < best.score {
					break
				}
				delta := (dMax - dMin) / float32(have+1) / float32(skip) / q
				for mag := int(math32.Ceil(math32.Log10(delta))); mag < 38; mag++ {
					step := float32(skip) * q * math32.Pow10(mag)
					cm := maxCoverage(dMin, dMax, step*float32(have-1))
					if tickScore(sm, cm, dm) < best.score {
						break
					}
					fracStep := step / float32(skip)
					kStep := step * float32(have-1)
					minStart := (math32.Floor(dMax/step) - float32(have-1)) * float32(skip)
					maxStart := math32.Ceil(dMax/step) * float32(skip)
					for start := minStart; start <= maxStart && start != start-1; start++ {
						lMin := start * fracStep
						lMax := lMin + kStep
						if lMin < dMin-tickEps || dMax+tickEps < lMax {
							continue
						}
						score := tickScore(
							simplicity(qi, skip, lMin, lMax, step),
							coverage(dMin, dMax, lMin, lMax),
							density(have, want, dMin, dMax, lMin, lMax),
						)
						if score > best.score {
							best.n, best.lMin, best.step, best.score = have, lMin, step, score
						}
					}
				}
			}
		}
	}

	if best.score == -2 {
		l := make([]float32, want)
		step := (dMax - dMin) / float32(want-1)
		for i := range l {
			l[i] = dMin + float32(i)*step
		}
		return l
	}
	l := make([]float32, best.n)
	for i := range l {
		l[i] = best.lMin + float32(i)*best.step
	}
	return l
}

// simplicity scores how well the labelling matches the nice number at qi,
// with a bonus when zero is one of the labels.
func simplicity(qi, skip int, lMin, lMax, lStep float32) float32 {
	v := float32(0)
	m := math32.Mod(lMin, lStep)
	if (math32.Abs(m) < tickEps || lStep-m < tickEps) && lMin <= 0 && 0 <= lMax {
		v = 1
	}
	return 1 - float32(qi)/float32(len(niceQ)-1) - float32(skip) + v
}

func maxSimplicity(qi, skip int) float32 {
	return 2 - float32(qi)/float32(len(niceQ)-1) - float32(skip)
}

// coverage scores how closely the extreme labels match the data range.
func coverage(dMin, dMax, lMin, lMax float32) float32 {
	r := 0.1 * (dMax - dMin)
	hi := dMax - lMax
	lo := dMin - lMin
	return 1 - 0.5*(hi*hi+lo*lo)/(r*r)
}

func maxCoverage(dMin, dMax, span float32) float32 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density scores how close the number of labels is to the target.
func density(have, want int, dMin, dMax, lMin, lMax float32) float32 {
	rho := float32(have-1) / (lMax - lMin)
	rhot := float32(want-1) / (max(lMax, dMax) - min(dMin, lMin))
	if d := rho / rhot; d >= 1 {
		return 2 - d
	}
	return 2 - rhot/rho
}

func maxDensity(have, want int) float32 {
	if have < want {
		return 1
	}
	return 2 - float32(have-1)/float32(want-1)
}
