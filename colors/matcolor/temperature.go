// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matcolor

import (
	"slices"
	"sync"

	"cogentcore.org/tint/colors/cam/cie"
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/math32"
)

// TemperatureCache computes warm and cool relatives of an input color,
// such as its complement and analogous colors. Temperatures are based
// on the L*a*b* hue and chroma of colors that share the chroma and tone
// of the input. The cache is built on first use.
type TemperatureCache struct {

	// Input is the color the relatives are computed for.
	Input hct.HCT

	once sync.Once

	// byHue holds the colors with the chroma and tone of Input
	// at each integer hue from 0 to 360.
	byHue []hct.HCT

	// tempsByHue holds the raw temperature of each entry of byHue.
	tempsByHue []float32

	inputTemp float32

	coldestTemp, warmestTemp float32
	coldestHue, warmestHue   float32
}

// NewTemperatureCache returns a new [TemperatureCache] for the given color.
func NewTemperatureCache(input hct.HCT) *TemperatureCache {
	return &TemperatureCache{Input: input}
}

func (tc *TemperatureCache) init() {
	tc.once.Do(func() {
		tc.byHue = make([]hct.HCT, 361)
		tc.tempsByHue = make([]float32, 361)
		for hue := range 361 {
			h := hct.New(float32(hue), tc.Input.Chroma, tc.Input.Tone)
			tc.byHue[hue] = h
			tc.tempsByHue[hue] = RawTemperature(h)
		}
		tc.inputTemp = RawTemperature(tc.Input)
		tc.coldestTemp, tc.coldestHue = tc.inputTemp, tc.Input.Hue
		tc.warmestTemp, tc.warmestHue = tc.inputTemp, tc.Input.Hue
		for i, t := range tc.tempsByHue {
			if t < tc.coldestTemp {
				tc.coldestTemp, tc.coldestHue = t, tc.byHue[i].Hue
			}
			if t > tc.warmestTemp {
				tc.warmestTemp, tc.warmestHue = t, tc.byHue[i].Hue
			}
		}
	})
}

// RawTemperature returns the temperature of the given color: warm
// colors such as orange have a positive temperature, and cool colors
// such as blue a negative one. The result is roughly in [-0.5, 1.5].
func RawTemperature(c hct.HCT) float32 {
	x, y, z := cie.XYZ100FromARGB(c.ARGB())
	_, a, b := cie.XYZToLAB(x/100, y/100, z/100)
	hue := math32.SanitizeDegrees(math32.RadToDeg(math32.Atan2(b, a)))
	chroma := math32.Hypot(a, b)
	return -0.5 + 0.02*math32.Pow(chroma, 1.07)*math32.Cos(math32.DegToRad(math32.SanitizeDegrees(hue-50)))
}

// RelativeTemperature returns the temperature of the given color
// relative to the coldest (0) and warmest (1) colors with the chroma
// and tone of the input. It returns 0.5 when all of those colors
// have the same temperature, as for black.
func (tc *TemperatureCache) RelativeTemperature(c hct.HCT) float32 {
	tc.init()
	return tc.relative(RawTemperature(c))
}

func (tc *TemperatureCache) relative(temp float32) float32 {
	rng := tc.warmestTemp - tc.coldestTemp
	if rng == 0 {
		return 0.5
	}
	return (temp - tc.coldestTemp) / rng
}

// InputRelativeTemperature returns the relative temperature of the input.
func (tc *TemperatureCache) InputRelativeTemperature() float32 {
	tc.init()
	return tc.relative(tc.inputTemp)
}

// Warmest returns the warmest color with the chroma and tone of the input.
func (tc *TemperatureCache) Warmest() hct.HCT {
	tc.init()
	return tc.byHue[tc.hueIndex(tc.warmestHue)]
}

// Coldest returns the coldest color with the chroma and tone of the input.
func (tc *TemperatureCache) Coldest() hct.HCT {
	tc.init()
	return tc.byHue[tc.hueIndex(tc.coldestHue)]
}

func (tc *TemperatureCache) hueIndex(hue float32) int {
	return int(math32.Round(math32.SanitizeDegrees(hue)))
}

// isBetween returns whether the angle lies on the arc going
// clockwise from a to b.
func isBetween(angle, a, b float32) bool {
	if a < b {
		return a <= angle && angle <= b
	}
	return a <= angle || angle <= b
}

// Complement returns the color with the chroma and tone of the input
// whose relative temperature is closest to the opposite of the input,
// walking the arc of hues between the coldest and warmest colors on
// which the input lies.
func (tc *TemperatureCache) Complement() hct.HCT {
	tc.init()
	startIsColdestToWarmest := isBetween(tc.Input.Hue, tc.coldestHue, tc.warmestHue)
	startHue, endHue := tc.coldestHue, tc.warmestHue
	if startIsColdestToWarmest {
		startHue, endHue = tc.warmestHue, tc.coldestHue
	}
	smallestError := float32(1000)
	answer := tc.byHue[tc.hueIndex(tc.Input.Hue)]
	complementRelativeTemp := 1 - tc.InputRelativeTemperature()
	for hueAddend := range 361 {
		hue := math32.SanitizeDegrees(startHue + float32(hueAddend))
		if !isBetween(hue, startHue, endHue) {
			continue
		}
		idx := tc.hueIndex(hue)
		err := math32.Abs(complementRelativeTemp - tc.relative(tc.tempsByHue[idx]))
		if err < smallestError {
			smallestError = err
			answer = tc.byHue[idx]
		}
	}
	return answer
}

// Analogous returns count colors (including the input, at the center)
// that are evenly spaced in temperature around the color wheel, which
// is divided into the given number of divisions. The standard
// arguments are 5 and 12.
func (tc *TemperatureCache) Analogous(count, divisions int) []hct.HCT {
	tc.init()
	startHue := tc.hueIndex(tc.Input.Hue)
	startTemp := tc.relative(tc.tempsByHue[startHue])
	allColors := []hct.HCT{tc.byHue[startHue]}

	absoluteTotalTempDelta := float32(0)
	lastTemp := startTemp
	for i := range 360 {
		temp := tc.relative(tc.tempsByHue[math32.SanitizeDegreesInt(startHue+i)])
		absoluteTotalTempDelta += math32.Abs(temp - lastTemp)
		lastTemp = temp
	}

	tempStep := absoluteTotalTempDelta / float32(divisions)
	totalTempDelta := float32(0)
	lastTemp = startTemp
	for hueAddend := 1; len(allColors) < divisions; hueAddend++ {
		idx := math32.SanitizeDegreesInt(startHue + hueAddend)
		c := tc.byHue[idx]
		temp := tc.relative(tc.tempsByHue[idx])
		totalTempDelta += math32.Abs(temp - lastTemp)

		desired := float32(len(allColors)) * tempStep
		indexSatisfied := totalTempDelta >= desired
		indexAddend := 1
		for indexSatisfied && len(allColors) < divisions {
			allColors = append(allColors, c)
			desired = float32(len(allColors)+indexAddend) * tempStep
			indexSatisfied = totalTempDelta >= desired
			indexAddend++
		}
		lastTemp = temp
		if hueAddend > 360 {
			for len(allColors) < divisions {
				allColors = append(allColors, c)
			}
		}
	}

	at := func(i int) hct.HCT {
		n := len(allColors)
		return allColors[((i%n)+n)%n]
	}
	answers := []hct.HCT{tc.Input}
	ccwCount := (count - 1) / 2
	for i := 1; i <= ccwCount; i++ {
		answers = slices.Insert(answers, 0, at(-i))
	}
	cwCount := count - ccwCount - 1
	for i := 1; i <= cwCount; i++ {
		answers = append(answers, at(i))
	}
	return answers
}
