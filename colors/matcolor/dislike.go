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
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/math32"
)

// IsDisliked returns whether the given color is in the range of dark
// yellow-greens that are widely disliked, reminding of bile or mold.
func IsDisliked(h hct.HCT) bool {
	hue := math32.Round(h.Hue)
	huePasses := hue >= 90 && hue <= 111
	chromaPasses := math32.Round(h.Chroma) > 16
	tonePasses := math32.Round(h.Tone) < 65
	return huePasses && chromaPasses && tonePasses
}

// FixIfDisliked returns a lighter version of the given color
// if it [IsDisliked], and the color unchanged otherwise.
func FixIfDisliked(h hct.HCT) hct.HCT {
	if IsDisliked(h) {
		return hct.New(h.Hue, h.Chroma, 70)
	}
	return h
}
