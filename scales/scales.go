// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales derives a 12-step accent color scale from a single
// seed color, for either a light or a dark UI, following the Radix
// palette composition: every index of a scale is bound to one fixed
// functional UI role, from the page background at index 0 up to
// high-contrast text at index 11. Generation is a pure function of the
// seed and the mode; the corrective branches that keep the solid
// accent legible are driven by an injectable luminance-contrast
// estimator, [github.com/juh9870/egui-colors/apca.EstimateLc] by
// default.
package scales

import (
	"image/color"

	"github.com/juh9870/egui-colors/apca"
	"github.com/juh9870/egui-colors/okhsl"
)

// Indices of the functional UI roles in a [Scale].
const (
	AppBackground int = iota
	SubtleBackground
	UIElementBackground
	HoveredUIElementBackground
	ActiveUIElementBackground
	SubtleBordersAndSeparators
	UIElementBorderAndFocusRings
	HoveredUIElementBorder
	SolidBackgrounds
	HoveredSolidBackgrounds
	LowContrastText
	HighContrastText

	// NumSteps is the number of steps in a [Scale].
	NumSteps
)

// Scale is an ordered 12-step color scale, one color per UI role.
type Scale [NumSteps]color.RGBA

// Estimator reports a signed luminance-contrast figure for the given
// text color over the given background color, following the sign
// convention of [apca.EstimateLc]: more negative means more contrast
// for light text on a dark background.
type Estimator func(text, bg color.Color) float32

// Calibration thresholds on the contrast estimate. They are tuned
// against the APCA figures and have no closed-form derivation; tests
// pin the behavior around them.
const (
	// LowContrastLc is the white-on-accent contrast below which
	// (closer to zero than which) the solid accent is considered
	// illegible under white text: generation then forces the accent
	// steps to a fixed legible lightness, and consumers should use a
	// dark foreground on the accent.
	LowContrastLc = -46

	// NearBlackLc flags seeds so dark that white text on them exceeds
	// this contrast; in dark mode such a seed would disappear against
	// the dark backdrop and its accent steps are lightened and
	// saturation-boosted instead of darkened.
	NearBlackLc = -95.4
)

var white = color.RGBA{255, 255, 255, 255}

// Generator derives scales using the given contrast estimator.
// The zero value is not usable; use [New].
type Generator struct {
	// Contrast estimates the luminance contrast between a text color
	// and a background color.
	Contrast Estimator
}

// New returns a [Generator] backed by [apca.EstimateLc].
func New() *Generator {
	return &Generator{Contrast: apca.EstimateLc}
}

// Generate derives the 12-step scale for the given seed color and
// mode. The second result reports whether content placed on the solid
// accent steps needs a dark foreground instead of white, which is the
// case when white text on the accent would fall short of the
// [LowContrastLc] calibration point.
func (g *Generator) Generate(seed color.Color, dark bool) (Scale, bool) {
	lin := okhsl.LinearFromColor(seed)
	var hs [NumSteps]okhsl.HSL
	if dark {
		hs = g.darkScale(lin)
	} else {
		hs = g.lightScale(lin)
	}
	var sc Scale
	for i, h := range hs {
		sc[i] = h.AsRGBA()
	}
	return sc, g.DarkForeground(sc[SolidBackgrounds])
}

// DarkForeground reports whether content on the given solid accent
// color needs a dark foreground rather than white.
func (g *Generator) DarkForeground(accent color.Color) bool {
	return g.Contrast(white, accent) > LowContrastLc
}

// Generate derives the 12-step scale for the given seed color and mode
// using the default [apca.EstimateLc] contrast estimator. See
// [Generator.Generate].
func Generate(seed color.Color, dark bool) (Scale, bool) {
	return New().Generate(seed, dark)
}

// ClampCustom clamps an HSV saturation/value pair chosen for a custom
// seed into the usable range for scale generation: very dark and very
// desaturated corners produce degenerate scales, so each axis gets a
// floor interpolated from the other axis, with fixed ceilings of 1.0
// for saturation and 0.99 for value.
func ClampCustom(s, v float32) (float32, float32) {
	var vFloor float32
	switch {
	case s >= 0 && s <= 0.3:
		vFloor = 0.13 + (0-0.13)/(0.3-0)*(s-0)
	case s > 0.3 && s <= 1:
		vFloor = 0 + (0.13-0)/(1-0.3)*(s-0.3)
	}
	var sFloor float32
	switch {
	case v >= 0 && v <= 0.13:
		sFloor = 0.3 + (0-0.3)/(0.13-0)*(v-0)
	case v > 0.13 && v <= 1:
		sFloor = 0 + (0.3-0)/(1-0.13)*(v-0.13)
	}
	return clamp(s, sFloor, 1), clamp(v, vFloor, 0.99)
}

func clamp(x, lo, hi float32) float32 {
	return min(max(x, lo), hi)
}
