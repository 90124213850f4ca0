// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import "github.com/juh9870/egui-colors/okhsl"

// Dark-mode tuning tables, indexed by scale step.
var (
	// darkDarken is the linear-space darkening factor for each of the
	// eight steps below the solid accent.
	darkDarken = [8]float32{0.975, 0.96, 0.93, 0.89, 0.83, 0.75, 0.64, 0.39}

	// darkClampS is the per-step fraction of the seed saturation that
	// bounds a darkened step's saturation from above.
	darkClampS = [8]float32{0.3, 0.5, 0.8, 1, 1, 0.95, 0.7, 0.8}

	// darkClampS2 is the per-step saturation floor used for seeds
	// saturated enough to carry it.
	darkClampS2 = [8]float32{0.14, 0.16, 0.44, 0.62, 0.61, 0.56, 0.52, 0.51}

	// darkClampL is the per-step lightness floor; the matching ceiling
	// scales with how desaturated the seed is.
	darkClampL = [8]float32{0.08, 0.10, 0.15, 0.19, 0.23, 0.29, 0.36, 0.47}

	// darkLighten is the Okhsl lightening factor for the three text
	// steps above the solid accent.
	darkLighten = [3]float32{0.095, 0.45, 0.75}
)

// darkScale builds the dark-mode scale: eight progressively darker
// background/border steps derived by darkening the linear seed, the
// seed itself as the solid accent, and three lighter text steps
// derived in Okhsl directly.
func (g *Generator) darkScale(seed okhsl.LinSRGB) [NumSteps]okhsl.HSL {
	hsl := okhsl.FromLinear(seed)
	hue := hsl.HueDegrees()

	var s [NumSteps]okhsl.HSL
	s[SolidBackgrounds] = hsl

	for i := 0; i < 8; i++ {
		s[i] = okhsl.FromLinear(seed.Darken(darkDarken[i]))
		first, second := darkLightenNudges(i, hue)
		s[i] = s[i].Lighten(first).Lighten(second)

		// Low-saturation seeds get proportionally more of a boost,
		// then everything is clamped into the per-step bands.
		s[i].S *= 1 + 2*(1-hsl.S)
		if hsl.S > 0.36 {
			s[i].S = clamp(s[i].S, darkClampS2[i], clamp(hsl.S*darkClampS[i], darkClampS2[i]+0.01, 1))
		} else {
			s[i].S = clamp(s[i].S, 0, hsl.S*darkClampS[i])
		}
		s[i].L = clamp(s[i].L, darkClampL[i], clamp(darkClampL[i]*(1.71-hsl.S), darkClampL[i]+0.01, 1))
	}

	for i := 9; i < NumSteps; i++ {
		s[i] = hsl.Lighten(darkLighten[i-9])
		if (hue >= 0 && hue <= 90) || (hue >= 300 && hue <= 350) {
			s[i].H = okhsl.HueFromDegrees(s[i].HueDegrees() + 2*float32(i-8))
		}
		if hue >= 100 && hue <= 280 {
			s[i].H = okhsl.HueFromDegrees(s[i].HueDegrees() - 2*float32(i-8))
		}
	}

	s[LowContrastText].L = clamp(s[LowContrastText].L, 0.73, 1)
	s[HighContrastText].L = clamp(s[HighContrastText].L, 0.88, 1)
	// Cyan/green text steps glare at full saturation.
	if hue >= 115 && hue <= 220 {
		s[HighContrastText].S = clamp(s[HighContrastText].S, 0, hsl.S*0.75)
		s[LowContrastText].S = clamp(s[LowContrastText].S, 0, hsl.S*0.9)
	}

	// A seed this dark would disappear against the dark backdrop:
	// lift the accent steps instead of leaving them be.
	if g.Contrast(white, hsl.AsRGBA()) < NearBlackLc {
		s[SolidBackgrounds] = hsl.Lighten(0.3)
		s[SolidBackgrounds].S = clamp(hsl.S*1.25, 0, 1)
		s[HoveredSolidBackgrounds] = s[HoveredSolidBackgrounds].Lighten(0.25)
		s[HoveredSolidBackgrounds].S = hsl.S
	}
	return s
}

// darkLightenNudges returns the two lightening factors applied in
// sequence to darkened step i for the given seed hue. Purple through
// magenta seeds (259..323 degrees) get a per-step lift to keep them
// from looking muddy at low lightness; magenta through red seeds
// (323..350) additionally lift the two border steps, 6 and 7.
func darkLightenNudges(i int, hue float32) (first, second float32) {
	if hue >= 259 && hue <= 323 {
		first = float32(i+1) * 0.011
	}
	if hue >= 323 && hue <= 350 && (i == 6 || i == 7) {
		second = float32(i+1) * 0.01
	}
	return first, second
}
