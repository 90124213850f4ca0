// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import "github.com/juh9870/egui-colors/okhsl"

// Light-mode tuning tables, indexed by scale step.
var (
	// lightLighten is the linear-space lightening factor for each of
	// the eight steps below the solid accent.
	lightLighten = [8]float32{0.965, 0.9, 0.82, 0.75, 0.63, 0.51, 0.39, 0.27}

	// lightClampL is the per-step lightness ceiling applied when the
	// seed itself is very light, to keep the background steps from
	// collapsing into white.
	lightClampL = [8]float32{0.99, 0.98, 0.97, 0.95, 0.93, 0.90, 0.88, 0.85}

	// lightDarken is the Okhsl darkening factor for the three text
	// steps above the solid accent.
	lightDarken = [3]float32{0.1, 0.2, 0.55}
)

// lightScale builds the light-mode scale: eight progressively lighter
// background/border steps derived by lightening the linear seed, the
// seed itself as the solid accent, and three darker text steps derived
// in Okhsl directly.
func (g *Generator) lightScale(seed okhsl.LinSRGB) [NumSteps]okhsl.HSL {
	hsl := okhsl.FromLinear(seed)
	hue := hsl.HueDegrees()

	var s [NumSteps]okhsl.HSL
	s[SolidBackgrounds] = hsl
	for i, f := range lightLighten {
		s[i] = okhsl.FromLinear(seed.Lighten(f))
	}

	for i := range s {
		if i < 8 {
			if d := lightHueShift(i, hue); d != 0 {
				s[i].H = okhsl.HueFromDegrees(s[i].HueDegrees() + d)
			}
		}
		if i >= 9 {
			s[i] = hsl.Darken(lightDarken[i-9])
		}
		if i == SolidBackgrounds {
			continue
		}
		// Boost saturation relative to the seed everywhere but the
		// accent itself; greenish hues get less to avoid glare.
		if hsl.S > 0.01 && hsl.L > 0.01 {
			s[i].S = clamp(hsl.S*hsl.L+lightSatBonus(hue), 0.1, 1-lightSatClamp(hue))
		}
		if i < 8 && hsl.L > 0.79 {
			s[i].L = clamp(s[i].L, lightClampL[i]-0.8, lightClampL[i])
		}
	}

	s[LowContrastText].L = clamp(s[LowContrastText].L, 0.43, 0.50)
	s[HighContrastText].L *= 0.9

	// A seed too light to carry white text cannot serve as the solid
	// accent as-is: pin the accent to a fixed legible lightness and
	// derive the hover step from it.
	if g.Contrast(white, hsl.AsRGBA()) > LowContrastLc {
		s[SolidBackgrounds].L = 0.68
		s[HoveredSolidBackgrounds].L = s[SolidBackgrounds].L * 0.9
		s[HoveredSolidBackgrounds].S = s[SolidBackgrounds].S * 0.9
	} else {
		s[HoveredSolidBackgrounds].S = s[SolidBackgrounds].S
	}
	return s
}

// lightHueShift returns the corrective hue shift in degrees for the
// lightened step i, compensating the perceived temperature drift that
// linear lightening introduces: warm seeds drift warmer, cool seeds
// drift cooler.
func lightHueShift(i int, hue float32) float32 {
	switch {
	case hue > 0 && hue < 90:
		return 10 - float32(i)
	case hue > 200 && hue < 280:
		return -10 - float32(i)
	}
	return 0
}

// lightSatBonus returns the saturation bonus added to every non-accent
// step, tapering to zero toward the middle of the green/teal band
// (whole degrees 100..216) where full bonus oversaturates.
func lightSatBonus(hue float32) float32 {
	switch hd := int(hue); {
	case hd >= 100 && hd <= 158:
		return float32(158-hd) / 58 * 0.25
	case hd >= 159 && hd <= 216:
		return float32(hd-159) / 58 * 0.25
	}
	return 0.25
}

// lightSatClamp returns how much of the saturation ceiling is shaved
// off for seeds in the green/teal band, peaking mid-band.
func lightSatClamp(hue float32) float32 {
	switch hd := int(hue); {
	case hd >= 100 && hd <= 158:
		return float32(hd-100) / 58 * 0.12
	case hd >= 159 && hd <= 217:
		return float32(217-hd) / 58 * 0.12
	}
	return 0
}
