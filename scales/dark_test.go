// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juh9870/egui-colors/apca"
	"github.com/juh9870/egui-colors/okhsl"
)

func TestDarkScaleKeepsLegibleAccent(t *testing.T) {
	seed := color.RGBA{0, 144, 255, 255}
	sc, inv := Generate(seed, true)
	assert.False(t, inv)
	assert.InDelta(t, float32(seed.R), float32(sc[SolidBackgrounds].R), 1)
	assert.InDelta(t, float32(seed.G), float32(sc[SolidBackgrounds].G), 1)
	assert.InDelta(t, float32(seed.B), float32(sc[SolidBackgrounds].B), 1)
}

func TestDarkScaleLiftsNearBlackAccent(t *testing.T) {
	// A near-black seed would vanish against the dark backdrop, so the
	// accent steps are lifted well above it.
	seed := color.RGBA{10, 10, 10, 255}
	sc, _ := Generate(seed, true)

	assert.Greater(t, apca.Luminance(sc[SolidBackgrounds]), 4*apca.Luminance(seed))

	lifted := okhsl.FromLinear(okhsl.LinearFromColor(sc[SolidBackgrounds]))
	orig := okhsl.FromLinear(okhsl.LinearFromColor(seed))
	assert.Greater(t, lifted.L, orig.L+0.2)
}

func TestDarkScaleLightnessBands(t *testing.T) {
	// Every darkened step lands at or above its lightness floor, and
	// the floors keep the steps strictly ordered.
	for _, seed := range testSeeds {
		sc, _ := Generate(seed, true)
		for i := 0; i < 8; i++ {
			h := okhsl.FromLinear(okhsl.LinearFromColor(sc[i]))
			assert.GreaterOrEqual(t, h.L, darkClampL[i]-0.01, "seed %v step %d", seed, i)
		}
	}
}

func TestDarkScaleTextBands(t *testing.T) {
	for _, seed := range testSeeds {
		sc, _ := Generate(seed, true)
		low := okhsl.FromLinear(okhsl.LinearFromColor(sc[LowContrastText]))
		high := okhsl.FromLinear(okhsl.LinearFromColor(sc[HighContrastText]))
		assert.GreaterOrEqual(t, low.L, float32(0.72), "seed %v", seed)
		assert.GreaterOrEqual(t, high.L, float32(0.87), "seed %v", seed)
	}
}

func TestDarkLightenNudges(t *testing.T) {
	// Outside both hue bands there is no nudge.
	first, second := darkLightenNudges(5, 100)
	assert.Equal(t, float32(0), first)
	assert.Equal(t, float32(0), second)

	// Purple band: per-step first nudge only.
	first, second = darkLightenNudges(3, 300)
	assert.InDelta(t, 4*0.011, first, 1e-6)
	assert.Equal(t, float32(0), second)

	// Magenta band: second nudge on the border steps only.
	first, second = darkLightenNudges(6, 330)
	assert.Equal(t, float32(0), first)
	assert.InDelta(t, 7*0.01, second, 1e-6)
	first, second = darkLightenNudges(7, 330)
	assert.Equal(t, float32(0), first)
	assert.InDelta(t, 8*0.01, second, 1e-6)
	first, second = darkLightenNudges(5, 330)
	assert.Equal(t, float32(0), first)
	assert.Equal(t, float32(0), second)

	// The bands overlap at 323 degrees: both nudges apply there.
	first, second = darkLightenNudges(6, 323)
	assert.InDelta(t, 7*0.011, first, 1e-6)
	assert.InDelta(t, 7*0.01, second, 1e-6)
}

func TestDarkScaleGrayStaysGray(t *testing.T) {
	sc, _ := Generate(color.RGBA{117, 117, 117, 255}, true)
	for i, c := range sc {
		assert.InDelta(t, float32(c.R), float32(c.G), 2, "step %d", i)
		assert.InDelta(t, float32(c.G), float32(c.B), 2, "step %d", i)
	}
}
