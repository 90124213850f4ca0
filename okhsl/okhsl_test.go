// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package okhsl

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testSeeds is a spread of realistic accent colors across the hue
// circle, well inside the 8-bit range.
var testSeeds = [][3]uint8{
	{229, 77, 46},   // tomato
	{233, 61, 130},  // crimson
	{214, 64, 159},  // pink
	{142, 78, 198},  // purple
	{110, 86, 207},  // violet
	{62, 99, 214},   // indigo
	{0, 144, 255},   // blue
	{0, 162, 199},   // cyan
	{18, 165, 148},  // teal
	{48, 164, 108},  // green
	{70, 167, 88},   // grass
	{173, 127, 88},  // brown
	{151, 131, 101}, // gold
	{247, 107, 21},  // orange
	{117, 117, 117}, // gray
}

func TestRGBRoundTrip(t *testing.T) {
	for _, seed := range testSeeds {
		h := FromLinear(FromRGB(seed[0], seed[1], seed[2]))
		r, g, b := h.AsRGB()
		assert.InDelta(t, float32(seed[0]), float32(r), 1, "red of %v", seed)
		assert.InDelta(t, float32(seed[1]), float32(g), 1, "green of %v", seed)
		assert.InDelta(t, float32(seed[2]), float32(b), 1, "blue of %v", seed)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, seed := range testSeeds {
		h := FromLinear(FromRGB(seed[0], seed[1], seed[2]))
		back := FromLinear(h.AsLinear())
		assert.InDelta(t, h.S, back.S, 1e-3, "saturation of %v", seed)
		assert.InDelta(t, h.L, back.L, 1e-3, "lightness of %v", seed)
		if h.S > 1e-3 {
			assert.InDelta(t, h.H, back.H, 1e-3, "hue of %v", seed)
		}
	}
}

func TestSaturationBoundaryInGamut(t *testing.T) {
	// Saturation 1 must sit on the sRGB cube surface: no channel may
	// leave the unit range by more than numerical tolerance.
	const tol = 0.01
	for hi := 0; hi < 48; hi++ {
		for _, l := range []float32{0.1, 0.25, 0.5, 0.75, 0.9} {
			h := HSL{H: float32(hi) / 48, S: 1, L: l}
			c := h.AsLinear()
			for _, v := range []float32{c.R, c.G, c.B} {
				if v < -tol || v > 1+tol {
					t.Fatalf("hue %v lightness %v out of gamut: %+v", h.H, l, c)
				}
			}
		}
	}
}

func TestAchromatic(t *testing.T) {
	// Grays carry no usable chroma; float rounding may leave the
	// opponent axes a few ulps away from zero, so saturation is only
	// near-zero rather than exactly zero.
	for _, v := range []uint8{0, 1, 17, 117, 200, 254, 255} {
		h := FromLinear(FromRGB(v, v, v))
		assert.InDelta(t, 0, h.S, 1e-3, "saturation of gray %d", v)
	}
	assert.Equal(t, HSL{}, FromLinear(LinSRGB{}))

	// Zero saturation must come back as the achromatic gray of the
	// same lightness.
	g := HSL{H: 0.3, S: 0, L: 0.5}.AsLinear()
	assert.InDelta(t, g.R, g.G, 1e-4)
	assert.InDelta(t, g.G, g.B, 1e-4)
}

func TestToe(t *testing.T) {
	for x := float32(0.05); x < 1; x += 0.05 {
		assert.InDelta(t, x, ToeInv(Toe(x)), 1e-5)
		assert.InDelta(t, x, Toe(ToeInv(x)), 1e-5)
	}
	// Monotone increasing.
	prev := Toe(0)
	for x := float32(0.01); x <= 1; x += 0.01 {
		cur := Toe(x)
		assert.Greater(t, cur, prev, "toe not monotone at %v", x)
		prev = cur
	}
	assert.InDelta(t, 1, Toe(1), 1e-5)
	assert.InDelta(t, 0, Toe(0), 1e-5)
}

func TestHueDegrees(t *testing.T) {
	h := HSL{H: 0.5}
	assert.InDelta(t, 180, h.HueDegrees(), 1e-4)
	assert.InDelta(t, 0.25, HueFromDegrees(90), 1e-6)
	// Clamped, not wrapped.
	assert.Equal(t, float32(1), HueFromDegrees(400))
	assert.Equal(t, float32(0), HueFromDegrees(-20))
}

func TestLightenDarkenHSL(t *testing.T) {
	h := HSL{H: 0.6, S: 0.8, L: 0.4}
	assert.InDelta(t, 0.7, h.Lighten(0.5).L, 1e-6)
	assert.InDelta(t, 0.2, h.Darken(0.5).L, 1e-6)
	assert.Equal(t, h.H, h.Lighten(0.3).H)
	assert.Equal(t, h.S, h.Darken(0.3).S)
}

func ExampleFromColor() {
	h := FromColor(color.RGBA{0, 144, 255, 255})
	fmt.Printf("saturation in [0,1]: %v\n", h.S >= 0 && h.S <= 1)
	// Output: saturation in [0,1]: true
}
