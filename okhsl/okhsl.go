// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from the Oklab / Okhsl reference implementation at
// https://bottosson.github.io/posts/colorpicker/
// Copyright (c) 2021 Björn Ottosson (MIT license).

// Package okhsl implements the Okhsl color space: a cylindrical
// hue / saturation / lightness view of Oklab in which saturation is
// normalized against the sRGB gamut boundary, so saturation 1 always
// lands exactly on the gamut surface for any hue and lightness, and
// lightness is remapped to read as perceptually even. It also provides
// the linear sRGB type and the gamut-boundary solvers the mapping is
// built on.
package okhsl

import (
	"image/color"

	"github.com/chewxy/math32"
)

// HSL is a color in Okhsl coordinates. H is the hue as a fraction of a
// full turn in [0,1), S is the gamut-normalized saturation in [0,1]
// (1 is exactly on the sRGB gamut boundary for this hue and lightness),
// and L is the toe-compressed, perceptually even lightness in [0,1].
type HSL struct {
	H, S, L float32
}

// FromColor returns the Okhsl representation of the
// given [color.Color], ignoring alpha.
func FromColor(c color.Color) HSL {
	return FromLinear(LinearFromColor(c))
}

// FromLinear converts a linear sRGB color to Okhsl. Achromatic colors
// and colors at or beyond the lightness extremes short-circuit to
// hue 0, saturation 0.
func FromLinear(c LinSRGB) HSL {
	lab := linearToOklab(c)
	if !(lab.L > 0 && lab.L < 1 && (lab.A != 0 || lab.B != 0)) {
		return HSL{H: 0, S: 0, L: lab.L}
	}

	chroma := math32.Hypot(lab.A, lab.B)
	a := lab.A / chroma
	b := lab.B / chroma
	h := 0.5 + 0.5*math32.Atan2(-lab.B, -lab.A)/math32.Pi

	c0, cMid, cMax := chromaLimits(lab.L, a, b)

	// Two-segment piecewise rational map from chroma to saturation:
	// c0/cMid below the 0.8 saturation mark, cMid/cMax above it.
	var s float32
	if chroma < cMid {
		k1 := 0.8 * c0
		k2 := 1 - k1/cMid
		t := chroma / (k1 + k2*chroma)
		s = t * 0.8
	} else {
		k0 := cMid
		k1 := 0.2 * cMid * cMid * 1.25 * 1.25 / c0
		k2 := 1 - k1/(cMax-cMid)
		t := (chroma - k0) / (k1 + k2*(chroma-k0))
		s = 0.8 + 0.2*t
	}

	return HSL{H: h, S: s, L: Toe(lab.L)}
}

// AsLinear converts the color back to linear sRGB, applying the
// inverse of the piecewise saturation map of [FromLinear]. Lightness
// at or beyond the extremes short-circuits to the achromatic gray.
func (h HSL) AsLinear() LinSRGB {
	if h.L <= 0 || h.L >= 1 {
		return oklab{L: h.L}.toLinear()
	}

	a := math32.Cos(2 * math32.Pi * h.H)
	b := math32.Sin(2 * math32.Pi * h.H)
	l := ToeInv(h.L)

	c0, cMid, cMax := chromaLimits(l, a, b)

	var t, k0, k1, k2 float32
	if h.S < 0.8 {
		t = 1.25 * h.S
		k1 = 0.8 * c0
		k2 = 1 - k1/cMid
	} else {
		t = 5 * (h.S - 0.8)
		k0 = cMid
		k1 = 0.2 * cMid * cMid * 1.25 * 1.25 / c0
		k2 = 1 - k1/(cMax-cMid)
	}
	chroma := k0 + t*k1/(1-k2*t)

	return oklab{L: l, A: chroma * a, B: chroma * b}.toLinear()
}

// AsRGB returns the gamma-encoded 8-bit sRGB channel values.
func (h HSL) AsRGB() (r, g, b uint8) {
	return h.AsLinear().AsRGB()
}

// AsRGBA returns the color as a fully opaque [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	return h.AsLinear().AsRGBA()
}

// RGBA implements the [color.Color] interface.
func (h HSL) RGBA() (r, g, b, a uint32) {
	return h.AsLinear().RGBA()
}

// Lighten moves the lightness toward 1 by the given fraction of its
// remaining headroom, keeping hue and saturation.
func (h HSL) Lighten(factor float32) HSL {
	return HSL{H: h.H, S: h.S, L: clamp(h.L+factor*(1-h.L), 0, 1)}
}

// Darken moves the lightness toward 0 by the given fraction of its
// current value, keeping hue and saturation.
func (h HSL) Darken(factor float32) HSL {
	return HSL{H: h.H, S: h.S, L: clamp(h.L-factor*h.L, 0, 1)}
}

// HueDegrees returns the hue in degrees, clamped to [0, 360].
func (h HSL) HueDegrees() float32 {
	return clamp(h.H*360, 0, 360)
}

// HueFromDegrees converts a hue in degrees to the fraction-of-a-turn
// form, clamping (not wrapping) to [0, 1]. Corrective hue shifts rely
// on the clamping behavior at the ends of the hue circle.
func HueFromDegrees(deg float32) float32 {
	return clamp(deg/360, 0, 1)
}

// Toe compresses an Oklab lightness so that the resulting axis reads
// as roughly perceptually even. Closed form, monotone.
func Toe(x float32) float32 {
	const k1 = 0.206
	const k2 = 0.03
	const k3 = (1 + k1) / (1 + k2)
	y := k3*x - k1
	return 0.5 * (y + math32.Sqrt(y*y+4*k2*k3*x))
}

// ToeInv is the exact inverse of [Toe], recovering the underlying
// Oklab lightness from its perceptually even form.
func ToeInv(x float32) float32 {
	const k1 = 0.206
	const k2 = 0.03
	const k3 = (1 + k1) / (1 + k2)
	return (x*x + k1*x) / (k3 * (x + k2))
}
