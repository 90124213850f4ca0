// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package okhsl

import (
	"image/color"

	"github.com/chewxy/math32"
)

// LinSRGB is a linear (gamma-expanded) sRGB color. Channel values are
// nominally in the 0-1 range, but intermediate math is allowed to move
// transiently outside of it; values are only clamped on 8-bit export.
type LinSRGB struct {
	R, G, B float32
}

// FromRGB returns the linear color for the given
// gamma-encoded 8-bit sRGB channel values.
func FromRGB(r, g, b uint8) LinSRGB {
	return LinSRGB{linearFromUint8(r), linearFromUint8(g), linearFromUint8(b)}
}

// LinearFromColor returns the linear color for the given [color.Color],
// ignoring alpha.
func LinearFromColor(c color.Color) LinSRGB {
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// AsRGB returns the gamma-encoded 8-bit sRGB channel values for the
// color, rounded to nearest and clamped to 0-255.
func (c LinSRGB) AsRGB() (r, g, b uint8) {
	return uint8FromLinear(c.R), uint8FromLinear(c.G), uint8FromLinear(c.B)
}

// AsRGBA returns the color as a fully opaque [color.RGBA].
func (c LinSRGB) AsRGBA() color.RGBA {
	r, g, b := c.AsRGB()
	return color.RGBA{r, g, b, 255}
}

// RGBA implements the [color.Color] interface.
func (c LinSRGB) RGBA() (r, g, b, a uint32) {
	cr, cg, cb := c.AsRGB()
	return uint32(cr) * 0x101, uint32(cg) * 0x101, uint32(cb) * 0x101, 0xffff
}

// Lighten moves every channel toward 1 by the given fraction of its
// remaining headroom, clamping the result to 0-1.
func (c LinSRGB) Lighten(factor float32) LinSRGB {
	return LinSRGB{
		R: clamp(c.R+factor*(1-c.R), 0, 1),
		G: clamp(c.G+factor*(1-c.G), 0, 1),
		B: clamp(c.B+factor*(1-c.B), 0, 1),
	}
}

// Darken moves every channel toward 0 by the given fraction of its
// current value, clamping the result to 0-1.
func (c LinSRGB) Darken(factor float32) LinSRGB {
	return LinSRGB{
		R: clamp(c.R-factor*c.R, 0, 1),
		G: clamp(c.G-factor*c.G, 0, 1),
		B: clamp(c.B-factor*c.B, 0, 1),
	}
}

// linearFromUint8 gamma-expands one 8-bit sRGB channel.
// The breakpoint is the 8-bit image of the standard sRGB
// linear-segment cutoff (0.0031308 * 3294.6 ≈ 10.3).
func linearFromUint8(s uint8) float32 {
	if s <= 10 {
		return float32(s) / 3294.6
	}
	return math32.Pow((float32(s)+14.025)/269.025, 2.4)
}

// uint8FromLinear gamma-compresses one linear channel to 8 bits,
// rounding to nearest and clamping.
func uint8FromLinear(l float32) uint8 {
	switch {
	case l <= 0:
		return 0
	case l <= 0.0031308:
		return uint8(3294.6*l + 0.5)
	case l <= 1:
		return uint8(269.025*math32.Pow(l, 1/2.4) - 14.025 + 0.5)
	default:
		return 255
	}
}

func clamp(x, lo, hi float32) float32 {
	return min(max(x, lo), hi)
}
