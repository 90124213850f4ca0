// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from the APCA (SAPC-4g) reference implementation at
// https://github.com/Myndex/SAPC-APCA
// Copyright (c) 2019-2022 Andrew Somers / Myndex Research.

// Package apca estimates the perceived lightness contrast (Lc) between
// a text color and its background, following the APCA contrast model.
// The estimate is signed: dark text on a light background yields a
// positive figure, light text on a dark background a negative one, and
// larger magnitudes mean more contrast. Black on white is about +106,
// white on black about -108. Pairs below the low-contrast clip report 0.
package apca

import (
	"image/color"

	"github.com/chewxy/math32"
)

// SAPC-4g calibration constants.
const (
	normBG   = 0.56 // background exponent, dark text on light
	normText = 0.57 // text exponent, dark text on light
	revBG    = 0.65 // background exponent, light text on dark
	revText  = 0.62 // text exponent, light text on dark

	scaleBoW = 1.14  // output scale, both polarities
	loOffset = 0.027 // offset compensating the low-end soft clamp
	loClip   = 0.1   // raw contrasts below this report zero

	blkThrs = 0.022 // soft black-clamp threshold on luminance
	blkClmp = 1.414 // soft black-clamp exponent
)

// Luminance returns the estimated screen luminance Y of the given
// color in 0-1, using the simple 2.4-gamma transfer the APCA model is
// calibrated against (not the piecewise sRGB transfer).
func Luminance(c color.Color) float32 {
	r, g, b, _ := c.RGBA()
	return 0.2126729*channelY(r) + 0.7151522*channelY(g) + 0.0721750*channelY(b)
}

func channelY(v uint32) float32 {
	return math32.Pow(float32(v>>8)/255, 2.4)
}

// EstimateLc returns the signed APCA lightness contrast estimate for
// the given text color over the given background color.
func EstimateLc(text, bg color.Color) float32 {
	yTxt := softClamp(Luminance(text))
	yBG := softClamp(Luminance(bg))

	if yBG > yTxt { // dark text on light background
		sapc := (math32.Pow(yBG, normBG) - math32.Pow(yTxt, normText)) * scaleBoW
		if sapc < loClip {
			return 0
		}
		return (sapc - loOffset) * 100
	}
	// light text on dark background
	sapc := (math32.Pow(yBG, revBG) - math32.Pow(yTxt, revText)) * scaleBoW
	if sapc > -loClip {
		return 0
	}
	return (sapc + loOffset) * 100
}

// softClamp lifts near-black luminances to compensate for flare and
// perceptual crush at the dark end.
func softClamp(y float32) float32 {
	if y < blkThrs {
		return y + math32.Pow(blkThrs-y, blkClmp)
	}
	return y
}
