// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from the Oklab / Okhsl reference implementation at
// https://bottosson.github.io/posts/colorpicker/
// Copyright (c) 2021 Björn Ottosson (MIT license).

package okhsl

import "github.com/chewxy/math32"

// oklab is the perceptually uniform opponent space used as the
// intermediate between linear sRGB and [HSL]: one lightness axis and
// two opponent chroma axes. It is never retained across calls.
type oklab struct {
	L, A, B float32
}

// linearToOklab applies the forward Oklab transform: a fixed 3x3
// matrix to long/medium/short cone responses, cube-root compression,
// and a second fixed 3x3 matrix to the Lab axes.
func linearToOklab(c LinSRGB) oklab {
	l := 0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B
	m := 0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B
	s := 0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B

	lp := math32.Cbrt(l)
	mp := math32.Cbrt(m)
	sp := math32.Cbrt(s)

	return oklab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// toLinear is the exact algebraic inverse of [linearToOklab].
func (o oklab) toLinear() LinSRGB {
	lp := o.L + 0.3963377774*o.A + 0.2158037573*o.B
	mp := o.L - 0.1055613458*o.A - 0.0638541728*o.B
	sp := o.L - 0.0894841775*o.A - 1.2914855480*o.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	return LinSRGB{
		R: 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}
