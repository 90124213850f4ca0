// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from the Oklab / Okhsl reference implementation at
// https://bottosson.github.io/posts/colorpicker/
// Copyright (c) 2021 Björn Ottosson (MIT license).

package okhsl

import "github.com/chewxy/math32"

// invalidRoot is the sentinel returned for a channel whose derivative
// sign shows it has no valid gamut exit along the ray; it always loses
// the min-reduction against any real candidate.
const invalidRoot = 1e6

// ComputeMaxSaturation returns the maximum saturation (chroma per unit
// lightness, C/L) for which the Oklab color L=1, a = S*a_, b = S*b_
// stays inside the sRGB gamut. The hue direction (a_, b_) must be
// normalized to unit length. The saturation at the boundary is where
// one of the three linear RGB channels leaves the gamut; which channel
// goes first is selected by three linear hue-sector inequalities, and
// a closed-form polynomial guess for that sector is sharpened with one
// Halley step.
func ComputeMaxSaturation(a, b float32) float32 {
	var k0, k1, k2, k3, k4, wl, wm, ws float32
	switch {
	case -1.88170328*a-0.80936493*b > 1: // red component first
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1: // green component first
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default: // blue component first
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}
	sat := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	// One Halley step on f(S) = wl*l + wm*m + ws*s - channel bound,
	// where l, m, s are cubes of affine functions of S.
	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	lp := 1 + sat*kl
	mp := 1 + sat*km
	sp := 1 + sat*ks

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	lds := 3 * kl * lp * lp
	mds := 3 * km * mp * mp
	sds := 3 * ks * sp * sp

	lds2 := 6 * kl * kl * lp
	mds2 := 6 * km * km * mp
	sds2 := 6 * ks * ks * sp

	f := wl*l + wm*m + ws*s
	f1 := wl*lds + wm*mds + ws*sds
	f2 := wl*lds2 + wm*mds2 + ws*sds2

	return sat - f*f1/(f1*f1-0.5*f*f2)
}

// FindCusp returns the point of maximum chroma on the sRGB gamut
// boundary for the normalized hue direction (a, b), as a lightness and
// chroma pair in Oklab. It solves the boundary at lightness 1 and
// rescales by the cube root of the largest resulting linear channel.
func FindCusp(a, b float32) (l, c float32) {
	sCusp := ComputeMaxSaturation(a, b)
	rgb := oklab{L: 1, A: sCusp * a, B: sCusp * b}.toLinear()
	lCusp := math32.Cbrt(1 / max(rgb.R, rgb.G, rgb.B, 0))
	return lCusp, lCusp * sCusp
}

// FindGamutIntersection returns the parametric distance t at which the
// ray from (l0, 0) toward (l1, c1) in the Oklab lightness/chroma plane
// for normalized hue direction (a, b) exits the sRGB gamut. cuspL and
// cuspC are the precomputed [FindCusp] point for this hue.
//
// If the ray's projection stays below the cusp, the lower boundary is
// treated as the straight line from black to the cusp and solved in
// closed form. Otherwise the upper boundary is solved against the line
// from the cusp to white, then refined with one Halley step per RGB
// channel; each channel contributes a candidate exit distance, a
// channel whose derivative term has the wrong sign contributes the
// invalid-root sentinel, and the smallest candidate wins.
func FindGamutIntersection(a, b, l1, c1, l0, cuspL, cuspC float32) float32 {
	if (l1-l0)*cuspC-(cuspL-l0)*c1 <= 0 {
		return cuspC * l0 / (c1*cuspL + cuspC*(l0-l1))
	}
	t := cuspC * (l0 - 1) / (c1*(cuspL-1) + cuspC*(l0-l1))

	dl := l1 - l0
	dc := c1

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	ldt := dl + dc*kl
	mdt := dl + dc*km
	sdt := dl + dc*ks

	l := l0*(1-t) + t*l1
	c := t * c1

	lp := l + c*kl
	mp := l + c*km
	sp := l + c*ks

	l3 := lp * lp * lp
	m3 := mp * mp * mp
	s3 := sp * sp * sp

	ld := 3 * ldt * lp * lp
	md := 3 * mdt * mp * mp
	sd := 3 * sdt * sp * sp

	ld2 := 6 * ldt * ldt * lp
	md2 := 6 * mdt * mdt * mp
	sd2 := 6 * sdt * sdt * sp

	halley := func(f, f1, f2 float32) float32 {
		u := f1 / (f1*f1 - 0.5*f*f2)
		if u < 0 {
			return invalidRoot
		}
		return -f * u
	}

	tr := halley(
		4.0767416621*l3-3.3077115913*m3+0.2309699292*s3-1,
		4.0767416621*ld-3.3077115913*md+0.2309699292*sd,
		4.0767416621*ld2-3.3077115913*md2+0.2309699292*sd2,
	)
	tg := halley(
		-1.2684380046*l3+2.6097574011*m3-0.3413193965*s3-1,
		-1.2684380046*ld+2.6097574011*md-0.3413193965*sd,
		-1.2684380046*ld2+2.6097574011*md2-0.3413193965*sd2,
	)
	tb := halley(
		-0.0041960863*l3-0.7034186147*m3+1.7076147010*s3-1,
		-0.0041960863*ld-0.7034186147*md+1.7076147010*sd,
		-0.0041960863*ld2-0.7034186147*md2+1.7076147010*sd2,
	)

	return t + min(tr, tg, tb)
}

// stMax returns the cusp expressed as the two boundary slopes
// S = C/L (toward black) and T = C/(1-L) (toward white).
func stMax(cuspL, cuspC float32) (s, t float32) {
	return cuspC / cuspL, cuspC / (1 - cuspL)
}

// stMid returns polynomial approximations of smoothed mid-gamut
// boundary slopes for the normalized hue direction (a, b), used to
// keep perceptual saturation steps even where the true gamut boundary
// is irregular.
func stMid(a, b float32) (s, t float32) {
	s = 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))
	t = 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))
	return s, t
}

// chromaLimits returns the three reference chromas used to normalize
// saturation at Oklab lightness l and normalized hue direction (a, b):
// c0 is a conservative always-in-gamut reference, cMid a perceptually
// tuned mid reference, and cMax the true gamut-boundary chroma.
func chromaLimits(l, a, b float32) (c0, cMid, cMax float32) {
	cuspL, cuspC := FindCusp(a, b)
	cMax = FindGamutIntersection(a, b, l, 1, l, cuspL, cuspC)
	sMax, tMax := stMax(cuspL, cuspC)
	sMid, tMid := stMid(a, b)

	k := cMax / min(l*sMax, (1-l)*tMax)

	ca := l * sMid
	cb := (1 - l) * tMid
	ca4 := (ca * ca) * (ca * ca)
	cb4 := (cb * cb) * (cb * cb)
	cMid = 0.9 * k * math32.Sqrt(math32.Sqrt(1/(1/ca4+1/cb4)))

	ca = l * 0.4
	cb = (1 - l) * 0.8
	c0 = math32.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))
	return c0, cMid, cMax
}
