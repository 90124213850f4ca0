// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tokens maps a generated 12-step scale onto named UI roles,
// independent of any widget toolkit. It also decides the foreground
// color for content placed on the solid accent: white by default, or a
// near-black, slightly hue-tinted color when the accent is too light
// to carry white text.
package tokens

import (
	"image/color"

	"github.com/juh9870/egui-colors/apca"
	"github.com/juh9870/egui-colors/scales"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tokens is a set of colors that are used together to set the visual
// feel of a UI, one named field per scale step.
type Tokens struct {
	AppBackground                color.RGBA
	SubtleBackground             color.RGBA
	UIElementBackground          color.RGBA
	HoveredUIElementBackground   color.RGBA
	ActiveUIElementBackground    color.RGBA
	SubtleBordersAndSeparators   color.RGBA
	UIElementBorderAndFocusRings color.RGBA
	HoveredUIElementBorder       color.RGBA
	SolidBackgrounds             color.RGBA
	HoveredSolidBackgrounds      color.RGBA
	LowContrastText              color.RGBA
	HighContrastText             color.RGBA

	// OnAccent is the foreground color for content placed on
	// [Tokens.SolidBackgrounds].
	OnAccent color.RGBA

	// InverseColor reports that OnAccent is the dark foreground
	// rather than white.
	InverseColor bool

	// DarkMode records the mode the scale was generated for.
	DarkMode bool
}

// New returns the [Tokens] for the given scale and mode, with the
// on-accent foreground decided by [apca.EstimateLc].
func New(sc scales.Scale, dark bool) Tokens {
	t := Tokens{DarkMode: dark}
	t.SetScale(sc)
	t.ColorOnAccent(apca.EstimateLc)
	return t
}

// SetScale assigns every role field from the given scale. It does not
// recompute [Tokens.OnAccent]; call [Tokens.ColorOnAccent] after.
func (t *Tokens) SetScale(sc scales.Scale) {
	for i, c := range sc {
		t.SetToken(i, c)
	}
}

// SetToken sets the role field at the given scale index.
// Out-of-range indices are ignored.
func (t *Tokens) SetToken(i int, c color.RGBA) {
	switch i {
	case scales.AppBackground:
		t.AppBackground = c
	case scales.SubtleBackground:
		t.SubtleBackground = c
	case scales.UIElementBackground:
		t.UIElementBackground = c
	case scales.HoveredUIElementBackground:
		t.HoveredUIElementBackground = c
	case scales.ActiveUIElementBackground:
		t.ActiveUIElementBackground = c
	case scales.SubtleBordersAndSeparators:
		t.SubtleBordersAndSeparators = c
	case scales.UIElementBorderAndFocusRings:
		t.UIElementBorderAndFocusRings = c
	case scales.HoveredUIElementBorder:
		t.HoveredUIElementBorder = c
	case scales.SolidBackgrounds:
		t.SolidBackgrounds = c
	case scales.HoveredSolidBackgrounds:
		t.HoveredSolidBackgrounds = c
	case scales.LowContrastText:
		t.LowContrastText = c
	case scales.HighContrastText:
		t.HighContrastText = c
	}
}

// Token returns the role field at the given scale index, or
// transparent for out-of-range indices.
func (t *Tokens) Token(i int) color.RGBA {
	switch i {
	case scales.AppBackground:
		return t.AppBackground
	case scales.SubtleBackground:
		return t.SubtleBackground
	case scales.UIElementBackground:
		return t.UIElementBackground
	case scales.HoveredUIElementBackground:
		return t.HoveredUIElementBackground
	case scales.ActiveUIElementBackground:
		return t.ActiveUIElementBackground
	case scales.SubtleBordersAndSeparators:
		return t.SubtleBordersAndSeparators
	case scales.UIElementBorderAndFocusRings:
		return t.UIElementBorderAndFocusRings
	case scales.HoveredUIElementBorder:
		return t.HoveredUIElementBorder
	case scales.SolidBackgrounds:
		return t.SolidBackgrounds
	case scales.HoveredSolidBackgrounds:
		return t.HoveredSolidBackgrounds
	case scales.LowContrastText:
		return t.LowContrastText
	case scales.HighContrastText:
		return t.HighContrastText
	}
	return color.RGBA{}
}

// ColorOnAccent recomputes [Tokens.OnAccent] and [Tokens.InverseColor]
// from the current solid accent, using the given contrast estimator.
// When white text on the accent would fall short of
// [scales.LowContrastLc], the accent's own hue is kept but pushed to
// near-black at moderate saturation; otherwise white is used.
func (t *Tokens) ColorOnAccent(contrast scales.Estimator) {
	white := color.RGBA{255, 255, 255, 255}
	if contrast(white, t.SolidBackgrounds) > scales.LowContrastLc {
		t.InverseColor = true
		cf, _ := colorful.MakeColor(t.SolidBackgrounds)
		h, _, _ := cf.Hsv()
		r, g, b := colorful.Hsv(h, 0.7, 0.01).RGB255()
		t.OnAccent = color.RGBA{r, g, b, 255}
		return
	}
	t.InverseColor = false
	t.OnAccent = white
}
