// Copyright (c) 2026, The egui-colors Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokens

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juh9870/egui-colors/scales"
)

func TestNewMapsRoles(t *testing.T) {
	sc, _ := scales.Generate(color.RGBA{0, 144, 255, 255}, false)
	tk := New(sc, false)

	assert.Equal(t, sc[scales.AppBackground], tk.AppBackground)
	assert.Equal(t, sc[scales.SubtleBackground], tk.SubtleBackground)
	assert.Equal(t, sc[scales.SolidBackgrounds], tk.SolidBackgrounds)
	assert.Equal(t, sc[scales.HoveredSolidBackgrounds], tk.HoveredSolidBackgrounds)
	assert.Equal(t, sc[scales.LowContrastText], tk.LowContrastText)
	assert.Equal(t, sc[scales.HighContrastText], tk.HighContrastText)
	assert.False(t, tk.DarkMode)

	for i := 0; i < scales.NumSteps; i++ {
		assert.Equal(t, sc[i], tk.Token(i), "step %d", i)
	}
}

func TestSetToken(t *testing.T) {
	var tk Tokens
	c := color.RGBA{1, 2, 3, 255}
	for i := 0; i < scales.NumSteps; i++ {
		tk.SetToken(i, c)
		require.Equal(t, c, tk.Token(i), "step %d", i)
	}
	// Out-of-range indices are ignored on set and transparent on get.
	tk.SetToken(scales.NumSteps, color.RGBA{9, 9, 9, 255})
	assert.Equal(t, color.RGBA{}, tk.Token(scales.NumSteps))
	assert.Equal(t, color.RGBA{}, tk.Token(-1))
}

func TestColorOnAccentWhite(t *testing.T) {
	// A strong blue accent carries white text.
	sc, _ := scales.Generate(color.RGBA{0, 144, 255, 255}, false)
	tk := New(sc, false)
	assert.False(t, tk.InverseColor)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, tk.OnAccent)
}

func TestColorOnAccentInverse(t *testing.T) {
	// An accent too light for white text gets a near-black foreground
	// instead.
	var tk Tokens
	tk.SolidBackgrounds = color.RGBA{250, 220, 120, 255}
	tk.ColorOnAccent(func(text, bg color.Color) float32 { return 0 })

	assert.True(t, tk.InverseColor)
	assert.NotEqual(t, color.RGBA{255, 255, 255, 255}, tk.OnAccent)
	assert.Equal(t, uint8(255), tk.OnAccent.A)
	assert.Less(t, tk.OnAccent.R, uint8(16))
	assert.Less(t, tk.OnAccent.G, uint8(16))
	assert.Less(t, tk.OnAccent.B, uint8(16))
}

func TestColorOnAccentRecompute(t *testing.T) {
	// Swapping in a dark-mode scale for a pale seed flips the decision:
	// the lifted accent stays light, so the dark foreground wins.
	sc, _ := scales.Generate(color.RGBA{245, 245, 245, 255}, true)
	tk := New(sc, true)
	assert.True(t, tk.DarkMode)
	assert.True(t, tk.InverseColor)
}
