package uiprefs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterestHas(t *testing.T) {
	assert.True(t, InterestAll.Has(InterestColorScheme))
	assert.True(t, InterestAll.Has(InterestDoubleClickInterval))

	partial := InterestColorScheme | InterestAccentColor
	assert.True(t, partial.Has(InterestColorScheme))
	assert.False(t, partial.Has(InterestContrast))
	assert.False(t, partial.Has(InterestColorScheme|InterestContrast))
}

func TestInterestMask(t *testing.T) {
	full := Preferences{
		ColorScheme:         ColorSchemeDark,
		Contrast:            ContrastMore,
		ReducedMotion:       ReducedMotionReduce,
		ReducedTransparency: ReducedTransparencyReduce,
		AccentColor:         NewAccentColor(1, 0, 0),
		DoubleClickInterval: 250 * time.Millisecond,
	}

	assert.True(t, InterestAll.Mask(full).Equal(full))

	masked := (InterestColorScheme | InterestDoubleClickInterval).Mask(full)
	assert.Equal(t, ColorSchemeDark, masked.ColorScheme)
	assert.Equal(t, 250*time.Millisecond, masked.DoubleClickInterval)
	assert.True(t, masked.Contrast.IsNoPreference())
	assert.True(t, masked.ReducedMotion.IsNoPreference())
	assert.True(t, masked.ReducedTransparency.IsNoPreference())
	assert.False(t, masked.AccentColor.Valid)

	var none Interest
	assert.True(t, none.Mask(full).Equal(Preferences{}))
}
