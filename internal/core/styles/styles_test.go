package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_sorted_and_include_default(t *testing.T) {
	names := ThemeNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, DefaultTheme)
}

func TestSetTheme_updates_colors(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p.Error, ColorError)
	assert.Equal(t, p, CurrentPalette)
}

func TestGlamourStyle_uses_palette(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.H1.Color)
	assert.Equal(t, *colorHexPtr(ColorPrimary), *cfg.H1.Color)
	assert.Nil(t, cfg.H1.BackgroundColor)
}

func TestGetPalette_unknown(t *testing.T) {
	_, ok := GetPalette("does-not-exist")
	assert.False(t, ok)
}
