package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTheme(t *testing.T) {
	t.Run("explicit preferences are literal", func(t *testing.T) {
		assert.False(t, DetectTheme("light").IsDark)
		assert.True(t, DetectTheme("dark").IsDark)
	})

	t.Run("auto honors COLORFGBG dark background", func(t *testing.T) {
		t.Setenv("COLORFGBG", "15;0")
		assert.True(t, DetectTheme("auto").IsDark)
	})

	t.Run("auto honors COLORFGBG light background", func(t *testing.T) {
		t.Setenv("COLORFGBG", "0;15")
		t.Setenv("MATHDESK_DARK_MODE", "")
		assert.False(t, DetectTheme("auto").IsDark)
	})

	t.Run("MATHDESK_DARK_MODE forces dark", func(t *testing.T) {
		t.Setenv("COLORFGBG", "")
		t.Setenv("MATHDESK_DARK_MODE", "1")
		assert.True(t, DetectTheme("auto").IsDark)
	})

	t.Run("defaults to light", func(t *testing.T) {
		t.Setenv("COLORFGBG", "")
		t.Setenv("MATHDESK_DARK_MODE", "")
		assert.False(t, DetectTheme("auto").IsDark)
	})
}

func TestNewStyles(t *testing.T) {
	light := NewStyles(LightTheme())
	dark := NewStyles(DarkTheme())

	assert.False(t, light.Theme.IsDark)
	assert.True(t, dark.Theme.IsDark)
	assert.NotEqual(t, light.Theme.Primary, dark.Theme.Primary)
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.Empty(t, s.RenderDivider(0))
	assert.NotEmpty(t, s.RenderDivider(10))
}

func TestBanner(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.Contains(t, Banner(s), "_")
}
