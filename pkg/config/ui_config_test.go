package config

import (
	"image/color"
	"testing"
)

// TestColorsAreOpaque 所有界面颜色都是不透明的
func TestColorsAreOpaque(t *testing.T) {
	colors := map[string]color.RGBA{
		"white":      ColorWhite,
		"black":      ColorBlack,
		"orange":     ColorOrange,
		"blue":       ColorBlue,
		"red":        ColorRed,
		"green":      ColorGreen,
		"clear":      ColorScreenClear,
		"background": ColorDefaultBackground,
		"help":       ColorHelpButton,
		"ingredient": ColorPlaceholderIngredient,
	}

	for name, c := range colors {
		if c.A != 255 {
			t.Errorf("%s alpha = %d, want 255", name, c.A)
		}
	}
}

// TestFontSizes 说明文字比标题小
func TestFontSizes(t *testing.T) {
	if SmallFontSize >= TitleFontSize {
		t.Errorf("SmallFontSize (%v) should be smaller than TitleFontSize (%v)", SmallFontSize, TitleFontSize)
	}
	if SelectedOutlineWidth <= 0 {
		t.Errorf("SelectedOutlineWidth = %d, want > 0", SelectedOutlineWidth)
	}
}
