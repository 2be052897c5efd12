package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/config"
)

func TestVariantForIconTheme(t *testing.T) {
	tests := []struct {
		iconTheme string
		variant   fyne.ThemeVariant
		forced    bool
	}{
		{config.IconThemeLight, theme.VariantLight, true},
		{config.IconThemeDark, theme.VariantDark, true},
		{config.IconThemeColored, theme.VariantLight, false},
		{"unknown", theme.VariantLight, false},
	}

	for _, tt := range tests {
		t.Run(tt.iconTheme, func(t *testing.T) {
			variant, forced := VariantForIconTheme(tt.iconTheme)
			if variant != tt.variant || forced != tt.forced {
				t.Errorf("VariantForIconTheme(%q) = %v, %v, expected %v, %v", tt.iconTheme, variant, forced, tt.variant, tt.forced)
			}
		})
	}
}

func TestAppTheme_ForcedVariant(t *testing.T) {
	dark := NewAppTheme(config.IconThemeDark)
	colored := NewAppTheme(config.IconThemeColored)

	bg := dark.Color(theme.ColorNameBackground, theme.VariantLight)
	if bg != dark.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Error("Dark icon theme should ignore the requested variant")
	}
	if colored.Color(theme.ColorNameBackground, theme.VariantLight) == colored.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Error("Colored icon theme should follow the requested variant")
	}
}

func TestToolbarTheme_InlineIconSize(t *testing.T) {
	base := NewAppTheme(config.IconThemeColored)
	for _, size := range config.ToolbarSizes {
		th := NewToolbarTheme(base, size)
		if got := th.Size(theme.SizeNameInlineIcon); got != float32(size) {
			t.Errorf("inline icon size = %v, expected %d", got, size)
		}
		if th.Size(theme.SizeNamePadding) != base.Size(theme.SizeNamePadding) {
			t.Error("other sizes should come from the base theme")
		}
	}
}

func TestLoadToolbarIcons_Fallback(t *testing.T) {
	icons := LoadToolbarIcons(t.TempDir(), config.IconThemeColored)
	for _, tool := range Tools {
		if icons[tool] != toolFallbackIcons[tool] {
			t.Errorf("%s should use the built-in icon when the PNG is missing", tool)
		}
	}
}
