package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/config"
)

// AppTheme is a compact theme with an optional forced variant.
// The Light and Dark icon sets pin the variant so that icons stay readable;
// Colored follows the system.
type AppTheme struct {
	forced  bool
	variant fyne.ThemeVariant
}

// NewAppTheme creates the application theme for an icon theme name
func NewAppTheme(iconTheme string) fyne.Theme {
	t := &AppTheme{}
	t.variant, t.forced = VariantForIconTheme(iconTheme)
	return t
}

// VariantForIconTheme maps an icon theme to the variant it was drawn for
func VariantForIconTheme(iconTheme string) (fyne.ThemeVariant, bool) {
	switch iconTheme {
	case config.IconThemeLight:
		return theme.VariantLight, true
	case config.IconThemeDark:
		return theme.VariantDark, true
	default:
		return theme.VariantLight, false
	}
}

// Color returns theme colors
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forced {
		variant = t.variant
	}

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 0, G: 100, B: 0, A: 255} // dark green, "...Finished!"
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 218, G: 165, B: 32, A: 255} // goldenrod, aborting
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

// toolbarTheme scales inline icons to the configured toolbar size
type toolbarTheme struct {
	fyne.Theme
	iconSize float32
}

// NewToolbarTheme wraps base so that toolbar buttons draw size x size icons
func NewToolbarTheme(base fyne.Theme, size int) fyne.Theme {
	return &toolbarTheme{Theme: base, iconSize: float32(size)}
}

func (t *toolbarTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameInlineIcon {
		return t.iconSize
	}
	return t.Theme.Size(name)
}
