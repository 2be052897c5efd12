package config

import "path/filepath"

// Icon themes
const (
	IconThemeLight   = "Light"
	IconThemeDark    = "Dark"
	IconThemeColored = "Colored"
)

// IconThemes lists the selectable icon sets
var IconThemes = []string{IconThemeLight, IconThemeDark, IconThemeColored}

// Toolbar icon names
const (
	IconStartSplit = "startsplit"
	IconSetup      = "setup"
	IconStop       = "stop"
	IconTrackInfo  = "trackinfo"
	IconCDInfo     = "CDinfo"
	IconLog        = "log"
)

const iconSubdir = "24x24"

// IconPath returns the PNG for name in the given theme, falling back to Colored
func IconPath(iconDir, theme, name string) string {
	switch theme {
	case IconThemeLight, IconThemeDark, IconThemeColored:
	default:
		theme = IconThemeColored
	}
	return filepath.Join(iconDir, theme, iconSubdir, name+".png")
}

// IconSet maps every toolbar icon name to its file
func IconSet(iconDir, theme string) map[string]string {
	names := []string{IconStartSplit, IconSetup, IconStop, IconTrackInfo, IconCDInfo, IconLog}
	set := make(map[string]string, len(names))
	for _, n := range names {
		set[n] = IconPath(iconDir, theme, n)
	}
	return set
}
