package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/config"
)

var toolIconNames = map[Tool]string{
	ToolTrackTag:   config.IconTrackInfo,
	ToolProperties: config.IconCDInfo,
	ToolStart:      config.IconStartSplit,
	ToolAbort:      config.IconStop,
	ToolSettings:   config.IconSetup,
	ToolLogs:       config.IconLog,
}

var toolFallbackIcons = map[Tool]fyne.Resource{
	ToolTrackTag:   theme.DocumentCreateIcon(),
	ToolProperties: theme.InfoIcon(),
	ToolStart:      theme.MediaPlayIcon(),
	ToolAbort:      theme.MediaStopIcon(),
	ToolSettings:   theme.SettingsIcon(),
	ToolLogs:       theme.ListIcon(),
}

// LoadToolbarIcons loads the toolbar PNGs of an icon theme. Icons that
// cannot be read fall back to the built-in theme icons.
func LoadToolbarIcons(iconDir, iconTheme string) map[Tool]fyne.Resource {
	files := config.IconSet(iconDir, iconTheme)
	icons := make(map[Tool]fyne.Resource, len(toolIconNames))
	for tool, name := range toolIconNames {
		res, err := fyne.LoadResourceFromPath(files[name])
		if err != nil {
			res = toolFallbackIcons[tool]
		}
		icons[tool] = res
	}
	return icons
}

// LoadAppIcon loads the window icon from the icon directory
func LoadAppIcon(iconDir string) (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(filepath.Join(iconDir, AppIconName))
}
