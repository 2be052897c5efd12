package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// Preference keys for session state kept outside settings.json
const (
	KeyLastCueDir  = "last_cue_directory"
	KeyLastFormat  = "last_output_format"
	KeyLastQuality = "last_quality_preset"
)

// Recent remembers small bits of UI state between sessions in Fyne preferences
type Recent struct {
	app fyne.App
}

// NewRecent creates a new recent-state manager
func NewRecent(app fyne.App) *Recent {
	return &Recent{app: app}
}

// GetLastCueDir returns the directory of the last imported CUE sheet, or "" if gone
func (r *Recent) GetLastCueDir() string {
	dir := r.app.Preferences().String(KeyLastCueDir)
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

// SetLastCueFile stores the directory of an imported CUE sheet
func (r *Recent) SetLastCueFile(path string) {
	r.app.Preferences().SetString(KeyLastCueDir, filepath.Dir(path))
}

// GetLastFormat returns the last output format, or fallback
func (r *Recent) GetLastFormat(fallback string) string {
	return r.app.Preferences().StringWithFallback(KeyLastFormat, fallback)
}

// SetLastFormat stores the selected output format
func (r *Recent) SetLastFormat(format string) {
	r.app.Preferences().SetString(KeyLastFormat, format)
}

// GetLastQuality returns the last quality preset, or fallback
func (r *Recent) GetLastQuality(fallback string) string {
	return r.app.Preferences().StringWithFallback(KeyLastQuality, fallback)
}

// SetLastQuality stores the selected quality preset
func (r *Recent) SetLastQuality(quality string) {
	r.app.Preferences().SetString(KeyLastQuality, quality)
}
