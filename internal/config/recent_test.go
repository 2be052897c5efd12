package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestRecent_LastCueDir(t *testing.T) {
	app := test.NewApp()
	recent := NewRecent(app)

	if recent.GetLastCueDir() != "" {
		t.Error("Last CUE dir should be empty by default")
	}

	dir := t.TempDir()
	recent.SetLastCueFile(filepath.Join(dir, "album.cue"))
	if got := recent.GetLastCueDir(); got != dir {
		t.Errorf("Expected %s, got %s", dir, got)
	}

	recent.SetLastCueFile("/does/not/exist/album.cue")
	if recent.GetLastCueDir() != "" {
		t.Error("Missing directory should not be returned")
	}
}

func TestRecent_FormatAndQuality(t *testing.T) {
	app := test.NewApp()
	recent := NewRecent(app)

	if recent.GetLastFormat("flac") != "flac" {
		t.Error("Expected fallback format")
	}
	recent.SetLastFormat("mp3")
	recent.SetLastQuality("VBR 192 kbit/s")

	if recent.GetLastFormat("flac") != "mp3" {
		t.Errorf("Expected 'mp3', got '%s'", recent.GetLastFormat("flac"))
	}
	if recent.GetLastQuality("") != "VBR 192 kbit/s" {
		t.Errorf("Unexpected quality '%s'", recent.GetLastQuality(""))
	}
}
