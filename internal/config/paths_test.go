package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePaths(t *testing.T) {
	home := filepath.FromSlash("/home/u")
	exeDir := filepath.FromSlash("/opt/app/bin")

	tests := []struct {
		goos      string
		configDir string
		logDir    string
	}{
		{OSWindows, filepath.Join(home, "AppData", "Roaming", AppDirName), filepath.Join(home, "AppData", "Roaming", AppDirName, "log")},
		{OSDarwin, filepath.Join(home, "Library", "Application Support", AppDirName), filepath.Join(home, "Library", "Logs", AppDirName)},
		{OSLinux, filepath.Join(home, ".config", AppDirName), filepath.Join(home, ".local", "share", AppDirName, "log")},
		{"freebsd", filepath.Join(home, ".config", AppDirName), filepath.Join(home, ".local", "share", AppDirName, "log")},
	}

	for _, test := range tests {
		p := ResolvePaths(test.goos, home, exeDir, false)
		if p.ConfigDir != test.configDir {
			t.Errorf("%s: config dir = %s, expected %s", test.goos, p.ConfigDir, test.configDir)
		}
		if p.LogDir != test.logDir {
			t.Errorf("%s: log dir = %s, expected %s", test.goos, p.LogDir, test.logDir)
		}
		if p.SettingsFile != filepath.Join(test.configDir, SettingsFileName) {
			t.Errorf("%s: unexpected settings file %s", test.goos, p.SettingsFile)
		}
		if p.FFmpegLog() != filepath.Join(test.logDir, FFmpegLogName) {
			t.Errorf("%s: unexpected ffmpeg log %s", test.goos, p.FFmpegLog())
		}
	}
}

func TestResolvePaths_DarwinResources(t *testing.T) {
	exeDir := filepath.FromSlash("/Applications/App.app/Contents/MacOS")
	p := ResolvePaths(OSDarwin, "/Users/u", exeDir, false)

	expected := filepath.FromSlash("/Applications/App.app/Contents/Resources/art/icons")
	if p.IconDir != expected {
		t.Errorf("Expected icon dir %s, got %s", expected, p.IconDir)
	}
}

func TestResolvePaths_Portable(t *testing.T) {
	exeDir := t.TempDir()
	if IsPortable(exeDir) {
		t.Fatal("Empty directory should not be portable")
	}
	if err := os.Mkdir(filepath.Join(exeDir, PortableDirName), 0o755); err != nil {
		t.Fatal(err)
	}
	if !IsPortable(exeDir) {
		t.Fatal("Directory with portable_data should be portable")
	}

	p := ResolvePaths(OSLinux, "/home/u", exeDir, true)
	if !p.Portable {
		t.Error("Portable flag should be set")
	}
	if p.ConfigDir != filepath.Join(exeDir, PortableDirName) {
		t.Errorf("Unexpected portable config dir %s", p.ConfigDir)
	}
	if p.LogDir != filepath.Join(exeDir, PortableDirName, "log") {
		t.Errorf("Unexpected portable log dir %s", p.LogDir)
	}
	if p.MemoFile != filepath.Join(exeDir, PortableDirName, MemoFileName) {
		t.Errorf("Unexpected memo file %s", p.MemoFile)
	}
}

func TestIconPath(t *testing.T) {
	dir := filepath.FromSlash("/res/icons")
	tests := []struct {
		theme    string
		expected string
	}{
		{IconThemeLight, filepath.Join(dir, "Light", "24x24", "stop.png")},
		{IconThemeDark, filepath.Join(dir, "Dark", "24x24", "stop.png")},
		{IconThemeColored, filepath.Join(dir, "Colored", "24x24", "stop.png")},
		{"Unknown", filepath.Join(dir, "Colored", "24x24", "stop.png")},
	}
	for _, test := range tests {
		if got := IconPath(dir, test.theme, IconStop); got != test.expected {
			t.Errorf("IconPath(%s) = %s, expected %s", test.theme, got, test.expected)
		}
	}

	if len(IconSet(dir, IconThemeDark)) != 6 {
		t.Error("IconSet should contain every toolbar icon")
	}
}
