package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Platform identifiers
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// AppDirName is the per-user data directory name
const AppDirName = "ffcuesplitter_gui"

// File names inside the configuration and log directories
const (
	SettingsFileName = "settings.json"
	MemoFileName     = "user_memos.txt"
	FFmpegLogName    = "ffmpeg.log"
	AppLogName       = "ffcuesplitter-gui.log"
	PortableDirName  = "portable_data"
)

// Paths holds every filesystem location the application uses
type Paths struct {
	ConfigDir    string
	SettingsFile string
	LogDir       string
	MemoFile     string
	IconDir      string
	LocaleDir    string
	FFmpegDir    string // bundled FFmpeg, binaries under bin/
	Portable     bool
}

// FFmpegLog returns the location of the encoder log
func (p Paths) FFmpegLog() string {
	return filepath.Join(p.LogDir, FFmpegLogName)
}

// AppLog returns the location of the application log
func (p Paths) AppLog() string {
	return filepath.Join(p.LogDir, AppLogName)
}

type platformDirs struct {
	config    func(home string) string
	log       func(home, configDir string) string
	resources func(exeDir string) string
}

var platformTable = map[string]platformDirs{
	OSWindows: {
		config: func(home string) string {
			return filepath.Join(home, "AppData", "Roaming", AppDirName)
		},
		log:       func(_, configDir string) string { return filepath.Join(configDir, "log") },
		resources: func(exeDir string) string { return exeDir },
	},
	OSDarwin: {
		config: func(home string) string {
			return filepath.Join(home, "Library", "Application Support", AppDirName)
		},
		log: func(home, _ string) string {
			return filepath.Join(home, "Library", "Logs", AppDirName)
		},
		resources: func(exeDir string) string {
			return filepath.Join(filepath.Dir(exeDir), "Resources")
		},
	},
}

var unixDirs = platformDirs{
	config: func(home string) string { return filepath.Join(home, ".config", AppDirName) },
	log: func(home, _ string) string {
		return filepath.Join(home, ".local", "share", AppDirName, "log")
	},
	resources: func(exeDir string) string { return exeDir },
}

// ResolvePaths builds the location table for goos. portable selects the
// portable_data directory next to the executable for configuration and logs.
func ResolvePaths(goos, home, exeDir string, portable bool) Paths {
	dirs, ok := platformTable[goos]
	if !ok {
		dirs = unixDirs
	}

	var p Paths
	if portable {
		p.ConfigDir = filepath.Join(exeDir, PortableDirName)
		p.LogDir = filepath.Join(p.ConfigDir, "log")
		p.Portable = true
	} else {
		p.ConfigDir = dirs.config(home)
		p.LogDir = dirs.log(home, p.ConfigDir)
	}
	p.SettingsFile = filepath.Join(p.ConfigDir, SettingsFileName)
	p.MemoFile = filepath.Join(p.ConfigDir, MemoFileName)

	res := dirs.resources(exeDir)
	p.IconDir = filepath.Join(res, "art", "icons")
	p.LocaleDir = filepath.Join(res, "locale")
	p.FFmpegDir = filepath.Join(res, "FFMPEG")
	return p
}

// DefaultPaths resolves paths for the running executable
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}
	exe, err := os.Executable()
	if err != nil {
		return Paths{}, err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	exeDir := filepath.Dir(exe)
	return ResolvePaths(runtime.GOOS, home, exeDir, IsPortable(exeDir)), nil
}

// IsPortable reports whether a portable_data directory sits in exeDir
func IsPortable(exeDir string) bool {
	info, err := os.Stat(filepath.Join(exeDir, PortableDirName))
	return err == nil && info.IsDir()
}
