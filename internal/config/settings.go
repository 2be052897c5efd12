package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
)

// ConfVersion is the settings file version stamp written by this build.
// 4.1 added panel_size, showhidenmenu and locale to the 4.0 layout.
const ConfVersion = 4.1

// Settings keys as written in the JSON document
const (
	KeyConfVersion    = "confversion"
	KeyOutputDir      = "outputfile"
	KeyFFmpegCmd      = "ffmpeg_cmd"
	KeyFFmpegIsLocal  = "ffmpeg_islocal"
	KeyFFmpegLogLevel = "ffmpegloglev"
	KeyFFprobeCmd     = "ffprobe_cmd"
	KeyFFprobeIsLocal = "ffprobe_islocal"
	KeyWarnExiting    = "warnexiting"
	KeyClearLogFiles  = "clearlogfiles"
	KeyIconTheme      = "icontheme"
	KeyToolbarSize    = "toolbarsize"
	KeyToolbarPos     = "toolbarpos"
	KeyToolbarText    = "toolbartext"
	KeyPanelSize      = "panel_size"
	KeyShowHiddenMenu = "showhidenmenu"
	KeyLocale         = "locale"
)

var knownKeys = []string{
	KeyConfVersion, KeyOutputDir, KeyFFmpegCmd, KeyFFmpegIsLocal, KeyFFmpegLogLevel,
	KeyFFprobeCmd, KeyFFprobeIsLocal, KeyWarnExiting, KeyClearLogFiles, KeyIconTheme,
	KeyToolbarSize, KeyToolbarPos, KeyToolbarText, KeyPanelSize, KeyShowHiddenMenu, KeyLocale,
}

// Toolbar positions
const (
	ToolbarTop = iota
	ToolbarBottom
	ToolbarRight
	ToolbarLeft
)

// Toolbar text modes
const (
	ToolbarTextShow = "show"
	ToolbarTextHide = "hide"
)

// Default values
const (
	DefaultFFmpegLogLevel = "info"
	DefaultIconTheme      = IconThemeColored
	DefaultToolbarSize    = 24
	DefaultToolbarPos     = ToolbarTop
	DefaultToolbarText    = ToolbarTextShow
	DefaultLocale         = "system"
	DefaultPanelWidth     = 980
	DefaultPanelHeight    = 600
)

// ToolbarSizes lists the selectable toolbar icon sizes in pixels
var ToolbarSizes = []int{16, 24, 32, 64}

// FFmpegLogLevels lists the values accepted by ffmpeg -loglevel
var FFmpegLogLevels = []string{"quiet", "panic", "fatal", "error", "warning", "info", "verbose", "debug"}

// ErrConfigDir is returned when the configuration directory cannot be created
var ErrConfigDir = errors.New("cannot create configuration directory")

// Settings is the flat record of user preferences
type Settings struct {
	ConfVersion    float64 `json:"confversion"`
	OutputDir      string  `json:"outputfile"`
	FFmpegCmd      string  `json:"ffmpeg_cmd"`
	FFmpegIsLocal  bool    `json:"ffmpeg_islocal"`
	FFmpegLogLevel string  `json:"ffmpegloglev"`
	FFprobeCmd     string  `json:"ffprobe_cmd"`
	FFprobeIsLocal bool    `json:"ffprobe_islocal"`
	WarnExiting    bool    `json:"warnexiting"`
	ClearLogFiles  bool    `json:"clearlogfiles"`
	IconTheme      string  `json:"icontheme"`
	ToolbarSize    int     `json:"toolbarsize"`
	ToolbarPos     int     `json:"toolbarpos"`
	ToolbarText    string  `json:"toolbartext"`
	PanelSize      [2]int  `json:"panel_size"`
	ShowHiddenMenu bool    `json:"showhidenmenu"`
	Locale         string  `json:"locale"`

	// keys written by other versions, preserved verbatim
	extras map[string]json.RawMessage
}

// DefaultSettings returns the settings written on first run
func DefaultSettings(home string) Settings {
	return Settings{
		ConfVersion:    ConfVersion,
		OutputDir:      home,
		FFmpegLogLevel: DefaultFFmpegLogLevel,
		WarnExiting:    true,
		IconTheme:      DefaultIconTheme,
		ToolbarSize:    DefaultToolbarSize,
		ToolbarPos:     DefaultToolbarPos,
		ToolbarText:    DefaultToolbarText,
		PanelSize:      [2]int{DefaultPanelWidth, DefaultPanelHeight},
		Locale:         DefaultLocale,
	}
}

// Clone returns a deep copy, safe to edit in dialogs
func (s Settings) Clone() Settings {
	c := s
	if s.extras != nil {
		c.extras = maps.Clone(s.extras)
	}
	return c
}

// Extra returns the raw JSON value of a key unknown to this version
func (s Settings) Extra(key string) (json.RawMessage, bool) {
	v, ok := s.extras[key]
	return v, ok
}

// ShowToolbarText reports whether toolbar buttons carry labels
func (s Settings) ShowToolbarText() bool {
	return s.ToolbarText != ToolbarTextHide
}

// Normalize replaces out of range values with defaults
func (s *Settings) Normalize() {
	if !slices.Contains(ToolbarSizes, s.ToolbarSize) {
		s.ToolbarSize = DefaultToolbarSize
	}
	if s.ToolbarPos < ToolbarTop || s.ToolbarPos > ToolbarLeft {
		s.ToolbarPos = DefaultToolbarPos
	}
	if s.ToolbarText != ToolbarTextShow && s.ToolbarText != ToolbarTextHide {
		s.ToolbarText = DefaultToolbarText
	}
	if !slices.Contains(IconThemes, s.IconTheme) {
		s.IconTheme = DefaultIconTheme
	}
	if !slices.Contains(FFmpegLogLevels, s.FFmpegLogLevel) {
		s.FFmpegLogLevel = DefaultFFmpegLogLevel
	}
	if s.PanelSize[0] <= 0 || s.PanelSize[1] <= 0 {
		s.PanelSize = [2]int{DefaultPanelWidth, DefaultPanelHeight}
	}
	if s.Locale == "" {
		s.Locale = DefaultLocale
	}
}

// UnmarshalJSON decodes the known keys and keeps the rest
func (s *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range knownKeys {
		delete(raw, k)
	}
	*s = Settings(p)
	if len(raw) > 0 {
		s.extras = raw
	}
	return nil
}

// MarshalJSON encodes the known keys together with preserved unknown keys
func (s Settings) MarshalJSON() ([]byte, error) {
	type plain Settings
	data, err := json.Marshal(plain(s))
	if err != nil || len(s.extras) == 0 {
		return data, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.extras {
		if _, known := merged[k]; !known {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Store reads and writes the settings file
type Store struct {
	dir      string
	path     string
	defaults Settings
}

// NewStore creates a store for the settings file at path inside dir
func NewStore(dir, path string, defaults Settings) *Store {
	return &Store{dir: dir, path: path, defaults: defaults}
}

// Path returns the settings file location
func (s *Store) Path() string {
	return s.path
}

// Defaults returns a copy of the default settings
func (s *Store) Defaults() Settings {
	return s.defaults.Clone()
}

// Load reads the settings file, restoring or upgrading it when needed.
// Only a failure to create the configuration directory is unrecoverable.
func (s *Store) Load() (Settings, error) {
	if info, err := os.Stat(s.dir); err != nil || !info.IsDir() {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return Settings{}, fmt.Errorf("%w %s: %v", ErrConfigDir, s.dir, err)
		}
		return s.restore()
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.restore()
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", s.path, err)
	}

	var raw map[string]json.RawMessage
	var loaded Settings
	if json.Unmarshal(data, &raw) != nil || json.Unmarshal(data, &loaded) != nil {
		return s.restore()
	}

	if loaded.ConfVersion == ConfVersion {
		loaded.Normalize()
		return loaded, nil
	}

	merged, err := s.merge(raw)
	if err != nil {
		return s.restore()
	}
	if err := s.Save(merged); err != nil {
		return Settings{}, err
	}
	return merged, nil
}

// merge fills keys missing from raw with defaults and stamps the current version
func (s *Store) merge(raw map[string]json.RawMessage) (Settings, error) {
	base, err := json.Marshal(s.defaults)
	if err != nil {
		return Settings{}, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return Settings{}, err
	}
	for k, v := range raw {
		if k != KeyConfVersion {
			fields[k] = v
		}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return Settings{}, err
	}
	var merged Settings
	if err := json.Unmarshal(data, &merged); err != nil {
		return Settings{}, err
	}
	merged.ConfVersion = ConfVersion
	merged.Normalize()
	return merged, nil
}

func (s *Store) restore() (Settings, error) {
	def := s.Defaults()
	if err := s.Save(def); err != nil {
		return Settings{}, err
	}
	return def, nil
}

// Save writes the settings with 4-space indentation
func (s *Store) Save(settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace settings %s: %w", s.path, err)
	}
	return nil
}
