package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), AppDirName)
	return NewStore(dir, filepath.Join(dir, SettingsFileName), DefaultSettings("/home/tester")), dir
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings("/home/tester")

	if s.ConfVersion != ConfVersion {
		t.Errorf("Expected version %v, got %v", ConfVersion, s.ConfVersion)
	}
	if s.OutputDir != "/home/tester" {
		t.Errorf("Expected output dir '/home/tester', got '%s'", s.OutputDir)
	}
	if !s.WarnExiting || s.ClearLogFiles {
		t.Error("Unexpected default exit flags")
	}
	if s.IconTheme != "Colored" || s.ToolbarSize != 24 || s.ToolbarPos != 0 || s.ToolbarText != "show" {
		t.Errorf("Unexpected toolbar defaults: %+v", s)
	}
	if s.FFmpegLogLevel != "info" {
		t.Errorf("Expected log level 'info', got '%s'", s.FFmpegLogLevel)
	}
}

func TestStore_LoadCreatesDirectoryAndDefaults(t *testing.T) {
	store, dir := newTestStore(t)

	s, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.OutputDir != "/home/tester" {
		t.Errorf("Expected defaults, got %+v", s)
	}
	if _, err := os.Stat(filepath.Join(dir, SettingsFileName)); err != nil {
		t.Errorf("Settings file should be written: %v", err)
	}
}

func TestStore_LoadDirectoryFailure(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(blocker, AppDirName)
	store := NewStore(dir, filepath.Join(dir, SettingsFileName), DefaultSettings("/"))

	if _, err := store.Load(); !errors.Is(err, ErrConfigDir) {
		t.Errorf("Expected ErrConfigDir, got %v", err)
	}
}

func TestStore_LoadCorruptFile(t *testing.T) {
	store, dir := newTestStore(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.ToolbarSize != DefaultToolbarSize {
		t.Errorf("Expected defaults after corrupt file, got %+v", s)
	}

	data, _ := os.ReadFile(store.Path())
	if !json.Valid(data) {
		t.Error("Corrupt file should be rewritten with valid JSON")
	}
}

func TestStore_LoadVersionMismatchMerges(t *testing.T) {
	store, dir := newTestStore(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	old := `{"confversion": 3.0, "outputfile": "/music", "toolbarsize": 32, "legacy": [1, 2]}`
	if err := os.WriteFile(store.Path(), []byte(old), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.ConfVersion != ConfVersion {
		t.Errorf("Expected version to be stamped, got %v", s.ConfVersion)
	}
	if s.OutputDir != "/music" || s.ToolbarSize != 32 {
		t.Errorf("User values should survive the merge: %+v", s)
	}
	if !s.WarnExiting || s.IconTheme != IconThemeColored {
		t.Errorf("Missing keys should be filled from defaults: %+v", s)
	}
	if _, ok := s.Extra("legacy"); !ok {
		t.Error("Unknown key should survive the merge")
	}

	again, err := store.Load()
	if err != nil {
		t.Fatalf("Second load failed: %v", err)
	}
	if again.ConfVersion != ConfVersion || again.OutputDir != "/music" {
		t.Errorf("Merged file should have been written back: %+v", again)
	}
}

func TestStore_LoadUpgradesEarlierLayout(t *testing.T) {
	store, dir := newTestStore(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `{"confversion": 4.0, "outputfile": "/music", "toolbarsize": 16, "icontheme": "Dark"}`
	if err := os.WriteFile(store.Path(), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.ConfVersion != ConfVersion {
		t.Errorf("Expected version %v, got %v", ConfVersion, s.ConfVersion)
	}
	if s.PanelSize != [2]int{DefaultPanelWidth, DefaultPanelHeight} {
		t.Errorf("Expected default panel size, got %v", s.PanelSize)
	}
	if s.Locale != DefaultLocale {
		t.Errorf("Expected default locale, got %q", s.Locale)
	}
	if s.OutputDir != "/music" || s.ToolbarSize != 16 || s.IconTheme != "Dark" {
		t.Errorf("User values should survive the upgrade: %+v", s)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"panel_size"`) {
		t.Errorf("Upgraded file should be written back:\n%s", data)
	}
}

func TestStore_LoadNormalizesCurrentVersion(t *testing.T) {
	store, dir := newTestStore(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := fmt.Sprintf(`{"confversion": %v, "toolbarsize": 20, "panel_size": [0, 0]}`, ConfVersion)
	if err := os.WriteFile(store.Path(), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.ToolbarSize != DefaultToolbarSize || s.PanelSize != [2]int{DefaultPanelWidth, DefaultPanelHeight} {
		t.Errorf("Out of range values should be normalized: %+v", s)
	}
}

func TestStore_SaveRoundTripKeepsUnknownKeys(t *testing.T) {
	store, dir := newTestStore(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `{"confversion": 4.0, "outputfile": "/out", "future_option": "kept"}`
	if err := os.WriteFile(store.Path(), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	s.ToolbarPos = ToolbarLeft
	if err := store.Save(s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n    \"future_option\": \"kept\"") {
		t.Errorf("Expected 4-space indented unknown key, got:\n%s", data)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if reloaded.ToolbarPos != ToolbarLeft || reloaded.OutputDir != "/out" {
		t.Errorf("Unexpected reloaded settings: %+v", reloaded)
	}
}

func TestSettings_CloneIsIndependent(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"x": 1}`), &s); err != nil {
		t.Fatal(err)
	}
	c := s.Clone()
	c.extras["y"] = json.RawMessage("2")
	if _, ok := s.Extra("y"); ok {
		t.Error("Clone should not share the extras map")
	}
}

func TestSettings_Normalize(t *testing.T) {
	s := Settings{ToolbarSize: 20, ToolbarPos: 7, ToolbarText: "maybe", IconTheme: "Neon", FFmpegLogLevel: "loud"}
	s.Normalize()

	if s.ToolbarSize != DefaultToolbarSize || s.ToolbarPos != DefaultToolbarPos {
		t.Errorf("Toolbar values not normalized: %+v", s)
	}
	if s.ToolbarText != ToolbarTextShow || s.IconTheme != IconThemeColored {
		t.Errorf("Text/theme not normalized: %+v", s)
	}
	if s.FFmpegLogLevel != DefaultFFmpegLogLevel || s.Locale != DefaultLocale {
		t.Errorf("Log level/locale not normalized: %+v", s)
	}
	if s.PanelSize != [2]int{DefaultPanelWidth, DefaultPanelHeight} {
		t.Errorf("Panel size not normalized: %v", s.PanelSize)
	}
}
