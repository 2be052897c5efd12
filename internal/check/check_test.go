//go:build !windows

package check

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/platform"
)

func TestRun_BundledAndMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	bundle := t.TempDir()
	bin := filepath.Join(bundle, "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bin, "ffmpeg"), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	results := Run(platform.OSLinux, bundle, Requirements)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].State != platform.Bundled {
		t.Errorf("Expected ffmpeg bundled, got %s", results[0].State)
	}
	if results[1].Available() {
		t.Error("ffprobe should not be available")
	}
	if AllRequiredAvailable(results) {
		t.Error("Missing required executable should fail the check")
	}

	results[1].Optional = true
	if !AllRequiredAvailable(results) {
		t.Error("Optional executables should not fail the check")
	}
}

func TestRender(t *testing.T) {
	results := []Status{
		{Requirement: Requirement{Name: "ffmpeg"}, State: platform.System, Path: "/usr/bin/ffmpeg"},
		{Requirement: Requirement{Name: "ffprobe"}, State: platform.NotInstalled},
	}

	out := Render(results, false)
	for _, want := range []string{"ffmpeg", "/usr/bin/ffmpeg", "Ok (system)", "Not Installed", "Required"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Uncoloured output should not contain escape codes")
	}
	if !strings.Contains(Render(results, true), "\x1b[") {
		t.Error("Coloured output should contain escape codes")
	}
}

func TestShouldColorize(t *testing.T) {
	if ShouldColorize(&bytes.Buffer{}) {
		t.Error("A buffer is not a terminal")
	}
}
