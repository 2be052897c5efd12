package ui

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestListLogFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ffmpeg.log", "ffcuesplitter-gui.log", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "old.log.d"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		dir      string
		expected []string
	}{
		{"log files only", dir, []string{"ffcuesplitter-gui.log", "ffmpeg.log"}},
		{"missing directory", filepath.Join(dir, "missing"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listLogFiles(tt.dir); !slices.Equal(got, tt.expected) {
				t.Errorf("listLogFiles() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestLogViewer_ClearSelected(t *testing.T) {
	app := test.NewApp()
	dir := t.TempDir()
	path := filepath.Join(dir, "ffmpeg.log")
	if err := os.WriteFile(path, []byte("COMMAND: ffmpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	lv := NewLogViewer(app, NewLocalization(), dir)
	defer lv.window.Close()
	if !slices.Equal(lv.Files(), []string{"ffmpeg.log"}) {
		t.Fatalf("Files() = %v", lv.Files())
	}

	lv.list.Select(0)
	if got := lv.content.Text(); got != "COMMAND: ffmpeg" {
		t.Errorf("content = %q", got)
	}

	lv.clearSelected()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("log size = %d after clearing", info.Size())
	}
	if got := lv.content.Text(); got != "" {
		t.Errorf("content = %q after clearing", got)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	lv.Refresh()
	if len(lv.Files()) != 0 || lv.selected != -1 {
		t.Errorf("Refresh() kept %v, selected %d", lv.Files(), lv.selected)
	}
}
