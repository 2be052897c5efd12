package model

import "testing"

func TestEvent_Labels(t *testing.T) {
	ev := Event{Kind: EventProgress, Index: 2, Total: 5, Fraction: 0.456}
	if ev.Track() != "2/5" {
		t.Errorf("Expected '2/5', got '%s'", ev.Track())
	}
	if ev.Percent() != 46 {
		t.Errorf("Expected 46, got %d", ev.Percent())
	}
	if ev.Kind.String() != "progress" {
		t.Errorf("Expected 'progress', got '%s'", ev.Kind.String())
	}
}

func TestRecipe_CommandLine(t *testing.T) {
	r := Recipe{Args: []string{"ffmpeg", "-i", "my album.flac", "out.wav"}}
	if r.Command() != "ffmpeg" {
		t.Errorf("Expected 'ffmpeg', got '%s'", r.Command())
	}
	expected := `ffmpeg -i "my album.flac" out.wav`
	if got := r.CommandLine(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
	if (Recipe{}).Command() != "" {
		t.Error("Expected empty command for empty recipe")
	}
}
