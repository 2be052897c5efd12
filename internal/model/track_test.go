package model

import (
	"errors"
	"testing"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{-1, "00:00"},
		{0, "00:00"},
		{30, "00:30"},
		{89.6, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
	}

	for _, test := range tests {
		result := FormatSeconds(test.seconds)
		if result != test.expected {
			t.Errorf("FormatSeconds(%v) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestTrack_GetDisplayTitle(t *testing.T) {
	tr := &Track{TrackNum: "03"}
	if got := tr.GetDisplayTitle(); got != "Track 03" {
		t.Errorf("Expected 'Track 03', got '%s'", got)
	}
	tr.Title = "Intro"
	if got := tr.GetDisplayTitle(); got != "Intro" {
		t.Errorf("Expected 'Intro', got '%s'", got)
	}
}

func TestTrack_TagRoundTrip(t *testing.T) {
	tr := &Track{TrackNum: "01", Title: "Old", Start: 12.5}

	if err := tr.SetTag("title", "New"); err != nil {
		t.Fatalf("SetTag failed: %v", err)
	}
	if tr.Title != "New" {
		t.Errorf("Expected title 'New', got '%s'", tr.Title)
	}
	if got := tr.Tag(TagStart); got != "12.5" {
		t.Errorf("Expected START '12.5', got '%s'", got)
	}
	if err := tr.SetTag(TagTrackNum, "99"); err == nil {
		t.Error("Expected error when setting a read-only tag")
	}
}

func TestTrack_ApplyTags(t *testing.T) {
	tr := &Track{}
	tags := tr.Tags()
	if len(tags) != len(EditableTags) {
		t.Fatalf("Expected %d tags, got %d", len(EditableTags), len(tags))
	}
	tags[TagPerformer] = "Artist"
	tags[TagGenre] = "Jazz"
	if err := tr.ApplyTags(tags); err != nil {
		t.Fatalf("ApplyTags failed: %v", err)
	}
	if tr.Performer != "Artist" || tr.Genre != "Jazz" {
		t.Errorf("Tags not applied: %+v", tr)
	}
}

func TestTrackList_Bounds(t *testing.T) {
	list := TrackList{{TrackNum: "01"}, {TrackNum: "02"}}

	if _, err := list.Get(2); !errors.Is(err, ErrTrackIndex) {
		t.Errorf("Expected ErrTrackIndex, got %v", err)
	}
	if err := list.Set(-1, Track{}); !errors.Is(err, ErrTrackIndex) {
		t.Errorf("Expected ErrTrackIndex, got %v", err)
	}
	if err := list.Set(1, Track{TrackNum: "02", Title: "B"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, _ := list.Get(1)
	if got.Title != "B" {
		t.Errorf("Expected title 'B', got '%s'", got.Title)
	}
}

func TestValueOrNA(t *testing.T) {
	if ValueOrNA("  ") != NotAvailable {
		t.Error("Expected N/A for blank value")
	}
	if ValueOrNA("x") != "x" {
		t.Error("Expected value to be returned unchanged")
	}
}
