package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

func TestTrackTagDialog_Apply(t *testing.T) {
	test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()
	loc := NewLocalization()
	loc.SetLanguage(LangEnglish)

	track := model.Track{Number: 3, TrackNum: "03", Performer: "Artist", Title: "Old", Start: 12, Duration: 30}

	tests := []struct {
		name      string
		confirmed bool
		applied   bool
	}{
		{"confirmed", true, true},
		{"cancelled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotIndex int
			var got *model.Track
			d := NewTrackTagDialog(loc, window, 2, track, func(index int, edited model.Track) {
				gotIndex = index
				got = &edited
			})
			d.entries[model.TagTitle].SetText("New")
			d.entries[model.TagGenre].SetText("Jazz")

			d.apply(tt.confirmed)

			if (got != nil) != tt.applied {
				t.Fatalf("onApply called = %v, expected %v", got != nil, tt.applied)
			}
			if !tt.applied {
				return
			}
			if gotIndex != 2 {
				t.Errorf("index = %d, expected 2", gotIndex)
			}
			if got.Title != "New" || got.Genre != "Jazz" || got.Performer != "Artist" {
				t.Errorf("edited track = %+v", got)
			}
			if got.Start != track.Start || got.Duration != track.Duration {
				t.Error("timing must not change")
			}
		})
	}
}

func TestTrackTagDialog_LoadsTags(t *testing.T) {
	test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	track := model.Track{Number: 1, Performer: "Artist", Album: "Album", Title: "Song", Comment: "live"}
	d := NewTrackTagDialog(NewLocalization(), window, 0, track, nil)

	for _, tag := range model.EditableTags {
		if got, want := d.entries[tag].Text, track.Tag(tag); got != want {
			t.Errorf("entry %s = %q, expected %q", tag, got, want)
		}
	}
	if !d.entries[model.TagComment].MultiLine {
		t.Error("comment entry should be multiline")
	}
}
