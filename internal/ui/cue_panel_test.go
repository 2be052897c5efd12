package ui

import (
	"slices"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/cuesheet"
)

func newTestPanel(t *testing.T, format, quality string) *CuePanel {
	t.Helper()
	test.NewApp()
	loc := NewLocalization()
	loc.SetLanguage(LangEnglish)
	return NewCuePanel(loc, format, quality, t.TempDir())
}

func TestNewCuePanel_Format(t *testing.T) {
	tests := []struct {
		name           string
		format         string
		quality        string
		expectedFormat string
	}{
		{"remembered format", cuesheet.FormatMP3, "", cuesheet.FormatMP3},
		{"unknown format", "aiff", "", cuesheet.FormatFLAC},
		{"empty format", "", "", cuesheet.FormatFLAC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPanel(t, tt.format, tt.quality)
			if p.Format() != tt.expectedFormat {
				t.Errorf("Format() = %q, expected %q", p.Format(), tt.expectedFormat)
			}
			_, def := cuesheet.QualityItems(tt.expectedFormat)
			if p.Quality() != def {
				t.Errorf("Quality() = %q, expected default %q", p.Quality(), def)
			}
		})
	}
}

func TestCuePanel_RemembersQuality(t *testing.T) {
	labels := cuesheet.QualityLabels(cuesheet.FormatMP3)
	if len(labels) < 2 {
		t.Skip("not enough presets")
	}
	last := labels[len(labels)-1]

	p := newTestPanel(t, cuesheet.FormatMP3, last)
	if p.Quality() != last {
		t.Errorf("Quality() = %q, expected %q", p.Quality(), last)
	}
}

func TestCuePanel_FormatChangeResetsQuality(t *testing.T) {
	p := newTestPanel(t, cuesheet.FormatFLAC, "")

	var gotFormat, gotQuality string
	p.OnOptionsChanged = func(format, quality string) {
		gotFormat, gotQuality = format, quality
	}
	p.formatSelect.SetSelected(cuesheet.FormatOGG)

	_, def := cuesheet.QualityItems(cuesheet.FormatOGG)
	if p.Quality() != def {
		t.Errorf("Quality() = %q, expected %q", p.Quality(), def)
	}
	if !slices.Equal(p.qualitySelect.Options, cuesheet.QualityLabels(cuesheet.FormatOGG)) {
		t.Errorf("quality options = %v", p.qualitySelect.Options)
	}
	if gotFormat != cuesheet.FormatOGG || gotQuality != def {
		t.Errorf("OnOptionsChanged(%q, %q), expected (%q, %q)", gotFormat, gotQuality, cuesheet.FormatOGG, def)
	}
}

func TestCuePanel_CodecCopy(t *testing.T) {
	p := newTestPanel(t, cuesheet.FormatFLAC, "")

	p.SetCodecCopy(true)
	if !p.CodecCopy() {
		t.Fatal("CodecCopy() = false")
	}
	if !p.formatSelect.Disabled() || !p.qualitySelect.Disabled() {
		t.Error("format and quality should be disabled in copy mode")
	}

	p.SetRunning(true)
	p.SetRunning(false)
	if !p.formatSelect.Disabled() {
		t.Error("finishing a job should keep copy mode locks")
	}

	p.SetCodecCopy(false)
	if p.formatSelect.Disabled() || p.qualitySelect.Disabled() {
		t.Error("format and quality should be enabled again")
	}
}

func TestCuePanel_SetSheet(t *testing.T) {
	p := newTestPanel(t, cuesheet.FormatFLAC, "")
	sheet := sampleSheet(t.TempDir())

	p.SetStatus("old", 0)
	p.SetSheet(sheet)

	if p.Sheet() != sheet {
		t.Error("Sheet() does not return the loaded sheet")
	}
	if got := p.Checked(); !slices.Equal(got, []bool{true, true}) {
		t.Errorf("Checked() = %v, expected every track checked", got)
	}
	if _, ok := p.SelectedIndex(); ok {
		t.Error("no track should be selected after import")
	}
	if got := p.StatusText(); got != p.loc.GetText(KeyReady) {
		t.Errorf("status = %q, expected Ready", got)
	}

	checked := p.Checked()
	checked[0] = false
	if !p.Checked()[0] {
		t.Error("Checked() must return a copy")
	}

	p.SetChecked(1, false)
	if got := p.Checked(); !slices.Equal(got, []bool{true, false}) {
		t.Errorf("Checked() = %v after unchecking track 2", got)
	}
	p.SetChecked(5, true)
}

func TestCuePanel_Selection(t *testing.T) {
	p := newTestPanel(t, cuesheet.FormatFLAC, "")
	p.SetSheet(sampleSheet(t.TempDir()))

	var selected []bool
	p.OnSelectionChanged = func(ok bool) { selected = append(selected, ok) }

	p.list.Select(1)
	index, ok := p.SelectedIndex()
	if !ok || index != 1 {
		t.Errorf("SelectedIndex() = %d, %v", index, ok)
	}
	track, err := p.trackModel(index)
	if err != nil || track.Title != "Two" {
		t.Errorf("trackModel(1) = %+v, %v", track, err)
	}

	p.list.UnselectAll()
	if _, ok := p.SelectedIndex(); ok {
		t.Error("selection should be cleared")
	}
	if !slices.Equal(selected, []bool{true, false}) {
		t.Errorf("OnSelectionChanged calls = %v", selected)
	}
}
