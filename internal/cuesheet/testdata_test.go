package cuesheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

const sampleCue = `REM GENRE "Progressive Rock"
REM DATE 1973
REM DISCID 2F0A3C05
REM COMMENT "ExactAudioCopy v1.0"
PERFORMER "Pink Floyd"
TITLE "The Dark Side"
FILE "album.flac" WAVE
  TRACK 01 AUDIO
    TITLE "Speak to Me"
    INDEX 01 00:00:00
  TRACK 02 AUDIO
    TITLE "Breathe"
    PERFORMER "Roger"
    INDEX 00 01:29:00
    INDEX 01 01:30:15
  TRACK 03 AUDIO
    TITLE "On the Run"
    INDEX 01 04:13:00
`

type fakeProber struct {
	duration float64
	calls    int
}

func (f *fakeProber) Probe(_ context.Context, file string) (model.AudioFileInfo, error) {
	f.calls++
	return model.AudioFileInfo{
		Filename: file,
		Duration: f.duration,
		Streams:  []model.AudioStream{{CodecName: "flac", SampleFmt: "s16", SampleRate: "44100", Channels: 2, Duration: f.duration}},
	}, nil
}

// writeSheet writes a CUE sheet and an empty audio file into a temp dir
func writeSheet(t *testing.T, content []byte, audio string) string {
	t.Helper()
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "album.cue")
	if err := os.WriteFile(cuePath, content, 0644); err != nil {
		t.Fatal(err)
	}
	if audio != "" {
		if err := os.WriteFile(filepath.Join(dir, audio), []byte{}, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return cuePath
}
