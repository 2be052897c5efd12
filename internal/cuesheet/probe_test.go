//go:build !windows

package cuesheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const probeJSON = `{
    "streams": [
        {"codec_type": "audio", "codec_name": "flac", "sample_fmt": "s16", "sample_rate": "44100", "channels": 2, "duration": "2400.500000"},
        {"codec_type": "video", "codec_name": "mjpeg"}
    ],
    "format": {"filename": "/music/album.flac", "duration": "2400.500000"}
}`

func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffprobe")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestParseProbe(t *testing.T) {
	info, err := ParseProbe([]byte(probeJSON))
	if err != nil {
		t.Fatalf("ParseProbe failed: %v", err)
	}
	if info.Duration != 2400.5 {
		t.Errorf("Expected duration 2400.5, got %v", info.Duration)
	}
	if len(info.Streams) != 1 {
		t.Fatalf("Expected only the audio stream, got %d", len(info.Streams))
	}
	if info.Streams[0].Channels != 2 || info.Streams[0].SampleRate != "44100" {
		t.Errorf("Unexpected stream %+v", info.Streams[0])
	}
}

func TestFFprobe_Probe(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\ncat <<'JSON'\n"+probeJSON+"\nJSON\n")

	info, err := NewFFprobe(stub).Probe(context.Background(), "/music/album.flac")
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.Filename != "/music/album.flac" {
		t.Errorf("Unexpected filename %s", info.Filename)
	}
}

func TestFFprobe_ProbeFailure(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho 'No such file' >&2\nexit 1\n")

	if _, err := NewFFprobe(stub).Probe(context.Background(), "/missing.flac"); err == nil {
		t.Error("Expected error from failing ffprobe")
	}
	if _, err := NewFFprobe("").Probe(context.Background(), "/x.flac"); err == nil {
		t.Error("Expected error for unconfigured ffprobe")
	}
}
