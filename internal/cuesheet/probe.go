package cuesheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

// FFprobe runs the ffprobe binary to inspect audio files
type FFprobe struct {
	Cmd string
}

// NewFFprobe creates a prober for the given ffprobe executable
func NewFFprobe(cmd string) *FFprobe {
	return &FFprobe{Cmd: cmd}
}

type probeOutput struct {
	Format struct {
		Filename string `json:"filename"`
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleFmt  string `json:"sample_fmt"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
		Duration   string `json:"duration"`
	} `json:"streams"`
}

// Probe returns the duration and audio streams of file
func (p *FFprobe) Probe(ctx context.Context, file string) (model.AudioFileInfo, error) {
	if p.Cmd == "" {
		return model.AudioFileInfo{}, fmt.Errorf("ffprobe command not configured")
	}

	cmd := exec.CommandContext(ctx, p.Cmd,
		"-v", "error",
		"-show_format",
		"-show_streams",
		"-print_format", "json",
		file,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return model.AudioFileInfo{}, fmt.Errorf("ffprobe failed: %w: %s", err, msg)
		}
		return model.AudioFileInfo{}, fmt.Errorf("ffprobe failed: %w", err)
	}
	return ParseProbe(out)
}

// ParseProbe decodes ffprobe JSON output, keeping audio streams only
func ParseProbe(data []byte) (model.AudioFileInfo, error) {
	var raw probeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.AudioFileInfo{}, fmt.Errorf("decode ffprobe output: %w", err)
	}

	info := model.AudioFileInfo{
		Filename: raw.Format.Filename,
		Duration: parseSeconds(raw.Format.Duration),
	}
	for _, s := range raw.Streams {
		if s.CodecType != "audio" {
			continue
		}
		info.Streams = append(info.Streams, model.AudioStream{
			CodecName:  s.CodecName,
			SampleFmt:  s.SampleFmt,
			SampleRate: s.SampleRate,
			Channels:   s.Channels,
			Duration:   parseSeconds(s.Duration),
		})
	}
	if info.Duration == 0 && len(info.Streams) > 0 {
		info.Duration = info.Streams[0].Duration
	}
	return info, nil
}

func parseSeconds(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
