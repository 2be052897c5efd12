package cuesheet

import (
	"fmt"
	"strings"
)

// Output formats
const (
	FormatWAV  = "wav"
	FormatFLAC = "flac"
	FormatMP3  = "mp3"
	FormatOGG  = "ogg"
	FormatCopy = "copy"
)

// Formats lists the selectable encoder output formats
var Formats = []string{FormatWAV, FormatFLAC, FormatMP3, FormatOGG}

// QualityAuto leaves compression to the encoder defaults
const QualityAuto = "Auto"

// QualityItem is one compression preset: a label and the encoder parameters
type QualityItem struct {
	Label  string
	Params string
}

var qualityTable = map[string][]QualityItem{
	FormatWAV: {
		{QualityAuto, ""},
	},
	FormatFLAC: {
		{QualityAuto, ""},
		{"very high quality", "-compression_level 0"},
		{"quality 1", "-compression_level 1"},
		{"quality 2", "-compression_level 2"},
		{"quality 3", "-compression_level 3"},
		{"quality 4", "-compression_level 4"},
		{"Standard quality", "-compression_level 5"},
		{"quality 6", "-compression_level 6"},
		{"quality 7", "-compression_level 7"},
		{"low quality", "-compression_level 8"},
	},
	FormatOGG: {
		{QualityAuto, ""},
		{"very poor quality", "-aq 1"},
		{"VBR 92 kbit/s", "-aq 2"},
		{"VBR 128 kbit/s", "-aq 3"},
		{"VBR 160 kbit/s", "-aq 4"},
		{"VBR 175 kbit/s", "-aq 5"},
		{"VBR 192 kbit/s", "-aq 6"},
		{"VBR 220 kbit/s", "-aq 7"},
		{"VBR 260 kbit/s", "-aq 8"},
		{"VBR 320 kbit/s", "-aq 9"},
		{"very good quality", "-aq 10"},
	},
	FormatMP3: {
		{QualityAuto, ""},
		{"VBR 128 kbit/s (low quality)", "-b:a 128k"},
		{"VBR 160 kbit/s", "-b:a 160k"},
		{"VBR 192 kbit/s", "-b:a 192k"},
		{"VBR 260 kbit/s", "-b:a 260k"},
		{"CBR 320 kbit/s (very good quality)", "-b:a 320k"},
	},
}

var defaultQuality = map[string]string{
	FormatWAV:  QualityAuto,
	FormatFLAC: "Standard quality",
	FormatMP3:  "VBR 192 kbit/s",
	FormatOGG:  "VBR 175 kbit/s",
}

// QualityItems returns the ordered presets for format and the default label
func QualityItems(format string) ([]QualityItem, string) {
	items := qualityTable[strings.ToLower(format)]
	out := make([]QualityItem, len(items))
	copy(out, items)
	return out, defaultQuality[strings.ToLower(format)]
}

// QualityLabels returns just the preset labels for format
func QualityLabels(format string) []string {
	items, _ := QualityItems(format)
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	return labels
}

// QualityParams returns the encoder parameters of a preset
func QualityParams(format, label string) ([]string, error) {
	for _, it := range qualityTable[strings.ToLower(format)] {
		if it.Label == label {
			return strings.Fields(it.Params), nil
		}
	}
	return nil, fmt.Errorf("unknown quality %q for format %q", label, format)
}
