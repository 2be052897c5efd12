package cuesheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

// ErrNothingSelected means every track was unchecked
var ErrNothingSelected = errors.New("no tracks selected")

var codecs = map[string]string{
	FormatWAV:  "pcm_s16le",
	FormatFLAC: "flac",
	FormatMP3:  "libmp3lame",
	FormatOGG:  "libvorbis",
}

var unsafeNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// Params selects the encoder and destination of a split job
type Params struct {
	FFmpegCmd string
	LogLevel  string
	Format    string // one of Formats
	Quality   string // a label from QualityItems(Format)
	CodecCopy bool   // stream copy, keeping the source format
	TempDir   string
}

// Recipes builds one FFmpeg invocation per selected track.
// selected must have one entry per track.
func Recipes(tracks model.TrackList, params Params, selected []bool) ([]model.Recipe, error) {
	if len(selected) != len(tracks) {
		return nil, fmt.Errorf("selection has %d entries for %d tracks", len(selected), len(tracks))
	}
	if params.FFmpegCmd == "" {
		return nil, fmt.Errorf("ffmpeg command not configured")
	}

	var codecArgs []string
	if params.CodecCopy {
		codecArgs = []string{"-c", "copy"}
	} else {
		codec, ok := codecs[params.Format]
		if !ok {
			return nil, fmt.Errorf("unsupported output format %q", params.Format)
		}
		quality, err := QualityParams(params.Format, params.Quality)
		if err != nil {
			return nil, err
		}
		codecArgs = append([]string{"-c:a", codec}, quality...)
	}

	logLevel := params.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	var recipes []model.Recipe
	for i, track := range tracks {
		if !selected[i] {
			continue
		}

		ext := params.Format
		if params.CodecCopy {
			ext = strings.TrimPrefix(strings.ToLower(filepath.Ext(track.File)), ".")
		}
		name := OutputName(track, ext)

		args := []string{
			params.FFmpegCmd,
			"-loglevel", logLevel,
			"-progress", "pipe:1",
			"-nostats",
			"-nostdin",
			"-i", track.File,
			"-ss", formatSeconds(track.Start),
		}
		if track.Duration > 0 {
			args = append(args, "-t", formatSeconds(track.Duration))
		}
		args = append(args, "-vn")
		args = append(args, metadataArgs(track, len(tracks))...)
		args = append(args, codecArgs...)
		args = append(args, "-y", filepath.Join(params.TempDir, name))

		recipes = append(recipes, model.Recipe{
			Args:       args,
			Duration:   track.Duration,
			OutputName: name,
			TrackIndex: i,
		})
	}

	if len(recipes) == 0 {
		return nil, ErrNothingSelected
	}
	return recipes, nil
}

// OutputName returns "NN - Title.ext" with characters unsafe in file names replaced
func OutputName(track model.Track, ext string) string {
	name := fmt.Sprintf("%s - %s", track.TrackNum, track.GetDisplayTitle())
	name = strings.TrimSpace(unsafeNameChars.ReplaceAllString(name, "_"))
	if ext == "" {
		return name
	}
	return name + "." + ext
}

func metadataArgs(track model.Track, total int) []string {
	tags := []struct {
		key   string
		value string
	}{
		{"title", track.Title},
		{"artist", track.Performer},
		{"album", track.Album},
		{"track", fmt.Sprintf("%d/%d", track.Number, total)},
		{"genre", track.Genre},
		{"date", track.Date},
		{"comment", track.Comment},
		{"discid", track.DiscID},
	}
	var args []string
	for _, tag := range tags {
		if strings.TrimSpace(tag.value) == "" {
			continue
		}
		args = append(args, "-metadata", tag.key+"="+tag.value)
	}
	return args
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
