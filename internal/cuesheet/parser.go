package cuesheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vchimishuk/chub/cue"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

// FramesPerSecond is the CD-DA frame rate used by CUE INDEX times
const FramesPerSecond = 75

var (
	// ErrNoTracks means the sheet parsed but describes no audio tracks
	ErrNoTracks = errors.New("no tracks found in CUE sheet")
	// ErrAudioFileNotFound means a FILE entry points to a missing file
	ErrAudioFileNotFound = errors.New("audio file not found")
	// ErrInvalidTiming means track start times are not increasing
	ErrInvalidTiming = errors.New("invalid track timing")
)

// alternative extensions tried when the FILE entry does not exist on disk
var audioExtensions = []string{".flac", ".ape", ".wv", ".wav", ".tak", ".mp3", ".ogg", ".m4a"}

var remPattern = regexp.MustCompile(`^(\S+)\s+(.*)$`)

// Prober reports the duration and streams of an audio file
type Prober interface {
	Probe(ctx context.Context, file string) (model.AudioFileInfo, error)
}

// Options tunes CUE import
type Options struct {
	// Charset forces the text encoding; empty means detect
	Charset string
	// Prober provides file durations for the last track of each FILE
	Prober Prober
}

// Sheet is an imported CUE sheet
type Sheet struct {
	Path   string
	Disc   model.DiscInfo
	Tracks model.TrackList
}

// Open reads, decodes and parses the CUE sheet at path
func Open(ctx context.Context, path string, opts Options) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read CUE file: %w", err)
	}

	text, enc, err := DecodeText(data, opts.Charset)
	if err != nil {
		return nil, err
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	parsed, err := cue.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse CUE file %s: %w", filepath.Base(path), err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	sheet := &Sheet{Path: abs}
	sheet.Disc = discInfo(parsed)
	sheet.Disc.CueFile = abs
	sheet.Disc.Encoding = enc

	if err := sheet.buildTracks(ctx, parsed, opts.Prober); err != nil {
		return nil, err
	}
	return sheet, nil
}

func discInfo(parsed *cue.Sheet) model.DiscInfo {
	disc := model.DiscInfo{
		Performer: strings.TrimSpace(parsed.Performer),
		Album:     strings.TrimSpace(parsed.Title),
	}
	for _, comment := range parsed.Comments {
		key, value := splitRem(comment)
		switch key {
		case model.TagGenre:
			disc.Genre = value
		case model.TagDate:
			disc.Date = value
		case model.TagDiscID:
			disc.DiscID = value
		case model.TagComment:
			disc.Comment = value
		case model.TagDiscNumber:
			disc.DiscNumber = value
		case model.TagTotalDisc, "TOTALDISCS":
			disc.TotalDisc = value
		}
	}
	return disc
}

// splitRem splits a REM comment into an upper case key and an unquoted value
func splitRem(comment string) (string, string) {
	comment = strings.TrimSpace(comment)
	comment = strings.TrimSpace(strings.TrimPrefix(comment, "REM "))
	m := remPattern.FindStringSubmatch(comment)
	if m == nil {
		return strings.ToUpper(comment), ""
	}
	return strings.ToUpper(m[1]), strings.Trim(strings.TrimSpace(m[2]), `"`)
}

func (s *Sheet) buildTracks(ctx context.Context, parsed *cue.Sheet, prober Prober) error {
	cueDir := filepath.Dir(s.Path)

	for _, f := range parsed.Files {
		if len(f.Tracks) == 0 {
			continue
		}
		audio, err := resolveAudioFile(cueDir, f.Name)
		if err != nil {
			return err
		}

		info := model.AudioFileInfo{Filename: audio}
		if prober != nil {
			info, err = prober.Probe(ctx, audio)
			if err != nil {
				return fmt.Errorf("probe %s: %w", filepath.Base(audio), err)
			}
		}
		s.Disc.AudioFiles = append(s.Disc.AudioFiles, info)

		for i, t := range f.Tracks {
			start := trackStart(t)
			end := info.Duration
			if i+1 < len(f.Tracks) {
				end = trackStart(f.Tracks[i+1])
			}
			var duration float64
			switch {
			case end > start:
				duration = end - start
			case i+1 < len(f.Tracks) || end > 0:
				return fmt.Errorf("%w: track %02d starts at %.2fs but ends at %.2fs",
					ErrInvalidTiming, t.Number, start, end)
			}
			// duration stays 0 for the last track of an unprobed file

			performer := strings.TrimSpace(t.Performer)
			if performer == "" {
				performer = s.Disc.Performer
			}

			s.Tracks = append(s.Tracks, model.Track{
				Number:    t.Number,
				TrackNum:  fmt.Sprintf("%02d", t.Number),
				Performer: performer,
				Album:     s.Disc.Album,
				Title:     strings.TrimSpace(t.Title),
				Genre:     s.Disc.Genre,
				Date:      s.Disc.Date,
				DiscID:    s.Disc.DiscID,
				Comment:   s.Disc.Comment,
				Start:     start,
				Duration:  duration,
				File:      audio,
			})
		}
	}

	if len(s.Tracks) == 0 {
		return ErrNoTracks
	}
	return nil
}

// trackStart returns INDEX 01 in seconds, or the first index when 01 is absent
func trackStart(t *cue.Track) float64 {
	var idx *cue.Index
	for _, i := range t.Indexes {
		if i.Number == 1 {
			idx = i
			break
		}
	}
	if idx == nil {
		if len(t.Indexes) == 0 {
			return 0
		}
		idx = t.Indexes[0]
	}
	return IndexSeconds(idx.Time.Min, idx.Time.Sec, idx.Time.Frames)
}

// IndexSeconds converts an mm:ss:ff CUE time to seconds
func IndexSeconds(min, sec, frames int) float64 {
	return float64(min*60+sec) + float64(frames)/FramesPerSecond
}

// resolveAudioFile finds the file a FILE entry refers to, trying common
// lossless extensions when the named file is missing
func resolveAudioFile(cueDir, name string) (string, error) {
	name = filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(cueDir, name)
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range audioExtensions {
		candidate := base + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrAudioFileNotFound, name)
}

// SetTrack validates index against the loaded tracks and replaces the record
func (s *Sheet) SetTrack(index int, track model.Track) error {
	return s.Tracks.Set(index, track)
}
