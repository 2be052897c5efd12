package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CD-text tag names used in track and disc metadata
const (
	TagTrackNum   = "TRACK_NUM"
	TagPerformer  = "PERFORMER"
	TagAlbum      = "ALBUM"
	TagTitle      = "TITLE"
	TagGenre      = "GENRE"
	TagDate       = "DATE"
	TagDiscID     = "DISCID"
	TagComment    = "COMMENT"
	TagDiscNumber = "DISCNUMBER"
	TagTotalDisc  = "TOTALDISC"
	TagStart      = "START"
	TagDuration   = "DURATION"
	TagFile       = "FILE"
)

// EditableTags lists the tags a user may change before splitting, in dialog order
var EditableTags = []string{TagPerformer, TagAlbum, TagTitle, TagGenre, TagDate, TagDiscID, TagComment}

// NotAvailable is displayed for missing tag values
const NotAvailable = "N/A"

// ErrTrackIndex is returned when a track index is outside the loaded track list
var ErrTrackIndex = errors.New("track index out of range")

// Track represents one audio track described by a CUE sheet
type Track struct {
	Number    int     `json:"number"`
	TrackNum  string  `json:"track_num"` // zero padded, e.g. "01"
	Performer string  `json:"performer"`
	Album     string  `json:"album"`
	Title     string  `json:"title"`
	Genre     string  `json:"genre,omitempty"`
	Date      string  `json:"date,omitempty"`
	DiscID    string  `json:"discid,omitempty"`
	Comment   string  `json:"comment,omitempty"`
	Start     float64 `json:"start"`    // seconds from the beginning of File
	Duration  float64 `json:"duration"` // seconds
	File      string  `json:"file"`     // absolute path of the source audio file
}

// Tag returns the value of a CD-text tag as a string
func (t *Track) Tag(name string) string {
	switch strings.ToUpper(name) {
	case TagTrackNum:
		return t.TrackNum
	case TagPerformer:
		return t.Performer
	case TagAlbum:
		return t.Album
	case TagTitle:
		return t.Title
	case TagGenre:
		return t.Genre
	case TagDate:
		return t.Date
	case TagDiscID:
		return t.DiscID
	case TagComment:
		return t.Comment
	case TagStart:
		return strconv.FormatFloat(t.Start, 'f', -1, 64)
	case TagDuration:
		return strconv.FormatFloat(t.Duration, 'f', -1, 64)
	case TagFile:
		return t.File
	}
	return ""
}

// SetTag sets the value of an editable CD-text tag
func (t *Track) SetTag(name, value string) error {
	switch strings.ToUpper(name) {
	case TagPerformer:
		t.Performer = value
	case TagAlbum:
		t.Album = value
	case TagTitle:
		t.Title = value
	case TagGenre:
		t.Genre = value
	case TagDate:
		t.Date = value
	case TagDiscID:
		t.DiscID = value
	case TagComment:
		t.Comment = value
	default:
		return fmt.Errorf("tag %q is not editable", name)
	}
	return nil
}

// Tags returns the editable tags as a name to value mapping
func (t *Track) Tags() map[string]string {
	tags := make(map[string]string, len(EditableTags))
	for _, name := range EditableTags {
		tags[name] = t.Tag(name)
	}
	return tags
}

// ApplyTags writes a tag mapping back into the track
func (t *Track) ApplyTags(tags map[string]string) error {
	for name, value := range tags {
		if err := t.SetTag(name, value); err != nil {
			return err
		}
	}
	return nil
}

// GetLengthString returns the track duration formatted as mm:ss (or hh:mm:ss)
func (t *Track) GetLengthString() string {
	return FormatSeconds(t.Duration)
}

// GetDisplayTitle returns title, falling back to "Track NN"
func (t *Track) GetDisplayTitle() string {
	if strings.TrimSpace(t.Title) != "" {
		return t.Title
	}
	return "Track " + t.TrackNum
}

// FormatSeconds formats seconds as mm:ss, or hh:mm:ss past one hour
func FormatSeconds(seconds float64) string {
	if seconds <= 0 {
		return "00:00"
	}
	total := int(seconds + 0.5)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// ValueOrNA returns NotAvailable for blank values
func ValueOrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}

// TrackList is the ordered list of tracks of the currently loaded CUE sheet
type TrackList []Track

// Get returns a copy of the track at index
func (tl TrackList) Get(index int) (Track, error) {
	if index < 0 || index >= len(tl) {
		return Track{}, fmt.Errorf("%w: %d (tracks: %d)", ErrTrackIndex, index, len(tl))
	}
	return tl[index], nil
}

// Set replaces the track at index
func (tl TrackList) Set(index int, track Track) error {
	if index < 0 || index >= len(tl) {
		return fmt.Errorf("%w: %d (tracks: %d)", ErrTrackIndex, index, len(tl))
	}
	tl[index] = track
	return nil
}

// AudioStream describes one audio stream reported by ffprobe
type AudioStream struct {
	CodecName  string  `json:"codec_name"`
	SampleFmt  string  `json:"sample_fmt"`
	SampleRate string  `json:"sample_rate"`
	Channels   int     `json:"channels"`
	Duration   float64 `json:"duration"`
}

// AudioFileInfo holds probe data for a source audio file
type AudioFileInfo struct {
	Filename string        `json:"filename"`
	Duration float64       `json:"duration"`
	Streams  []AudioStream `json:"streams"`
}

// DiscInfo holds album level metadata of a CUE sheet
type DiscInfo struct {
	Performer  string          `json:"performer"`
	Album      string          `json:"album"`
	Genre      string          `json:"genre,omitempty"`
	Date       string          `json:"date,omitempty"`
	DiscID     string          `json:"discid,omitempty"`
	Comment    string          `json:"comment,omitempty"`
	DiscNumber string          `json:"discnumber,omitempty"`
	TotalDisc  string          `json:"totaldisc,omitempty"`
	CueFile    string          `json:"cue_file"`
	Encoding   string          `json:"encoding"`
	AudioFiles []AudioFileInfo `json:"audio_files,omitempty"`
}
