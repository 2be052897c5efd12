package cuesheet

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

func rule(title string) string {
	line := strings.Repeat("-", len(title)+2)
	return line + "\n" + title + "\n" + line + "\n"
}

// FormatDiscInfo renders album metadata, CUE details and probe data as plain text
func FormatDiscInfo(disc model.DiscInfo) string {
	var b strings.Builder

	b.WriteString(rule("AUDIO CD PROPERTIES"))
	fmt.Fprintf(&b, "Performer:  %s\n", model.ValueOrNA(disc.Performer))
	fmt.Fprintf(&b, "Album:  %s\n", model.ValueOrNA(disc.Album))
	fmt.Fprintf(&b, "Genre:  %s\n", model.ValueOrNA(disc.Genre))
	fmt.Fprintf(&b, "Disc id:  %s\n", model.ValueOrNA(disc.DiscID))
	fmt.Fprintf(&b, "Date:  %s\n", disc.Date)
	fmt.Fprintf(&b, "Disc Number:  %s\n", model.ValueOrNA(disc.DiscNumber))
	fmt.Fprintf(&b, "Total Disc:  %s\n", model.ValueOrNA(disc.TotalDisc))
	fmt.Fprintf(&b, "Comment:  %s\n\n", model.ValueOrNA(disc.Comment))

	b.WriteString(rule("CUE FILE"))
	fmt.Fprintf(&b, "File name:  '%s'\n", filepath.Base(disc.CueFile))
	fmt.Fprintf(&b, "Position:  '%s'\n", filepath.Dir(disc.CueFile))
	fmt.Fprintf(&b, "Encoding:  %s\n\n", model.ValueOrNA(disc.Encoding))

	for i, file := range disc.AudioFiles {
		b.WriteString(rule(fmt.Sprintf("AUDIO FILE (%d)", i+1)))
		fmt.Fprintf(&b, "Name:  %s\n", file.Filename)
		for _, s := range file.Streams {
			fmt.Fprintf(&b, "Codec:  %s\n", s.CodecName)
			fmt.Fprintf(&b, "Bit depth:  %s\n", s.SampleFmt)
			fmt.Fprintf(&b, "Sample rate:  %s\n", s.SampleRate)
			fmt.Fprintf(&b, "Channels:  %d\n", s.Channels)
			fmt.Fprintf(&b, "Duration seconds:  %.6f\n", s.Duration)
			fmt.Fprintf(&b, "Time length:  %s\n\n", timeLength(s.Duration))
		}
	}
	return b.String()
}

// timeLength formats seconds like h:mm:ss.ffffff
func timeLength(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	s := float64(d%time.Minute) / float64(time.Second)
	return fmt.Sprintf("%d:%02d:%09.6f", h, m, s)
}
