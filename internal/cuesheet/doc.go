// Package cuesheet imports CUE sheets and turns their tracks into FFmpeg
// recipes. It decodes the sheet text, maps it onto model.Track records and
// probes the referenced audio files with FFprobe.
package cuesheet
