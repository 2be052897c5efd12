package model

import "strings"

// Recipe is one external encoder invocation: the full argument list (the
// first element is the binary) and the expected run duration in seconds
type Recipe struct {
	Args       []string
	Duration   float64
	OutputName string
	TrackIndex int
}

// Command returns the binary to execute
func (r Recipe) Command() string {
	if len(r.Args) == 0 {
		return ""
	}
	return r.Args[0]
}

// CommandLine returns the arguments joined for logging, quoting those with spaces
func (r Recipe) CommandLine() string {
	parts := make([]string, 0, len(r.Args))
	for _, arg := range r.Args {
		if arg == "" || strings.ContainsAny(arg, " \t\"'") {
			parts = append(parts, "\""+strings.ReplaceAll(arg, "\"", "\\\"")+"\"")
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
