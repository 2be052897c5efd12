// Package check implements the --check diagnostics: which executables the
// application needs and where they were found.
package check

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/platform"
)

// Requirement is an executable the application relies on
type Requirement struct {
	Name     string
	Optional bool
}

// Status reports the availability of a requirement
type Status struct {
	Requirement
	State platform.BinaryState
	Path  string
}

// Available reports whether the executable was found
func (s Status) Available() bool {
	return s.State != platform.NotInstalled
}

// Requirements lists the executables checked by default
var Requirements = []Requirement{
	{Name: platform.FFmpegName},
	{Name: platform.FFprobeName},
}

// Run resolves every requirement on goos, also searching bundleDir
func Run(goos, bundleDir string, reqs []Requirement) []Status {
	results := make([]Status, 0, len(reqs))
	for _, req := range reqs {
		state, path := platform.DetectBinary(goos, req.Name, bundleDir)
		results = append(results, Status{Requirement: req, State: state, Path: path})
	}
	return results
}

// AllRequiredAvailable reports whether every non-optional requirement was found
func AllRequiredAvailable(results []Status) bool {
	for _, r := range results {
		if !r.Optional && !r.Available() {
			return false
		}
	}
	return true
}

// Render formats results as a table, colouring the state column when colorize is set
func Render(results []Status, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Executables used by FFcuesplitter-GUI")
	tw.AppendHeader(table.Row{"Kind", "Executable", "State", "Path"})

	for _, r := range results {
		kind := "Required"
		if r.Optional {
			kind = "Optional"
		}
		state := "Ok (" + r.State.String() + ")"
		path := r.Path
		if !r.Available() {
			state = "Not Installed"
			path = "-"
		}
		if colorize {
			color := text.FgGreen
			if !r.Available() {
				color = text.FgRed
			}
			state = color.Sprint(state)
		}
		tw.AppendRow(table.Row{kind, r.Name, state, path})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AlignHeader: text.AlignLeft},
		{Number: 2, AlignHeader: text.AlignLeft},
		{Number: 3, AlignHeader: text.AlignLeft},
		{Number: 4, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// ShouldColorize reports whether w is a terminal
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
