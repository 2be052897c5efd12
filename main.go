package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/check"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/config"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/logging"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "io.github.jeanslack.ffcuesplitter-gui"
	AppName = "FFcuesplitter-GUI"

	fyneModule = "fyne.io/fyne/v2"
)

var errMissingExecutables = errors.New("required executables are missing")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var showVersion, runCheck bool

	cmd := &cobra.Command{
		Use:          "ffcuesplitter-gui",
		Short:        "Split audio CD images into tracks using CUE sheets and FFmpeg",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case showVersion:
				printVersion(cmd.OutOrStdout())
				return nil
			case runCheck:
				return checkExecutables(cmd.OutOrStdout())
			default:
				return runGUI()
			}
		},
	}

	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print version information and exit")
	cmd.Flags().BoolVarP(&runCheck, "check", "c", false, "list the required executables and exit")
	cmd.MarkFlagsMutuallyExclusive("version", "check")
	return cmd
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", AppName, version)
	fmt.Fprintf(w, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "Fyne: %s\n", moduleVersion(fyneModule))
}

// moduleVersion returns the version of a dependency linked into the binary
func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return "unknown"
}

func checkExecutables(out io.Writer) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("resolve application paths: %w", err)
	}

	results := check.Run(runtime.GOOS, paths.FFmpegDir, check.Requirements)
	fmt.Fprintln(out, check.Render(results, check.ShouldColorize(out)))
	if !check.AllRequiredAvailable(results) {
		return errMissingExecutables
	}
	return nil
}

func runGUI() error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("resolve application paths: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{Level: os.Getenv("FFCUESPLITTER_LOG_LEVEL"), Path: paths.AppLog()})
	if err != nil {
		fmt.Fprintf(os.Stderr, "application log disabled: %v\n", err)
		logger, closer, _ = logging.New(logging.Options{})
	}
	defer closer.Close()
	logger.Info("starting", "version", version, "config_dir", paths.ConfigDir, "portable", paths.Portable)

	a := app.NewWithID(AppID)
	ui.Launch(a, ui.Options{
		Paths:   paths,
		Store:   config.NewStore(paths.ConfigDir, paths.SettingsFile, config.DefaultSettings(home)),
		Logger:  logger,
		Version: version,
	})
	a.Run()

	logger.Info("exiting")
	return nil
}
