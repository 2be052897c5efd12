package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Binary names of the required executables
const (
	FFmpegName  = "ffmpeg"
	FFprobeName = "ffprobe"
)

// darwinLocalBin is checked on macOS where GUI apps do not inherit the shell PATH
const darwinLocalBin = "/usr/local/bin"

// BinaryState tells where an executable was found
type BinaryState int

const (
	NotInstalled BinaryState = iota
	System
	Bundled
)

// String returns a short label for the state
func (s BinaryState) String() string {
	switch s {
	case System:
		return "system"
	case Bundled:
		return "bundled"
	default:
		return "not installed"
	}
}

var (
	// ErrNotFound means no file exists at the configured path
	ErrNotFound = errors.New("executable not found")
	// ErrNotExecutable means the file exists but cannot be executed
	ErrNotExecutable = errors.New("permission denied")
)

// lookPath is replaced in tests
var lookPath = exec.LookPath

// ExecutableName returns name with the platform executable suffix
func ExecutableName(goos, name string) string {
	if goos == OSWindows && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		return name + ".exe"
	}
	return name
}

// DetectBinary looks for name on the search path, then in /usr/local/bin on
// macOS, then in bundleDir/bin. It returns the state and the resolved path.
func DetectBinary(goos, name, bundleDir string) (BinaryState, string) {
	exe := ExecutableName(goos, name)

	if path, err := lookPath(exe); err == nil {
		return System, path
	}

	if goos == OSDarwin {
		local := filepath.Join(darwinLocalBin, exe)
		if isFile(local) {
			return System, local
		}
	}

	if bundleDir != "" {
		bundled := filepath.Join(bundleDir, "bin", exe)
		if isFile(bundled) {
			return Bundled, bundled
		}
	}

	return NotInstalled, ""
}

// CheckExecutable verifies that path exists and may be executed
func CheckExecutable(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", ErrNotFound)
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotExecutable, path)
	}
	if !canExecute(path) {
		return fmt.Errorf("%w: %s", ErrNotExecutable, path)
	}
	return nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
