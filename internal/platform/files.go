package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ConflictPolicy says what to do with tracks that already exist in the output directory
type ConflictPolicy int

const (
	ConflictOverwrite ConflictPolicy = iota
	ConflictSkip
)

// MoveResult reports what MoveTracks did
type MoveResult struct {
	Moved   []string
	Skipped []string
}

// OpenPath opens a directory (or file) in the system file manager
func OpenPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		// explorer exits with status 1 even on success
		_ = exec.Command(ExplorerCommand, absPath).Run()
		return nil
	default:
		return openInManagerLinux(absPath)
	}
}

// OpenFileInManager opens the folder containing filePath and highlights the file where supported
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		_ = exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
		return nil
	default:
		// selection is not standardized on Linux
		return openInManagerLinux(filepath.Dir(absPath))
	}
}

// openInManagerLinux tries xdg-open, then the common file managers
func openInManagerLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ListFiles returns the sorted names of regular files in dir
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// FindConflicts returns the files of srcDir that already exist in dstDir
func FindConflicts(srcDir, dstDir string) ([]string, error) {
	names, err := ListFiles(srcDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", srcDir, err)
	}
	var conflicts []string
	for _, name := range names {
		target := filepath.Join(dstDir, name)
		if _, err := os.Stat(target); err == nil {
			conflicts = append(conflicts, target)
		}
	}
	return conflicts, nil
}

// MoveTracks moves every file of srcDir into dstDir, resolving existing
// targets with policy. It stops at the first move that fails.
func MoveTracks(srcDir, dstDir string, policy ConflictPolicy) (MoveResult, error) {
	var result MoveResult

	names, err := ListFiles(srcDir)
	if err != nil {
		return result, fmt.Errorf("failed to read directory %s: %w", srcDir, err)
	}
	if err := CreateDirectoryIfNotExists(dstDir); err != nil {
		return result, fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, name := range names {
		target := filepath.Join(dstDir, name)
		if _, err := os.Stat(target); err == nil && policy == ConflictSkip {
			result.Skipped = append(result.Skipped, target)
			continue
		}
		if err := moveFile(filepath.Join(srcDir, name), target); err != nil {
			return result, err
		}
		result.Moved = append(result.Moved, target)
	}
	return result, nil
}

// moveFile renames src to dst, copying across filesystems when rename is not possible
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	in.Close()
	return os.Remove(src)
}

// ClearFileContents truncates every regular file in dir, leaving the files in place
func ClearFileContents(dir string) error {
	names, err := ListFiles(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var errs []error
	for _, name := range names {
		if err := os.Truncate(filepath.Join(dir, name), 0); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
