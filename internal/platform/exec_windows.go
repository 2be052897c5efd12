//go:build windows

package platform

import (
	"path/filepath"
	"strings"
)

// Windows has no execute bit; accept the usual executable extensions
func canExecute(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".com", ".bat", ".cmd":
		return true
	}
	return false
}
