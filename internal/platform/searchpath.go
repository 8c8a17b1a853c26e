// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// FilterSearchPath removes every entry equal to exclude from a search-path
// list (the value of $PATH or %PATH%), preserving the order and the
// platform's list separator. Entries are compared as cleaned paths so that
// trailing separators do not hide a match; the surviving entries are
// rejoined exactly as they appeared.
func FilterSearchPath(pathList, exclude string) string {
	if pathList == "" || exclude == "" {
		// Cleaning an empty exclude would yield "." and silently strip
		// relative entries.
		return pathList
	}

	excluded := filepath.Clean(exclude)
	parts := filepath.SplitList(pathList)
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" && filepath.Clean(part) == excluded {
			continue
		}
		kept = append(kept, part)
	}

	return strings.Join(kept, string(os.PathListSeparator))
}

// ExecutableName derives the platform-appropriate executable file name for
// a bare program name: a .exe suffix on Windows, the name unchanged
// elsewhere.
func ExecutableName(name string) string {
	if IsWindows() {
		return name + ".exe"
	}
	return name
}

// EndsWithSeparator reports whether path ends with a path separator,
// which is how a folder-style run path is distinguished from an
// executable path.
func EndsWithSeparator(path string) bool {
	if path == "" {
		return false
	}
	return os.IsPathSeparator(path[len(path)-1])
}
