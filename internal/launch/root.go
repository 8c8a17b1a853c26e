// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"os"
	"path/filepath"

	"gig-cli/internal/config"
)

// ResolveRoot decides whether a valid project root exists for the given
// config, starting from the working directory. With no required files the
// working directory is always the root. With required files and no parent
// search, only the working directory is checked. With parent search, the
// walk starts at the working directory and moves outward one ancestor at a
// time, so the nearest valid directory always wins. The boolean is false
// when no directory qualifies.
func ResolveRoot(cfg *config.Config, workDir string) (string, bool) {
	if len(cfg.RequiredFiles) == 0 {
		return workDir, true
	}

	if !cfg.SearchParents {
		if filesExistIn(workDir, cfg.RequiredFiles) {
			return workDir, true
		}
		return "", false
	}

	dir := workDir
	for {
		if filesExistIn(dir, cfg.RequiredFiles) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root reached with no match.
			return "", false
		}
		dir = parent
	}
}

// filesExistIn reports whether every required entry, joined onto dir,
// passes an existence probe. Files and directories both count.
func filesExistIn(dir string, required []string) bool {
	for _, name := range required {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}
