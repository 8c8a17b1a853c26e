// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"path/filepath"
	"runtime"
)

// SystemDirName is the directory name for system-wide launcher configs
// under the per-OS conventional location.
const SystemDirName = "get-it-going"

// SystemConfigDir returns the system-wide configuration directory using
// platform-specific conventions: Windows uses the Common Files folder,
// macOS uses /Library/Application Support, and Linux/others use /etc.
func SystemConfigDir() string {
	var base string

	switch runtime.GOOS {
	case Windows:
		base = `C:\Program Files\Common Files`
	case Darwin:
		base = "/Library/Application Support"
	default: // Linux and others
		base = "/etc"
	}

	return filepath.Join(base, SystemDirName)
}
