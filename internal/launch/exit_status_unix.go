// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package launch

import (
	"os"
	"syscall"

	"gig-cli/pkg/types"
)

// exitCodeFromState maps a finished child's termination state onto a
// single-byte exit status. A plain exit code passes through. A child
// killed by a signal maps to 128+signal, the conventional shell encoding,
// so the launcher's status stays deterministic across platforms.
func exitCodeFromState(state *os.ProcessState) types.ExitCode {
	if code := state.ExitCode(); code >= 0 {
		return types.Clamp(code)
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return types.Clamp(128 + int(ws.Signal()))
	}
	return types.ExitCode(1)
}
