// SPDX-License-Identifier: MPL-2.0

//go:build windows

package launch

import (
	"os"

	"gig-cli/pkg/types"
)

// exitCodeFromState maps a finished child's termination state onto a
// single-byte exit status. Windows children always carry a numeric code;
// anything out of range folds to a generic failure.
func exitCodeFromState(state *os.ProcessState) types.ExitCode {
	return types.Clamp(state.ExitCode())
}
