// SPDX-License-Identifier: MPL-2.0

// Package launch is the resolution-and-dispatch engine: it decides whether
// the invocation location is a valid project root, composes the before_run,
// run, and fallback commands from the parsed config, executes them
// synchronously with logging, and maps child outcomes onto the launcher's
// own exit status.
package launch
