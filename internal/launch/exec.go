// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"strings"

	"gig-cli/internal/issue"
	"gig-cli/internal/platform"
	"gig-cli/pkg/types"

	"github.com/charmbracelet/log"
)

// Executor runs composed commands synchronously, logging each spawn. The
// launcher blocks on every child and adopts its exit status; there is no
// detach mode and no timeout.
type Executor struct {
	// Logger receives one info line per execution.
	Logger *log.Logger

	// WorkDir is the launcher's own working directory. A spec whose Dir
	// matches it is logged without the directory suffix.
	WorkDir string

	// Stdin, Stdout, Stderr are inherited by every child. Nil fields
	// default to the launcher's own streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run spawns the command and waits for it. A child that starts and exits
// carries no error: its status is the result, whatever it is. Only
// failures to start at all (program missing, not executable, permission
// denied) produce an error, wrapping the attempted command line.
func (e *Executor) Run(ctx context.Context, spec CommandSpec) (types.ExitCode, error) {
	e.logSpawn(spec)

	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = overrideEnv(os.Environ(), spec.Env)
	cmd.Stdin = e.stdin()
	cmd.Stdout = e.stdout()
	cmd.Stderr = e.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitCodeFromState(exitErr.ProcessState)
			e.Logger.Debug("child exited", "status", code)
			return code, nil
		}
		return 1, issue.NewErrorContext().
			WithOperation("invoke " + spec.String()).
			WithKind(issue.ErrSpawn).
			WithSuggestion("Check that the program exists and is executable").
			Wrap(err).
			BuildError()
	}

	return 0, nil
}

// logSpawn records program, arguments, and the working directory when it
// differs from the launcher's own.
func (e *Executor) logSpawn(spec CommandSpec) {
	logged := spec
	if logged.Dir == e.WorkDir {
		logged.Dir = ""
	}
	e.Logger.Info("spawning", "command", logged.String())
}

// overrideEnv applies per-child overrides on top of the inherited
// environment. Overridden variables replace the inherited entry in place;
// new variables append.
func overrideEnv(environ []string, overrides map[string]string) []string {
	return mergeEnv(environ, overrides, platform.IsWindows())
}

// mergeEnv does the merge with an explicit key-folding switch. Windows
// environment variable names are case-insensitive, so a PATH override
// must replace an inherited Path entry rather than append a duplicate.
func mergeEnv(environ []string, overrides map[string]string, foldKeys bool) []string {
	if len(overrides) == 0 {
		return environ
	}

	pending := maps.Clone(overrides)
	sameKey := func(a, b string) bool {
		if foldKeys {
			return strings.EqualFold(a, b)
		}
		return a == b
	}

	out := make([]string, 0, len(environ)+len(overrides))
	for _, entry := range environ {
		key := entry
		if i := strings.IndexByte(entry, '='); i >= 0 {
			key = entry[:i]
		}
		replaced := false
		for name, value := range pending {
			if sameKey(key, name) {
				out = append(out, key+"="+value)
				delete(pending, name)
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, entry)
		}
	}
	for k, v := range pending {
		out = append(out, k+"="+v)
	}

	return out
}

func (e *Executor) stdin() io.Reader {
	if e.Stdin != nil {
		return e.Stdin
	}
	return os.Stdin
}

func (e *Executor) stdout() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

func (e *Executor) stderr() io.Writer {
	if e.Stderr != nil {
		return e.Stderr
	}
	return os.Stderr
}
