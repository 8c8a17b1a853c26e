// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"errors"

	"gig-cli/internal/config"
	"gig-cli/internal/issue"
	"gig-cli/pkg/types"

	"github.com/charmbracelet/log"
)

// ErrBeforeRunFailed marks a setup step that started but exited non-zero.
// The main step is never attempted after it.
var ErrBeforeRunFailed = errors.New("before_run returned a non-zero status")

// Dispatcher is the top-level control flow: load config, resolve the root
// (or fall back), execute before_run, execute run. It runs at most two
// child processes and never retries.
type Dispatcher struct {
	Loader   *config.Loader
	Composer *Composer
	Executor *Executor

	// WorkDir is the launcher's working directory, snapshotted once at
	// startup.
	WorkDir string

	Logger *log.Logger
}

// Dispatch resolves once, runs the configured steps, and returns the exit
// code the launcher should adopt. A nil error with a non-zero code means a
// child ran and failed on its own terms; a non-nil error means the
// dispatch itself could not proceed and the code is the fixed failure
// status to use.
func (d *Dispatcher) Dispatch(ctx context.Context) (types.ExitCode, error) {
	cfg, _, err := d.Loader.Load()
	if err != nil {
		return 1, err
	}

	root, ok := ResolveRoot(cfg, d.WorkDir)
	if !ok {
		spec, hasFallback := d.Composer.Fallback(cfg)
		if !hasFallback {
			return 1, issue.NewErrorContext().
				WithOperation("resolve project root").
				WithKind(issue.ErrResolution).
				WithSuggestion("Run from a directory containing the required files").
				WithSuggestion("Or configure a [fallback] table").
				Wrap(errors.New("couldn't find required files")).
				BuildError()
		}
		d.Logger.Info("unable to locate required files, running fallback")
		return d.Executor.Run(ctx, spec)
	}

	before, err := d.Composer.BeforeRun(cfg, root)
	if err != nil {
		return 1, err
	}
	code, err := d.Executor.Run(ctx, before)
	if err != nil {
		return 1, err
	}
	if !code.IsSuccess() {
		return code, issue.NewErrorContext().
			WithOperation("run before_run").
			WithResource(before.String()).
			WithKind(issue.ErrChildFailure).
			Wrap(ErrBeforeRunFailed).
			BuildError()
	}

	return d.Executor.Run(ctx, d.Composer.Run(cfg, root))
}
