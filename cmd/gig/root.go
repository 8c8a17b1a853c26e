// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gig-cli/internal/config"
	"gig-cli/internal/identity"
	"gig-cli/internal/launch"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rootCmd is the whole CLI surface: the launcher takes no flags of its
// own, so flag parsing is disabled and every argument after the program
// name forwards verbatim to the composed command.
var rootCmd = &cobra.Command{
	Use:   "gig -- acts under whatever name it is invoked as",
	Short: "A self-renaming launcher that dispatches to per-project tools",
	Long: `gig is a self-renaming launcher. Symlink or copy it under a tool's name
(npm, cargo, ...) and it becomes that tool's front door: it loads
<name>.toml from the invocation directory or the system-wide
get-it-going directory, verifies the project root, runs the configured
setup step, and then hands over to the real program with all arguments
forwarded.

Set GIG_OVERRIDE to force an identity and GIG_LOG to adjust verbosity.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runLaunch,
}

// Execute runs the root command through fang and converts an ExitError
// into the process exit status. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// runLaunch resolves the identity, wires the dispatcher, and adopts the
// child's exit status as the launcher's own.
func runLaunch(cmd *cobra.Command, args []string) error {
	settings := config.LoadSettings()

	id, err := identity.Resolve(settings.IdentityOverride)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	logger := newLogger(id, settings.LogLevel)

	workDir, err := os.Getwd()
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("unable to launch %s: can't access working directory: %w", id, err)}
	}

	// The launcher's own directory is only needed by the PATH-stripping
	// fallback; failure to resolve it degrades that one feature.
	launcherDir := ""
	if exe, exeErr := os.Executable(); exeErr == nil {
		launcherDir = filepath.Dir(exe)
	}

	dispatcher := &launch.Dispatcher{
		Loader: &config.Loader{
			Identity: id,
			WorkDir:  workDir,
			Logger:   logger,
		},
		Composer: &launch.Composer{
			Identity:      id,
			ForwardedArgs: args,
			LauncherDir:   launcherDir,
		},
		Executor: &launch.Executor{
			Logger:  logger,
			WorkDir: workDir,
		},
		WorkDir: workDir,
		Logger:  logger,
	}

	code, err := dispatcher.Dispatch(cmd.Context())
	if err != nil {
		return &ExitError{Code: code, Err: fmt.Errorf("unable to launch %s: %w", id, err)}
	}

	logger.Debug("dispatch complete", "status", code)
	if !code.IsSuccess() {
		// The child already reported whatever it had to say; mirror its
		// status without printing anything further.
		os.Exit(int(code))
	}
	return nil
}

// newLogger builds the identity-tagged stderr logger. GIG_LOG picks the
// level; unparsable values fall back to warn.
func newLogger(id identity.Identity, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: id.String(),
		Level:  lvl,
	})
}
