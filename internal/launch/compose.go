// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gig-cli/internal/config"
	"gig-cli/internal/identity"
	"gig-cli/internal/issue"
	"gig-cli/internal/platform"
)

type (
	// CommandSpec is a fully specified, ready-to-execute command: program,
	// ordered arguments, working directory, and environment overrides.
	// Each spec exclusively owns its argument list and override map; specs
	// are built fresh per step and never reused.
	CommandSpec struct {
		Program string
		Args    []string

		// Dir is the working directory; empty means the launcher's own.
		Dir string

		// Env overrides applied on top of the launcher's environment for
		// the child only.
		Env map[string]string
	}

	// Composer translates config variants plus the resolved root into
	// CommandSpecs. All fields are set once at startup.
	Composer struct {
		// Identity drives default program naming and the subcommand_of
		// first argument.
		Identity identity.Identity

		// ForwardedArgs is the full original invocation's argument list
		// minus the program name. before_run never receives it; run and
		// fallback always do.
		ForwardedArgs []string

		// LauncherDir is the directory of the running executable, filtered
		// out of the child's search PATH by the implicit fallback.
		LauncherDir string

		// LookupEnv resolves environment variables for the fallback
		// PATH rewrite. Nil means os.Getenv.
		LookupEnv func(string) string
	}
)

// String renders the spec the way it is logged: backquoted program and
// arguments, plus the working directory when one is set.
func (s CommandSpec) String() string {
	line := "`" + s.Program
	if len(s.Args) > 0 {
		line += " " + strings.Join(s.Args, " ")
	}
	line += "`"
	if s.Dir != "" {
		line += " in " + s.Dir
	}
	return line
}

// BeforeRun composes the setup step. A command string is split into
// program plus arguments with shell quoting and escaping honored but no
// expansion performed; a script path is the program itself with no
// arguments. The step runs from the resolved root and never receives
// forwarded arguments.
func (c *Composer) BeforeRun(cfg *config.Config, root string) (CommandSpec, error) {
	switch cfg.BeforeRun.Kind {
	case config.BeforeRunScriptPath:
		return CommandSpec{Program: cfg.BeforeRun.ScriptPath, Dir: root}, nil
	case config.BeforeRunCommand:
		fields, err := commandWords(cfg.BeforeRun.Command)
		if err != nil {
			return CommandSpec{}, issue.NewErrorContext().
				WithOperation("tokenize before_run command").
				WithResource(cfg.BeforeRun.Command).
				WithKind(issue.ErrConfiguration).
				Wrap(err).
				BuildError()
		}
		if len(fields) == 0 {
			return CommandSpec{}, issue.NewErrorContext().
				WithOperation("tokenize before_run command").
				WithResource(cfg.BeforeRun.Command).
				WithKind(issue.ErrConfiguration).
				Wrap(fmt.Errorf("command contains no words")).
				BuildError()
		}
		return CommandSpec{Program: fields[0], Args: fields[1:], Dir: root}, nil
	default:
		return CommandSpec{}, fmt.Errorf("unhandled before_run variant %v", cfg.BeforeRun.Kind)
	}
}

// Run composes the main step from the resolved root, forwarding the
// original arguments. subcommand_of prepends the identity as the outer
// program's first argument; a folder-style path is joined with the
// per-platform executable name derived from the identity.
func (c *Composer) Run(cfg *config.Config, root string) CommandSpec {
	switch cfg.Run.Kind {
	case config.RunSubcommandOf:
		args := make([]string, 0, len(c.ForwardedArgs)+1)
		args = append(args, c.Identity.String())
		args = append(args, c.ForwardedArgs...)
		return CommandSpec{Program: cfg.Run.Target, Args: args, Dir: root}
	case config.RunPrependFolder:
		program := filepath.Join(cfg.Run.Target, c.Identity.ExecutableName())
		return CommandSpec{Program: program, Args: slices.Clone(c.ForwardedArgs), Dir: root}
	default: // config.RunExecutable
		return CommandSpec{Program: cfg.Run.Target, Args: slices.Clone(c.ForwardedArgs), Dir: root}
	}
}

// Fallback composes the alternate command used when no root exists. With
// an explicit path the program is that path. Without one the launcher
// re-invokes its own identity with a search PATH that excludes the
// launcher's directory, so a same-named tool installed elsewhere takes
// over instead of recursing into this launcher again. The boolean is
// false when no fallback is configured.
func (c *Composer) Fallback(cfg *config.Config) (CommandSpec, bool) {
	if cfg.Fallback == nil {
		return CommandSpec{}, false
	}

	if cfg.Fallback.Path != "" {
		return CommandSpec{Program: cfg.Fallback.Path, Args: slices.Clone(c.ForwardedArgs)}, true
	}

	stripped := platform.FilterSearchPath(c.getenv()("PATH"), c.LauncherDir)
	return CommandSpec{
		Program: c.Identity.String(),
		Args:    slices.Clone(c.ForwardedArgs),
		Env:     map[string]string{"PATH": stripped},
	}, true
}

func (c *Composer) getenv() func(string) string {
	if c.LookupEnv != nil {
		return c.LookupEnv
	}
	return os.Getenv
}
