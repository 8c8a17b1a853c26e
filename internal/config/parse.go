// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"

	"gig-cli/internal/platform"

	"github.com/pelletier/go-toml/v2"
)

// ErrSchema is the sentinel error wrapped by every schema violation so
// callers can distinguish bad content from unreadable files.
var ErrSchema = errors.New("invalid config schema")

// rawConfig mirrors the TOML document structure before the polymorphic
// tables are pattern-matched into their closed variants. Unknown top-level
// keys are ignored, matching the original tool's behavior; strictness
// applies inside before_run and run where ambiguity would change meaning.
type rawConfig struct {
	RequiredFiles []string          `toml:"required_files"`
	SearchParents bool              `toml:"search_parents"`
	BeforeRun     map[string]string `toml:"before_run"`
	Run           map[string]string `toml:"run"`
	Fallback      *rawFallback      `toml:"fallback"`
}

type rawFallback struct {
	Path string `toml:"path"`
}

// Parse decodes and validates a <identity>.toml document. The generic TOML
// structure is decoded first, then the single-entry before_run and run
// tables are matched into their closed variants; anything unrecognized,
// empty, or ambiguous is rejected with an error naming the offender and
// the accepted alternatives.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed TOML: %w", err)
	}

	beforeRun, err := decodeBeforeRun(raw.BeforeRun)
	if err != nil {
		return nil, err
	}

	run, err := decodeRun(raw.Run)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RequiredFiles: raw.RequiredFiles,
		SearchParents: raw.SearchParents,
		BeforeRun:     beforeRun,
		Run:           run,
	}
	if raw.Fallback != nil {
		cfg.Fallback = &Fallback{Path: raw.Fallback.Path}
	}

	return cfg, nil
}

func decodeBeforeRun(table map[string]string) (BeforeRun, error) {
	switch {
	case table == nil:
		return BeforeRun{}, fmt.Errorf("%w: missing before_run table", ErrSchema)
	case len(table) == 0:
		return BeforeRun{}, fmt.Errorf(`%w: empty before_run table, expected "command" or "script_path"`, ErrSchema)
	case len(table) > 1:
		return BeforeRun{}, fmt.Errorf(`%w: before_run must contain exactly one of "command" or "script_path", got %d keys`, ErrSchema, len(table))
	}

	key, value := singleEntry(table)
	switch key {
	case "command":
		if value == "" {
			return BeforeRun{}, fmt.Errorf("%w: before_run command can't be empty", ErrSchema)
		}
		return BeforeRun{Kind: BeforeRunCommand, Command: value}, nil
	case "script_path":
		info, err := os.Stat(value)
		if err != nil || !info.Mode().IsRegular() {
			return BeforeRun{}, fmt.Errorf("%w: before_run script_path %q is not an existing file", ErrSchema, value)
		}
		return BeforeRun{Kind: BeforeRunScriptPath, ScriptPath: value}, nil
	default:
		return BeforeRun{}, fmt.Errorf(`%w: unrecognised key %q in before_run, expected "command" or "script_path"`, ErrSchema, key)
	}
}

func decodeRun(table map[string]string) (Run, error) {
	switch {
	case table == nil:
		return Run{}, fmt.Errorf("%w: missing run table", ErrSchema)
	case len(table) == 0:
		return Run{}, fmt.Errorf(`%w: empty run table, expected "subcommand_of" or "path"`, ErrSchema)
	case len(table) > 1:
		return Run{}, fmt.Errorf(`%w: run must contain exactly one of "subcommand_of" or "path", got %d keys`, ErrSchema, len(table))
	}

	key, value := singleEntry(table)
	switch key {
	case "subcommand_of":
		return Run{Kind: RunSubcommandOf, Target: value}, nil
	case "path":
		// A trailing path separator marks a folder to prepend, anything
		// else is the executable itself.
		if platform.EndsWithSeparator(value) {
			return Run{Kind: RunPrependFolder, Target: value}, nil
		}
		return Run{Kind: RunExecutable, Target: value}, nil
	default:
		return Run{}, fmt.Errorf(`%w: unrecognised key %q in run, expected "subcommand_of" or "path"`, ErrSchema, key)
	}
}

func singleEntry(table map[string]string) (key, value string) {
	for k, v := range table {
		return k, v
	}
	return "", ""
}
