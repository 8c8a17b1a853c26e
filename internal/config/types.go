// SPDX-License-Identifier: MPL-2.0

package config

type (
	// BeforeRunKind discriminates the closed before_run variants.
	BeforeRunKind int

	// RunKind discriminates the closed run variants.
	RunKind int

	// BeforeRun is the setup step executed prior to the main program.
	// Exactly one variant is populated, selected by Kind.
	BeforeRun struct {
		Kind BeforeRunKind

		// Command is a shell-like string tokenized into program plus
		// arguments (BeforeRunCommand).
		Command string

		// ScriptPath is a path to an existing regular file executed
		// directly with no arguments (BeforeRunScriptPath). Existence is
		// verified at parse time.
		ScriptPath string
	}

	// Run is the specification of the main program to invoke after a
	// successful setup step. Exactly one variant is populated, selected
	// by Kind; Target carries the variant's single value.
	Run struct {
		Kind RunKind

		// Target is the outer program name (RunSubcommandOf), the folder
		// holding the per-platform executable (RunPrependFolder), or the
		// literal program path (RunExecutable).
		Target string
	}

	// Fallback is the alternate program invoked when root resolution
	// fails, in lieu of aborting.
	Fallback struct {
		// Path is the explicit program to invoke. When empty, the
		// launcher re-invokes its own identity with a search PATH that
		// excludes the launcher's directory, deferring to a same-named
		// tool installed elsewhere.
		Path string
	}

	// Config is the parsed, validated <identity>.toml document. It is
	// read-only after Parse; dispatch never mutates it.
	Config struct {
		// RequiredFiles are relative path fragments whose presence under a
		// candidate directory certifies it as a valid project root. Empty
		// means the working directory is always the root.
		RequiredFiles []string

		// SearchParents walks ancestor directories during root resolution
		// instead of checking only the working directory. Only meaningful
		// when RequiredFiles is non-empty.
		SearchParents bool

		BeforeRun BeforeRun
		Run       Run

		// Fallback is nil when no fallback is configured.
		Fallback *Fallback
	}
)

const (
	// BeforeRunCommand tokenizes a shell-like command string.
	BeforeRunCommand BeforeRunKind = iota
	// BeforeRunScriptPath executes an existing script file directly.
	BeforeRunScriptPath
)

const (
	// RunSubcommandOf invokes a named outer program, passing the identity
	// as its first argument.
	RunSubcommandOf RunKind = iota
	// RunPrependFolder invokes the per-platform executable named after
	// the identity under a configured folder.
	RunPrependFolder
	// RunExecutable invokes a literal program path.
	RunExecutable
)

// String returns a human-readable variant name.
func (k BeforeRunKind) String() string {
	switch k {
	case BeforeRunCommand:
		return "command"
	case BeforeRunScriptPath:
		return "script_path"
	default:
		return "unknown"
	}
}

// String returns a human-readable variant name.
func (k RunKind) String() string {
	switch k {
	case RunSubcommandOf:
		return "subcommand_of"
	case RunPrependFolder:
		return "prepend_folder"
	case RunExecutable:
		return "executable"
	default:
		return "unknown"
	}
}
