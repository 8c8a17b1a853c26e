// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gig-cli/internal/issue"

	"github.com/charmbracelet/log"
)

func newTestLoader(t *testing.T, workDir, systemDir string) *Loader {
	t.Helper()
	return &Loader{
		Identity:  "mytool",
		WorkDir:   workDir,
		SystemDir: systemDir,
		Logger:    log.New(io.Discard),
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validDoc = `
before_run = { command = "echo ok" }
run = { subcommand_of = "outer" }
`

func TestLoader_Locate_WorkDirFirst(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	systemDir := t.TempDir()
	wantPath := writeConfig(t, workDir, "mytool.toml", validDoc)
	writeConfig(t, systemDir, "mytool.toml", validDoc)

	path, ok := newTestLoader(t, workDir, systemDir).Locate()
	if !ok {
		t.Fatal("expected config to be found")
	}
	if path != wantPath {
		t.Errorf("expected working-directory config %q to win, got %q", wantPath, path)
	}
}

func TestLoader_Locate_FallsBackToSystemDir(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	systemDir := t.TempDir()
	wantPath := writeConfig(t, systemDir, "mytool.toml", validDoc)

	path, ok := newTestLoader(t, workDir, systemDir).Locate()
	if !ok {
		t.Fatal("expected config to be found in system dir")
	}
	if path != wantPath {
		t.Errorf("expected system config %q, got %q", wantPath, path)
	}
}

func TestLoader_Locate_NotFound(t *testing.T) {
	t.Parallel()

	if _, ok := newTestLoader(t, t.TempDir(), t.TempDir()).Locate(); ok {
		t.Error("expected no config to be found")
	}
}

func TestLoader_Load_Success(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	wantPath := writeConfig(t, workDir, "mytool.toml", validDoc)

	cfg, path, err := newTestLoader(t, workDir, t.TempDir()).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != wantPath {
		t.Errorf("expected path %q, got %q", wantPath, path)
	}
	if cfg.Run.Kind != RunSubcommandOf {
		t.Errorf("unexpected run kind %v", cfg.Run.Kind)
	}
}

func TestLoader_Load_NotFoundIsConfigurationError(t *testing.T) {
	t.Parallel()

	_, _, err := newTestLoader(t, t.TempDir(), t.TempDir()).Load()
	if err == nil {
		t.Fatal("expected error when no config exists")
	}
	if !errors.Is(err, issue.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestLoader_Load_ParseFailureNamesFile(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	wantPath := writeConfig(t, workDir, "mytool.toml", `run = { nonsense = "x" }`)

	_, _, err := newTestLoader(t, workDir, t.TempDir()).Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var actionable *issue.ActionableError
	if !errors.As(err, &actionable) {
		t.Fatalf("expected ActionableError, got %T", err)
	}
	if actionable.Resource != wantPath {
		t.Errorf("expected error to name %q, got %q", wantPath, actionable.Resource)
	}
	if !errors.Is(err, issue.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}
