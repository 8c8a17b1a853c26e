// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestFilterSearchPath(t *testing.T) {
	t.Parallel()

	sep := string(os.PathListSeparator)
	join := func(parts ...string) string {
		for i, p := range parts {
			parts[i] = filepath.FromSlash(p)
		}
		return strings.Join(parts, sep)
	}

	tests := []struct {
		name    string
		list    string
		exclude string
		want    string
	}{
		{
			name:    "removes matching entry",
			list:    join("/usr/local/bin", "/opt/gig", "/usr/bin"),
			exclude: filepath.FromSlash("/opt/gig"),
			want:    join("/usr/local/bin", "/usr/bin"),
		},
		{
			name:    "preserves order",
			list:    join("/a", "/b", "/c"),
			exclude: filepath.FromSlash("/b"),
			want:    join("/a", "/c"),
		},
		{
			name:    "removes all occurrences",
			list:    join("/opt/gig", "/usr/bin", "/opt/gig"),
			exclude: filepath.FromSlash("/opt/gig"),
			want:    join("/usr/bin"),
		},
		{
			name:    "trailing separator still matches",
			list:    join("/opt/gig/", "/usr/bin"),
			exclude: filepath.FromSlash("/opt/gig"),
			want:    join("/usr/bin"),
		},
		{
			name:    "no match leaves list untouched",
			list:    join("/usr/local/bin", "/usr/bin"),
			exclude: filepath.FromSlash("/nowhere"),
			want:    join("/usr/local/bin", "/usr/bin"),
		},
		{
			name:    "empty list",
			list:    "",
			exclude: filepath.FromSlash("/opt/gig"),
			want:    "",
		},
		{
			name:    "empty exclude keeps relative entries",
			list:    join(".", "/usr/bin"),
			exclude: "",
			want:    join(".", "/usr/bin"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FilterSearchPath(tt.list, tt.exclude); got != tt.want {
				t.Errorf("FilterSearchPath(%q, %q) = %q, want %q", tt.list, tt.exclude, got, tt.want)
			}
		})
	}
}

func TestExecutableName(t *testing.T) {
	t.Parallel()

	got := ExecutableName("mytool")
	if runtime.GOOS == Windows {
		if got != "mytool.exe" {
			t.Errorf("expected mytool.exe on windows, got %q", got)
		}
	} else if got != "mytool" {
		t.Errorf("expected bare name, got %q", got)
	}
}

func TestEndsWithSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "trailing slash", path: "tools/bin/", want: true},
		{name: "no trailing slash", path: "/usr/local/bin/real-tool", want: false},
		{name: "empty string", path: "", want: false},
		{name: "bare name", path: "cargo", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EndsWithSeparator(tt.path); got != tt.want {
				t.Errorf("EndsWithSeparator(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSystemConfigDir(t *testing.T) {
	t.Parallel()

	dir := SystemConfigDir()
	if dir == "" {
		t.Fatal("expected non-empty system config dir")
	}
	if filepath.Base(dir) != SystemDirName {
		t.Errorf("expected system config dir to end in %q, got %q", SystemDirName, dir)
	}
}
