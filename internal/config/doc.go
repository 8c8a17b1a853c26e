// SPDX-License-Identifier: MPL-2.0

// Package config owns the launcher's configuration: the <identity>.toml
// schema with its two closed polymorphic tables (before_run, run), the
// ordered candidate-directory search that locates the file, the strict
// decoding rules that reject unknown or ambiguous keys, and the non-fatal
// lint pass that flags settings with no effect.
package config
