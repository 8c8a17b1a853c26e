// SPDX-License-Identifier: MPL-2.0

package config

// Lint returns non-fatal diagnostics for settings that parse fine but have
// no effect. Warnings never block execution.
func Lint(cfg *Config) []string {
	var warnings []string

	if len(cfg.RequiredFiles) == 0 && cfg.SearchParents {
		warnings = append(warnings, "search_parents has no effect if there are no required files")
	}
	if len(cfg.RequiredFiles) == 0 && cfg.Fallback != nil {
		warnings = append(warnings, "fallback has no effect if there are no required files")
	}

	return warnings
}
