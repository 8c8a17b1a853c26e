// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the per-OS conventions the launcher depends
// on: the system-wide configuration directory, executable file naming, and
// search-path list handling.
package platform
