// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines the error types the launcher reports when a dispatch
// cannot proceed. Every error carries the operation that failed, the resource
// involved, and remediation suggestions, plus a taxonomy kind so callers can
// tell a broken config from a missing project root or a failed child process.
package issue
