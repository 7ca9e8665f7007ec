// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Errors carry the operation that failed, the resource involved, and
// remediation suggestions, so hook failures tell the committer what to do
// next instead of dumping a bare cause chain.
package issue
