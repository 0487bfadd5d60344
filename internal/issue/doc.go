// SPDX-License-Identifier: MPL-2.0

// Package issue defines the error taxonomy of the environment setup
// flow (unsupported platform, tool conflicts, resolution failures)
// along with user-facing error formatting: ActionableError for
// structured messages with suggestions, and markdown issue cards
// rendered with glamour for the known failure classes.
package issue
