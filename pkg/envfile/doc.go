// SPDX-License-Identifier: MPL-2.0

// Package envfile defines the zmkenv.cue manifest: the project
// constants shown in the banner, the supported systems, the declared
// toolchain inputs, and the banner tool with its ordered tip lines.
// A manifest is parsed against an embedded CUE schema; when a project
// has no zmkenv.cue, the embedded default manifest is used.
package envfile
