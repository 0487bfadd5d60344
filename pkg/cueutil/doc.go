// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for parsing CUE documents
// against an embedded schema and decoding them into Go structs.
package cueutil
