// SPDX-License-Identifier: MPL-2.0

// Package platform identifies the host/target system combinations the
// environment can be composed for, using arch-os triples in the style
// of the package sources ("x86_64-linux", "aarch64-darwin").
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Context identifies a host/target architecture+OS combination.
// Read-only for the lifetime of the process.
type Context struct {
	Arch string // x86_64, aarch64
	OS   string // linux, darwin
}

// goarchNames maps runtime.GOARCH to the arch half of a triple.
var goarchNames = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
}

// String returns the arch-os triple.
func (c Context) String() string {
	return c.Arch + "-" + c.OS
}

// IsZero reports whether the context is unset.
func (c Context) IsZero() bool {
	return c.Arch == "" && c.OS == ""
}

// Parse parses an arch-os triple like "x86_64-linux".
func Parse(s string) (Context, error) {
	arch, os, ok := strings.Cut(s, "-")
	if !ok || arch == "" || os == "" {
		return Context{}, fmt.Errorf("invalid system %q: want <arch>-<os>, e.g. x86_64-linux", s)
	}
	return Context{Arch: arch, OS: os}, nil
}

// Current detects the host context from runtime.GOOS/GOARCH.
func Current() Context {
	arch, ok := goarchNames[runtime.GOARCH]
	if !ok {
		arch = runtime.GOARCH
	}
	return Context{Arch: arch, OS: runtime.GOOS}
}

// Supported reports whether the context appears in systems.
func (c Context) Supported(systems []string) bool {
	triple := c.String()
	for _, s := range systems {
		if s == triple {
			return true
		}
	}
	return false
}
