// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"strings"
)

// UnsupportedPlatformError reports a PlatformContext with no mapping
// in the manifest. It is fatal and raised before anything is exported.
type UnsupportedPlatformError struct {
	// System is the platform triple that failed to resolve.
	System string
	// Supported lists the systems the manifest declares.
	Supported []string
}

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unsupported platform %q", e.System)
	}
	return fmt.Sprintf("unsupported platform %q (supported: %s)", e.System, strings.Join(e.Supported, ", "))
}

// ToolConflictError reports two toolchain inputs exposing the same
// executable name with different resolved targets. Identical targets
// are deduplicated by the composer and never reach this error.
type ToolConflictError struct {
	Executable string
	// FirstTool/SecondTool are the colliding input names.
	FirstTool  string
	SecondTool string
	// FirstPath/SecondPath are the divergent resolved targets.
	FirstPath  string
	SecondPath string
}

// Error implements the error interface.
func (e *ToolConflictError) Error() string {
	return fmt.Sprintf("executable %q is provided by both %s (%s) and %s (%s)",
		e.Executable, e.FirstTool, e.FirstPath, e.SecondTool, e.SecondPath)
}

// FatalResolutionError wraps an underlying package-resolution failure.
// It aborts composition before any variable is exported.
type FatalResolutionError struct {
	// Tool is the toolchain input that failed to resolve.
	Tool string
	// Cause is the underlying resolver or fetch error.
	Cause error
}

// Error implements the error interface.
func (e *FatalResolutionError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("failed to resolve toolchain input %q", e.Tool)
	}
	return fmt.Sprintf("failed to resolve toolchain input %q: %v", e.Tool, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *FatalResolutionError) Unwrap() error {
	return e.Cause
}
