// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"path/filepath"
	"strings"

	"zmkenv-cli/internal/resolver"
)

// ToolchainVariant is the fixed Zephyr toolchain variant exported on
// every platform.
const ToolchainVariant = "gnuarmemb"

// Exported variable names, in emission order.
const (
	VarHome             = "ZMK_HOME"
	VarZephyrBase       = "ZEPHYR_BASE"
	VarZephyrDir        = "Zephyr_DIR"
	VarToolchainVariant = "ZEPHYR_TOOLCHAIN_VARIANT"
	VarToolchainPath    = "GNUARMEMB_TOOLCHAIN_PATH"
)

// Bindings computes the five exports for a working directory and the
// resolved cross toolchain. Re-running with the same inputs yields
// byte-identical values; no binding depends on another binding.
func Bindings(workDir string, cross resolver.Installed) []Binding {
	return []Binding{
		{Name: VarHome, Value: workDir},
		{Name: VarZephyrBase, Value: filepath.Join(workDir, "zephyr")},
		{Name: VarZephyrDir, Value: filepath.Join(workDir, "zephyr", "share", "zephyr-package", "cmake")},
		{Name: VarToolchainVariant, Value: ToolchainVariant},
		{Name: VarToolchainPath, Value: cross.Root},
	}
}

// PathValue joins the composed bin dirs in front of the current PATH
// value. An empty current PATH yields just the composed entries.
func (e *Environment) PathValue(current string) string {
	if len(e.PathDirs) == 0 {
		return current
	}
	joined := strings.Join(e.PathDirs, string(filepath.ListSeparator))
	if current == "" {
		return joined
	}
	return joined + string(filepath.ListSeparator) + current
}

// EnvSlice builds the session's full environment from a base environ
// (os.Environ form): base entries whose keys are overridden by the
// composition are dropped, then PATH and the bindings are appended.
func (e *Environment) EnvSlice(base []string) []string {
	overridden := make(map[string]struct{}, len(e.Bindings)+1)
	overridden["PATH"] = struct{}{}
	for _, b := range e.Bindings {
		overridden[b.Name] = struct{}{}
	}

	var currentPath string
	out := make([]string, 0, len(base)+len(e.Bindings)+1)
	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if key == "PATH" {
			currentPath = value
		}
		if _, skip := overridden[key]; skip {
			continue
		}
		out = append(out, kv)
	}

	out = append(out, "PATH="+e.PathValue(currentPath))
	for _, b := range e.Bindings {
		out = append(out, b.Name+"="+b.Value)
	}
	return out
}

// Lookup returns the bound value for a variable name.
func (e *Environment) Lookup(name string) (string, bool) {
	for _, b := range e.Bindings {
		if b.Name == name {
			return b.Value, true
		}
	}
	return "", false
}
