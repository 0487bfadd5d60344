// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"context"
	"path/filepath"

	"zmkenv-cli/internal/issue"
	"zmkenv-cli/internal/platform"
	"zmkenv-cli/pkg/envfile"
)

// MockResolver is a test helper returning deterministic install paths
// without touching the filesystem. It can be used to test the
// composer in isolation from the store and the external fetcher.
type MockResolver struct {
	// BaseDir is the fake store root. Defaults to "/zmkenv-store".
	BaseDir string

	// FailTools maps tool names to errors; listed tools fail with a
	// FatalResolutionError wrapping the mapped error.
	FailTools map[string]error

	// BinDirs overrides the resolved bin dir per tool name, for
	// simulating two inputs resolving an executable to the same target.
	BinDirs map[string]string

	// Calls records the resolved tool names in call order.
	Calls []string
}

// Resolve implements Resolver with paths derived purely from the
// declaration and the system triple.
func (m *MockResolver) Resolve(_ context.Context, system platform.Context, tool envfile.Tool) (Installed, error) {
	m.Calls = append(m.Calls, tool.Name)

	if err, ok := m.FailTools[tool.Name]; ok {
		return Installed{}, &issue.FatalResolutionError{Tool: tool.Name, Cause: err}
	}

	base := m.BaseDir
	if base == "" {
		base = "/zmkenv-store"
	}
	root := filepath.Join(base, system.String(), tool.Name+"-"+tool.Version)

	binDir := filepath.Join(root, "bin")
	if override, ok := m.BinDirs[tool.Name]; ok {
		binDir = override
	}
	return Installed{Tool: tool, Root: root, BinDir: binDir}, nil
}
