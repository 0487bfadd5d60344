// SPDX-License-Identifier: MPL-2.0

// Package resolver turns declared toolchain inputs into locally
// available install paths. Materialization itself belongs to an
// external package system; the resolver's contract is "produce
// resolved, locally-available tool paths or fail".
package resolver

import (
	"context"

	"zmkenv-cli/internal/platform"
	"zmkenv-cli/pkg/envfile"
)

type (
	// Installed is a resolved toolchain input: the declaration plus its
	// install location on this host.
	Installed struct {
		Tool envfile.Tool
		// Root is the install root of the tool.
		Root string
		// BinDir is the directory holding the tool's executables.
		BinDir string
	}

	// Resolver resolves a single declared input for a platform. Narrow
	// on purpose so the composer can be tested with a fake.
	Resolver interface {
		Resolve(ctx context.Context, system platform.Context, tool envfile.Tool) (Installed, error)
	}
)

// ResolveAll resolves every input in declaration order, stopping at
// the first failure.
func ResolveAll(ctx context.Context, r Resolver, system platform.Context, tools []envfile.Tool) ([]Installed, error) {
	resolved := make([]Installed, 0, len(tools))
	for _, tool := range tools {
		inst, err := r.Resolve(ctx, system, tool)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, inst)
	}
	return resolved, nil
}
