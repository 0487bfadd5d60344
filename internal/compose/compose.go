// SPDX-License-Identifier: MPL-2.0

// Package compose implements the environment composer: given resolved
// toolchain inputs and a working directory it produces an explicit
// session environment (PATH entries, ordered exports, banner request)
// without mutating any ambient process state. Composition is
// all-or-nothing; nothing is committed until every step has succeeded.
package compose

import (
	"context"
	"fmt"
	"path/filepath"

	"zmkenv-cli/internal/banner"
	"zmkenv-cli/internal/issue"
	"zmkenv-cli/internal/platform"
	"zmkenv-cli/internal/resolver"
	"zmkenv-cli/pkg/envfile"

	"github.com/charmbracelet/log"
)

// Phase tracks the linear setup state machine. No transition is
// reversible; a fatal error before PhaseSessionActive aborts the whole
// setup with nothing exported.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseToolsResolved
	PhaseVariablesExported
	PhaseBannerEmitted
	PhaseSessionActive
)

// String returns the phase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseToolsResolved:
		return "tools-resolved"
	case PhaseVariablesExported:
		return "variables-exported"
	case PhaseBannerEmitted:
		return "banner-emitted"
	case PhaseSessionActive:
		return "session-active"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

type (
	// Binding is one exported environment variable. Order matters for
	// emission; values are pure functions of the working directory and
	// the resolved inputs.
	Binding struct {
		Name  string
		Value string
	}

	// Composer wires the manifest, the resolver and the target platform
	// together. One Composer performs one composition.
	Composer struct {
		Manifest *envfile.Envfile
		Resolver resolver.Resolver
		System   platform.Context
		WorkDir  string

		// Logger receives progress and banner warnings. When nil,
		// log.Default() is used.
		Logger *log.Logger

		phase Phase
	}

	// Environment is a finished composition: everything a session needs,
	// held as explicit data rather than ambient process state.
	Environment struct {
		WorkDir string
		System  platform.Context

		// PathDirs are the bin directories to prepend to PATH, in
		// toolchain declaration order, deduplicated.
		PathDirs []string

		// Bindings are the exported variables in emission order.
		Bindings []Binding

		// Resolved are the toolchain inputs in declaration order
		// (banner tool excluded).
		Resolved []resolver.Installed

		// BannerExe is the resolved banner renderer executable.
		BannerExe string
		// BannerRequest is the fully built renderer input.
		BannerRequest *banner.Request
	}
)

// Phase returns the composer's current state-machine position.
func (c *Composer) Phase() Phase {
	return c.phase
}

func (c *Composer) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// Compose runs resolution and environment construction. On success the
// composer is at PhaseVariablesExported and the returned Environment
// holds every value the session will see; on failure nothing has been
// exported anywhere.
func (c *Composer) Compose(ctx context.Context) (*Environment, error) {
	if !c.System.Supported(c.Manifest.Systems) {
		return nil, &issue.UnsupportedPlatformError{
			System:    c.System.String(),
			Supported: c.Manifest.Systems,
		}
	}

	resolved, err := resolver.ResolveAll(ctx, c.Resolver, c.System, c.Manifest.Toolchain)
	if err != nil {
		return nil, err
	}
	bannerInst, err := c.Resolver.Resolve(ctx, c.System, c.Manifest.Banner.Tool)
	if err != nil {
		return nil, err
	}
	c.phase = PhaseToolsResolved
	c.logger().Debug("toolchain resolved", "system", c.System.String(), "inputs", len(resolved)+1)

	pathDirs, err := exposePath(append(append([]resolver.Installed{}, resolved...), bannerInst))
	if err != nil {
		return nil, err
	}

	cross, err := crossToolchain(resolved)
	if err != nil {
		return nil, err
	}

	request, err := banner.NewRequest(c.Manifest.Project, c.Manifest.Banner.Tips)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		WorkDir:       c.WorkDir,
		System:        c.System,
		PathDirs:      pathDirs,
		Bindings:      Bindings(c.WorkDir, cross),
		Resolved:      resolved,
		BannerExe:     bannerExecutable(bannerInst),
		BannerRequest: request,
	}
	c.phase = PhaseVariablesExported
	return env, nil
}

// exposePath collects each input's bin dir in declaration order,
// checking declared executable names for conflicts. Two inputs may
// name the same executable only when they resolve it to the same
// target; divergent targets abort composition.
func exposePath(resolved []resolver.Installed) ([]string, error) {
	owners := make(map[string]resolver.Installed)
	var dirs []string
	seen := make(map[string]struct{})

	for _, inst := range resolved {
		for _, exe := range inst.Tool.Provides {
			target := filepath.Join(inst.BinDir, exe)
			prev, ok := owners[exe]
			if ok {
				prevTarget := filepath.Join(prev.BinDir, exe)
				if prevTarget != target {
					return nil, &issue.ToolConflictError{
						Executable: exe,
						FirstTool:  prev.Tool.Name,
						SecondTool: inst.Tool.Name,
						FirstPath:  prevTarget,
						SecondPath: target,
					}
				}
				continue
			}
			owners[exe] = inst
		}

		if len(inst.Tool.Provides) == 0 {
			continue // library-only input, nothing on PATH
		}
		if _, dup := seen[inst.BinDir]; !dup {
			seen[inst.BinDir] = struct{}{}
			dirs = append(dirs, inst.BinDir)
		}
	}
	return dirs, nil
}

func crossToolchain(resolved []resolver.Installed) (resolver.Installed, error) {
	for _, inst := range resolved {
		if inst.Tool.Cross {
			return inst, nil
		}
	}
	return resolver.Installed{}, fmt.Errorf("resolved toolchain has no cross-compilation bundle")
}

func bannerExecutable(inst resolver.Installed) string {
	name := inst.Tool.Name
	if len(inst.Tool.Provides) > 0 {
		name = inst.Tool.Provides[0]
	}
	return filepath.Join(inst.BinDir, name)
}
