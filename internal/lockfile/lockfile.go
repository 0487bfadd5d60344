// SPDX-License-Identifier: MPL-2.0

// Package lockfile persists the outcome of a toolchain resolution as
// zmkenv.lock, so a workspace records exactly which pinned inputs it
// was last composed from and where they were installed.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zmkenv-cli/internal/resolver"
	"zmkenv-cli/pkg/envfile"

	goversion "github.com/hashicorp/go-version"
	"github.com/jonboulle/clockwork"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the lockfile name written next to the manifest.
const FileName = "zmkenv.lock"

type (
	// Lock is the persisted resolution record.
	Lock struct {
		// GeneratedAt is when the resolution ran.
		GeneratedAt time.Time `toml:"generated_at"`
		// System is the platform triple resolution ran for.
		System string `toml:"system"`
		// Tools are the resolved inputs in declaration order.
		Tools []LockedTool `toml:"tool"`
	}

	// LockedTool records one resolved input.
	LockedTool struct {
		Name    string `toml:"name"`
		Source  string `toml:"source"`
		Version string `toml:"version"`
		Path    string `toml:"path"`
	}

	// Drift describes a divergence between the manifest and the lock.
	Drift struct {
		Name   string
		Pinned string // version pin in the manifest ("" when the input is new)
		Locked string // version in the lock ("" when never locked)
		Reason string
	}
)

// New builds a Lock from a finished resolution. The clock is injected
// so tests get stable timestamps.
func New(system string, resolved []resolver.Installed, clock clockwork.Clock) *Lock {
	lock := &Lock{
		GeneratedAt: clock.Now().UTC(),
		System:      system,
		Tools:       make([]LockedTool, 0, len(resolved)),
	}
	for _, inst := range resolved {
		lock.Tools = append(lock.Tools, LockedTool{
			Name:    inst.Tool.Name,
			Source:  inst.Tool.Source,
			Version: inst.Tool.Version,
			Path:    inst.Root,
		})
	}
	return lock
}

// Write serializes the lock to dir/zmkenv.lock.
func (l *Lock) Write(dir string) error {
	data, err := toml.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode lockfile: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write lockfile at %s: %w", path, err)
	}
	return nil
}

// Read loads dir/zmkenv.lock. A missing lockfile returns (nil, nil).
func Read(dir string) (*Lock, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read lockfile at %s: %w", path, err)
	}

	var lock Lock
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, fmt.Errorf("parse lockfile at %s: %w", path, err)
	}
	return &lock, nil
}

// ToolByName returns the locked record for name.
func (l *Lock) ToolByName(name string) (LockedTool, bool) {
	for _, t := range l.Tools {
		if t.Name == name {
			return t, true
		}
	}
	return LockedTool{}, false
}

// DriftFrom compares the manifest against the lock and reports every
// divergence: inputs never locked, locked entries no longer declared,
// and version pins that moved since the last resolution.
func (l *Lock) DriftFrom(manifest *envfile.Envfile) []Drift {
	var drifts []Drift

	declared := make(map[string]envfile.Tool)
	for _, tool := range manifest.AllInputs() {
		declared[tool.Name] = tool

		locked, ok := l.ToolByName(tool.Name)
		if !ok {
			drifts = append(drifts, Drift{
				Name:   tool.Name,
				Pinned: tool.Version,
				Reason: "declared but never resolved",
			})
			continue
		}
		if locked.Version == tool.Version {
			continue
		}

		reason := "pin changed"
		pinned, errP := goversion.NewVersion(tool.Version)
		lockedVer, errL := goversion.NewVersion(locked.Version)
		if errP == nil && errL == nil {
			if pinned.GreaterThan(lockedVer) {
				reason = "pin moved forward"
			} else {
				reason = "pin moved backward"
			}
		}
		drifts = append(drifts, Drift{
			Name:   tool.Name,
			Pinned: tool.Version,
			Locked: locked.Version,
			Reason: reason,
		})
	}

	for _, locked := range l.Tools {
		if _, ok := declared[locked.Name]; !ok {
			drifts = append(drifts, Drift{
				Name:   locked.Name,
				Locked: locked.Version,
				Reason: "locked but no longer declared",
			})
		}
	}
	return drifts
}
