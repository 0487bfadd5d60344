// SPDX-License-Identifier: MPL-2.0

package envfile

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// validate applies the structural checks the CUE schema cannot
// express: cross-entry uniqueness and version pin syntax.
func (e *Envfile) validate() error {
	if err := e.validateUniqueNames(); err != nil {
		return err
	}
	if err := e.validateUniqueExecutables(); err != nil {
		return err
	}
	if err := e.validateCrossToolchain(); err != nil {
		return err
	}
	if err := e.validateVersionPins(); err != nil {
		return err
	}
	if len(e.Banner.Tips) != TipCount {
		return fmt.Errorf("%s: banner must declare exactly %d tips, got %d", e.FilePath, TipCount, len(e.Banner.Tips))
	}
	return nil
}

func (e *Envfile) validateUniqueNames() error {
	seen := make(map[string]struct{}, len(e.Toolchain)+1)
	for _, t := range e.AllInputs() {
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("%s: duplicate toolchain input name %q", e.FilePath, t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}

// validateUniqueExecutables rejects manifests where two inputs declare
// the same executable name. Collisions between identically resolved
// targets are handled at composition time; at declaration time any
// duplicate is an authoring mistake.
func (e *Envfile) validateUniqueExecutables() error {
	owners := make(map[string]string)
	for _, t := range e.AllInputs() {
		for _, exe := range t.Provides {
			if owner, dup := owners[exe]; dup {
				return fmt.Errorf("%s: executable %q declared by both %q and %q", e.FilePath, exe, owner, t.Name)
			}
			owners[exe] = t.Name
		}
	}
	return nil
}

func (e *Envfile) validateCrossToolchain() error {
	count := 0
	for _, t := range e.Toolchain {
		if t.Cross {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("%s: exactly one toolchain entry must set cross: true, got %d", e.FilePath, count)
	}
	if e.Banner.Tool.Cross {
		return fmt.Errorf("%s: the banner tool cannot be the cross toolchain", e.FilePath)
	}
	return nil
}

func (e *Envfile) validateVersionPins() error {
	for _, t := range e.AllInputs() {
		if _, err := goversion.NewVersion(t.Version); err != nil {
			return fmt.Errorf("%s: input %q has unparseable version pin %q: %w", e.FilePath, t.Name, t.Version, err)
		}
	}
	return nil
}
