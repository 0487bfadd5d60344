// SPDX-License-Identifier: MPL-2.0

package envfile

import "fmt"

// FileName is the manifest file name looked up in a project directory.
const FileName = "zmkenv.cue"

type (
	// Envfile is a parsed zmkenv.cue manifest.
	Envfile struct {
		Project   Project  `json:"project"`
		Systems   []string `json:"systems"`
		Toolchain []Tool   `json:"toolchain"`
		Banner    Banner   `json:"banner"`

		// FilePath is where the manifest was loaded from ("<embedded>"
		// for the built-in default). Set by the parser.
		FilePath string `json:"-"`
	}

	// Project holds the literal metadata fields passed to the banner
	// renderer. None of them are derived from composer state.
	Project struct {
		Owner   string `json:"owner"`
		Logo    string `json:"logo"`
		Product string `json:"product"`
		Part    string `json:"part"`
		Code    string `json:"code"`
	}

	// Tool declares one external tool or library dependency: a name, a
	// source locator, a version pin, and the executable names it
	// exposes. Immutable once declared.
	Tool struct {
		Name     string   `json:"name"`
		Source   string   `json:"source"`
		Version  string   `json:"version"`
		Provides []string `json:"provides"`
		Cross    bool     `json:"cross"`
	}

	// Banner declares the banner-rendering tool and the ordered tip
	// lines shown on environment entry.
	Banner struct {
		Tool Tool     `json:"tool"`
		Tips []string `json:"tips"`
	}
)

// TipCount is the number of tip lines a manifest must declare.
const TipCount = 5

// CrossToolchain returns the toolchain entry marked as the
// cross-compilation bundle. Validation guarantees exactly one exists.
func (e *Envfile) CrossToolchain() (Tool, bool) {
	for _, t := range e.Toolchain {
		if t.Cross {
			return t, true
		}
	}
	return Tool{}, false
}

// ToolByName returns the toolchain entry with the given name.
func (e *Envfile) ToolByName(name string) (Tool, bool) {
	for _, t := range e.Toolchain {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// AllInputs returns the toolchain entries followed by the banner tool,
// in declaration order. This is the full set the resolver sees.
func (e *Envfile) AllInputs() []Tool {
	inputs := make([]Tool, 0, len(e.Toolchain)+1)
	inputs = append(inputs, e.Toolchain...)
	inputs = append(inputs, e.Banner.Tool)
	return inputs
}

// String returns a short identifier for logs.
func (t Tool) String() string {
	return fmt.Sprintf("%s@%s", t.Name, t.Version)
}
