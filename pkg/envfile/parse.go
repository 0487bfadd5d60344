// SPDX-License-Identifier: MPL-2.0

package envfile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"zmkenv-cli/pkg/cueutil"
)

//go:embed envfile_schema.cue
var envfileSchema string

//go:embed envfile_default.cue
var defaultManifest []byte

// Parse reads and parses a manifest from the given path.
func Parse(path string) (*Envfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses manifest content from bytes. Uses the 3-step CUE
// parsing flow: compile schema, compile user data, validate and decode.
func ParseBytes(data []byte, path string) (*Envfile, error) {
	result, err := cueutil.Decode[Envfile](envfileSchema, data, "#Envfile", path)
	if err != nil {
		return nil, err
	}

	env := result.Value
	env.FilePath = path

	if err := env.validate(); err != nil {
		return nil, err
	}
	return env, nil
}

// Default returns the embedded default manifest.
func Default() (*Envfile, error) {
	return ParseBytes(defaultManifest, "<embedded>")
}

// Load finds and parses the manifest for a project directory: the
// directory's zmkenv.cue when present, the embedded default otherwise.
func Load(dir string) (*Envfile, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return Parse(path)
	}
	return Default()
}
