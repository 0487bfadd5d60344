// SPDX-License-Identifier: MPL-2.0

package config

var (
	// configDirOverride lets tests redirect the config directory.
	configDirOverride string

	// configFilePathOverride pins an exact config file (--config flag).
	configFilePathOverride string
)

// SetConfigDirOverride redirects ConfigDir. Pass "" to reset.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride pins the config file path used by Load.
// Pass "" to reset.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}
