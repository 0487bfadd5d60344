// SPDX-License-Identifier: MPL-2.0

//go:build windows

package session

import "os/exec"

// launchPty falls back to plain inherited streams; conpty handling is
// not implemented.
func launchPty(cmd *exec.Cmd, cfg *Config) error {
	return launchPlain(cmd, cfg)
}
