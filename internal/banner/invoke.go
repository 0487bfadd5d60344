// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Invoke runs the resolved banner executable with the request's
// arguments, writing its output to out. The caller decides what a
// failure means; during environment entry it is logged and ignored.
func Invoke(ctx context.Context, exe string, req *Request, out io.Writer) error {
	if _, err := os.Stat(exe); err != nil {
		return fmt.Errorf("banner tool %s: %w", exe, err)
	}

	cmd := exec.CommandContext(ctx, exe, req.Args()...)
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("banner tool %s exited with status %d", filepath.Base(exe), exitErr.ExitCode())
		}
		return fmt.Errorf("banner tool %s: %w", filepath.Base(exe), err)
	}
	return nil
}
