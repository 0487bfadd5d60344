// SPDX-License-Identifier: MPL-2.0

// Package session starts the interactive shell a composed environment
// hands control to. The environment arrives as an explicit Config;
// the session never inherits ambient mutations, only what the
// composer computed.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"zmkenv-cli/internal/issue"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

type (
	// Config is everything a session needs, computed up front.
	Config struct {
		// WorkDir is the session's working directory.
		WorkDir string

		// Shell is the shell executable to run.
		Shell string

		// Args are extra arguments passed to the shell.
		Args []string

		// Env is the session's complete environment in os.Environ form.
		Env []string

		// Stdin/Stdout/Stderr default to the process's own streams.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer

		// Logger receives session lifecycle messages. When nil,
		// log.Default() is used.
		Logger *log.Logger
	}

	// LaunchFunc starts an interactive session. Split out so command
	// handlers can be tested without spawning shells.
	LaunchFunc func(ctx context.Context, cfg *Config) error
)

// DefaultShell picks the session shell: the override when set, then
// $SHELL, then sh on PATH.
func DefaultShell(override string) (string, error) {
	candidates := []string{override, os.Getenv("SHELL"), "sh"}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		path, err := exec.LookPath(c)
		if err == nil {
			return path, nil
		}
	}
	return "", issue.NewErrorContext().
		WithOperation("find an interactive shell").
		WithSuggestion("Set 'shell' in your zmkenv config").
		WithSuggestion("Make sure $SHELL points at an existing executable").
		Build()
}

func (c *Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

func (c *Config) streams() (io.Reader, io.Writer, io.Writer) {
	stdin, stdout, stderr := c.Stdin, c.Stdout, c.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdin, stdout, stderr
}

// Launch runs the configured shell until it exits. When stdin is a
// terminal the shell runs on a pty with window resizes forwarded;
// otherwise it runs with inherited pipes, which keeps scripted and
// test invocations working.
func Launch(ctx context.Context, cfg *Config) error {
	if cfg.Shell == "" {
		return fmt.Errorf("session has no shell configured")
	}

	cmd := exec.CommandContext(ctx, cfg.Shell, cfg.Args...)
	cmd.Dir = cfg.WorkDir
	cmd.Env = cfg.Env

	cfg.logger().Debug("starting interactive session", "shell", cfg.Shell, "dir", cfg.WorkDir)

	if f, ok := cfg.Stdin.(*os.File); (cfg.Stdin == nil && term.IsTerminal(int(os.Stdin.Fd()))) ||
		(ok && term.IsTerminal(int(f.Fd()))) {
		return launchPty(cmd, cfg)
	}
	return launchPlain(cmd, cfg)
}

func launchPlain(cmd *exec.Cmd, cfg *Config) error {
	stdin, stdout, stderr := cfg.streams()
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("run session shell: %w", err)
	}
	return nil
}

// ExitError carries the shell's non-zero exit status to the CLI layer.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("session exited with status %d", e.Code)
}
