// SPDX-License-Identifier: MPL-2.0

package resolver

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"zmkenv-cli/internal/issue"
	"zmkenv-cli/internal/platform"
	"zmkenv-cli/pkg/envfile"

	"github.com/charmbracelet/log"
)

// StoreResolver resolves inputs against a store directory maintained
// by the external package system. Layout:
//
//	<root>/<system>/<name>-<version>/
//	<root>/<system>/<name>-<version>/bin/
//
// When a tool is absent and a fetch command is configured, the
// command is invoked once to materialize it; resolution then re-checks
// the store. Determinism comes from the version pin in the path, not
// from the fetcher.
type StoreResolver struct {
	// Root is the store root directory.
	Root string

	// FetchCommand is the command template invoked for a missing tool.
	// Tokens {name}, {source}, {version}, {system} and {dest} are
	// substituted per argument. Empty disables fetching.
	FetchCommand string

	// Logger receives fetch progress. When nil, log.Default() is used.
	Logger *log.Logger
}

// NewStoreResolver creates a StoreResolver over root.
func NewStoreResolver(root, fetchCommand string) *StoreResolver {
	return &StoreResolver{Root: root, FetchCommand: fetchCommand}
}

// Resolve implements Resolver.
func (r *StoreResolver) Resolve(ctx context.Context, system platform.Context, tool envfile.Tool) (Installed, error) {
	dest := r.installDir(system, tool)

	if isDir(dest) {
		return installed(tool, dest), nil
	}

	if r.FetchCommand == "" {
		return Installed{}, &issue.FatalResolutionError{
			Tool:  tool.Name,
			Cause: fmt.Errorf("not present in store at %s and no fetch command configured", dest),
		}
	}

	if err := r.fetch(ctx, system, tool, dest); err != nil {
		return Installed{}, &issue.FatalResolutionError{Tool: tool.Name, Cause: err}
	}

	if !isDir(dest) {
		return Installed{}, &issue.FatalResolutionError{
			Tool:  tool.Name,
			Cause: fmt.Errorf("fetch command succeeded but %s does not exist", dest),
		}
	}
	return installed(tool, dest), nil
}

// Present reports whether tool is already materialized for system,
// without triggering a fetch. The install root is returned either way.
func (r *StoreResolver) Present(system platform.Context, tool envfile.Tool) (string, bool) {
	dir := r.installDir(system, tool)
	return dir, isDir(dir)
}

func (r *StoreResolver) installDir(system platform.Context, tool envfile.Tool) string {
	return filepath.Join(r.Root, system.String(), tool.Name+"-"+tool.Version)
}

func (r *StoreResolver) fetch(ctx context.Context, system platform.Context, tool envfile.Tool, dest string) error {
	argv := expandTemplate(r.FetchCommand, map[string]string{
		"{name}":    tool.Name,
		"{source}":  tool.Source,
		"{version}": tool.Version,
		"{system}":  system.String(),
		"{dest}":    dest,
	})
	if len(argv) == 0 {
		return fmt.Errorf("fetch command template is blank")
	}

	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Info("fetching toolchain input", "tool", tool.String(), "source", tool.Source)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("fetch %s: %w: %s", tool.Source, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// expandTemplate splits the template on whitespace and substitutes
// placeholders per token. Tokens never go through a shell, so values
// with spaces stay intact.
func expandTemplate(template string, subs map[string]string) []string {
	fields := strings.Fields(template)
	argv := make([]string, 0, len(fields))
	for _, f := range fields {
		for placeholder, value := range subs {
			f = strings.ReplaceAll(f, placeholder, value)
		}
		argv = append(argv, f)
	}
	return argv
}

func installed(tool envfile.Tool, root string) Installed {
	return Installed{Tool: tool, Root: root, BinDir: filepath.Join(root, "bin")}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
