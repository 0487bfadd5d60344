// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"context"
	"strings"
	"testing"

	"zmkenv-cli/internal/resolver"
	"zmkenv-cli/pkg/envfile"

	"github.com/pmezard/go-difflib/difflib"
)

// TestHook_Deterministic verifies two compositions emit identical
// hook text.
func TestHook_Deterministic(t *testing.T) {
	t.Parallel()

	render := func() string {
		env, err := testComposer(t, "/home/u/proj").Compose(context.Background())
		if err != nil {
			t.Fatalf("Compose() unexpected error: %v", err)
		}
		hook, err := env.Hook()
		if err != nil {
			t.Fatalf("Hook() unexpected error: %v", err)
		}
		return hook
	}

	first, second := render(), render()
	if first != second {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(first),
			B:        difflib.SplitLines(second),
			FromFile: "first",
			ToFile:   "second",
			Context:  2,
		})
		t.Errorf("hook output not deterministic:\n%s", diff)
	}
}

// TestHook_Shape verifies the emitted lines: one PATH prepend, then
// the five exports in emission order.
func TestHook_Shape(t *testing.T) {
	t.Parallel()

	env, err := testComposer(t, "/home/u/proj").Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}
	hook, err := env.Hook()
	if err != nil {
		t.Fatalf("Hook() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(hook, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("hook has %d lines, want 6:\n%s", len(lines), hook)
	}

	if !strings.HasPrefix(lines[0], "export PATH=") || !strings.HasSuffix(lines[0], `:"$PATH"`) {
		t.Errorf("PATH line = %q", lines[0])
	}

	wantPrefixes := []string{
		"export ZMK_HOME=",
		"export ZEPHYR_BASE=",
		"export Zephyr_DIR=",
		"export ZEPHYR_TOOLCHAIN_VARIANT=",
		"export GNUARMEMB_TOOLCHAIN_PATH=",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i+1], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i+1, lines[i+1], prefix)
		}
	}

	if !strings.Contains(hook, "export ZEPHYR_TOOLCHAIN_VARIANT=gnuarmemb\n") {
		t.Errorf("variant export missing or quoted unexpectedly:\n%s", hook)
	}
}

// TestHook_QuotesAwkwardValues verifies paths needing quoting are
// emitted shell-safe.
func TestHook_QuotesAwkwardValues(t *testing.T) {
	t.Parallel()

	manifest, err := envfile.Default()
	if err != nil {
		t.Fatalf("Default() unexpected error: %v", err)
	}
	c := testComposer(t, "/home/u/my proj")
	c.Manifest = manifest

	env, err := c.Compose(context.Background())
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}
	hook, err := env.Hook()
	if err != nil {
		t.Fatalf("Hook() unexpected error: %v", err)
	}

	if strings.Contains(hook, "export ZMK_HOME=/home/u/my proj\n") {
		t.Errorf("space-bearing value emitted unquoted:\n%s", hook)
	}
	if !strings.Contains(hook, "my proj") {
		t.Errorf("value missing from hook:\n%s", hook)
	}
}

// TestHook_NoPathDirs omits the PATH line entirely when nothing is
// exposed.
func TestHook_NoPathDirs(t *testing.T) {
	t.Parallel()

	env := &Environment{
		Bindings: Bindings("/w", resolver.Installed{Root: "/store/arm"}),
	}
	hook, err := env.Hook()
	if err != nil {
		t.Fatalf("Hook() unexpected error: %v", err)
	}
	if !strings.HasPrefix(hook, "export ZMK_HOME=") {
		t.Errorf("hook should start with the first binding:\n%s", hook)
	}
}
