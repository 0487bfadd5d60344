// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"zmkenv-cli/internal/platform"
	"zmkenv-cli/pkg/envfile"
)

func testProject() envfile.Project {
	return envfile.Project{
		Owner:   "chocofi",
		Logo:    "⌨",
		Product: "Chocofi",
		Part:    "nice!nano v2",
		Code:    "github.com/chocofi/zmk-config",
	}
}

func testTips() []string {
	return []string{
		`west init -l config`,
		`west update`,
		`west build -s zmk/app -d build/left -b nice_nano_v2 -- -DSHIELD=chocofi_left -DZMK_CONFIG="${ZMK_HOME}/config"`,
		`west build -s zmk/app -d build/right -b nice_nano_v2 -- -DSHIELD=chocofi_right -DZMK_CONFIG="${ZMK_HOME}/config"`,
		`cp build/left/zephyr/zmk.uf2 "/run/media/$USER/NICENANO"`,
	}
}

// TestRequest_Args verifies exactly five field pairs followed by five
// tip arguments, in declared order, byte-identical to the literals.
func TestRequest_Args(t *testing.T) {
	t.Parallel()

	req, err := NewRequest(testProject(), testTips())
	if err != nil {
		t.Fatalf("NewRequest() unexpected error: %v", err)
	}

	args := req.Args()
	want := []string{
		"--owner", "chocofi",
		"--logo", "⌨",
		"--product", "Chocofi",
		"--part", "nice!nano v2",
		"--code", "github.com/chocofi/zmk-config",
	}
	for _, tip := range testTips() {
		want = append(want, "--tip", tip)
	}

	if !reflect.DeepEqual(args, want) {
		t.Errorf("Args() = %q, want %q", args, want)
	}

	fields, tips := 0, 0
	for _, a := range args {
		switch a {
		case "--owner", "--logo", "--product", "--part", "--code":
			fields++
		case "--tip":
			tips++
		}
	}
	if fields != 5 {
		t.Errorf("field args = %d, want 5", fields)
	}
	if tips != 5 {
		t.Errorf("tip args = %d, want 5", tips)
	}
}

// TestRequest_TipQuoting verifies embedded double quotes survive into
// the argument vector verbatim.
func TestRequest_TipQuoting(t *testing.T) {
	t.Parallel()

	req, err := NewRequest(testProject(), testTips())
	if err != nil {
		t.Fatalf("NewRequest() unexpected error: %v", err)
	}

	args := req.Args()
	quoted := args[len(args)-5] // third tip value
	if !strings.Contains(quoted, `-DZMK_CONFIG="${ZMK_HOME}/config"`) {
		t.Errorf("tip lost its embedded quotes: %q", quoted)
	}
}

// TestRequest_CopiesTips verifies mutating the source slice after
// construction does not change the request.
func TestRequest_CopiesTips(t *testing.T) {
	t.Parallel()

	tips := testTips()
	req, err := NewRequest(testProject(), tips)
	if err != nil {
		t.Fatalf("NewRequest() unexpected error: %v", err)
	}

	tips[0] = "mutated"
	if req.Tips[0] == "mutated" {
		t.Error("Request should hold its own copy of the tips")
	}
}

func TestNewRequest_WrongTipCount(t *testing.T) {
	t.Parallel()

	if _, err := NewRequest(testProject(), []string{"only one"}); err == nil {
		t.Fatal("NewRequest() expected error for wrong tip count")
	}
}

// writeScript drops an executable shell script into dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestInvoke_Success runs a stand-in renderer and captures its output.
func TestInvoke_Success(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == platform.Windows {
		t.Skip("stand-in renderer is a shell script")
	}

	exe := writeScript(t, t.TempDir(), "kbanner", `printf '%s\n' "$@"`)
	req, err := NewRequest(testProject(), testTips())
	if err != nil {
		t.Fatalf("NewRequest() unexpected error: %v", err)
	}

	var out bytes.Buffer
	if err := Invoke(context.Background(), exe, req, &out); err != nil {
		t.Fatalf("Invoke() unexpected error: %v", err)
	}

	// The renderer saw every argument on its own line, quotes intact.
	if !strings.Contains(out.String(), `-DZMK_CONFIG="${ZMK_HOME}/config"`) {
		t.Errorf("renderer output missing quoted tip:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "--owner\nchocofi\n") {
		t.Errorf("renderer output missing owner field:\n%s", out.String())
	}
}

// TestInvoke_NonZeroExit surfaces the exit status as an error.
func TestInvoke_NonZeroExit(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == platform.Windows {
		t.Skip("stand-in renderer is a shell script")
	}

	exe := writeScript(t, t.TempDir(), "kbanner", "exit 3")
	req, err := NewRequest(testProject(), testTips())
	if err != nil {
		t.Fatalf("NewRequest() unexpected error: %v", err)
	}

	err = Invoke(context.Background(), exe, req, &bytes.Buffer{})
	if err == nil {
		t.Fatal("Invoke() expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "status 3") {
		t.Errorf("error %q should carry the exit status", err)
	}
}

// TestInvoke_MissingTool fails cleanly when the renderer is absent.
func TestInvoke_MissingTool(t *testing.T) {
	t.Parallel()

	req, err := NewRequest(testProject(), testTips())
	if err != nil {
		t.Fatalf("NewRequest() unexpected error: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "kbanner")
	if err := Invoke(context.Background(), missing, req, &bytes.Buffer{}); err == nil {
		t.Fatal("Invoke() expected error for missing renderer")
	}
}
